package service

import (
	"context"
	"fmt"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/fitportal/fitportal/pkg/filestore"
	"github.com/fitportal/fitportal/pkg/logger"
	"github.com/fitportal/fitportal/pkg/metrics"
)

type PhotoService struct {
	repo         domain.PhotoRepository
	customerRepo domain.CustomerRepository
	store        *filestore.Store
	dispatcher   domain.WebhookDispatcher
	logger       logger.Logger
}

func NewPhotoService(
	repo domain.PhotoRepository,
	customerRepo domain.CustomerRepository,
	store *filestore.Store,
	dispatcher domain.WebhookDispatcher,
	logger logger.Logger,
) *PhotoService {
	return &PhotoService{
		repo:         repo,
		customerRepo: customerRepo,
		store:        store,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

// UploadPhoto validates and stores an uploaded photo, records it for the
// customer and fires the webhook notification. Nothing is written to disk
// or the database until the content passed every check.
func (s *PhotoService) UploadPhoto(ctx context.Context, req *domain.UploadPhotoRequest) (*domain.Photo, error) {
	email, err := domain.SanitizeEmail(req.CustomerEmail)
	if err != nil {
		return nil, err
	}

	if err := s.store.Validate(req.Size, req.MimeType, req.OriginalName); err != nil {
		return nil, err
	}
	if err := filestore.ValidateSignature(req.Content, req.MimeType); err != nil {
		return nil, err
	}

	saved, err := s.store.Save(req.Content, req.OriginalName, req.MimeType)
	if err != nil {
		s.logger.WithField("email", email).Error(fmt.Sprintf("Failed to save photo file: %v", err))
		return nil, fmt.Errorf("failed to save photo: %w", err)
	}

	if err := s.customerRepo.UpsertCustomer(ctx, &domain.Customer{Email: email}); err != nil {
		return nil, fmt.Errorf("failed to ensure customer: %w", err)
	}

	photo := &domain.Photo{
		CustomerEmail:         email,
		PhotoURL:              saved.URL,
		OriginalName:          &req.OriginalName,
		FileSize:              &saved.Size,
		MimeType:              &req.MimeType,
		Status:                domain.PhotoStatusPending,
		IsVirtualFittingPhoto: req.IsVirtualFittingPhoto,
	}
	if err := s.repo.CreatePhoto(ctx, photo); err != nil {
		s.logger.WithField("email", email).Error(fmt.Sprintf("Failed to create photo record: %v", err))
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}

	metrics.PhotoUploadsTotal.Inc()
	s.logger.WithFields(map[string]interface{}{
		"photo_id": photo.ID,
		"email":    email,
	}).Info("Photo uploaded")

	// Delivery runs in the background so the upload response does not wait
	// on the retry loop. The detached context survives the request.
	go s.dispatcher.DispatchPhotoUploaded(context.WithoutCancel(ctx), photo)

	return photo, nil
}

func (s *PhotoService) ListPhotos(ctx context.Context, filter domain.PhotoFilter) ([]*domain.Photo, error) {
	photos, err := s.repo.ListPhotos(ctx, filter)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list photos: %v", err))
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}

// UpdateStatus moves a photo to the target status. The current status is
// read first so an invalid transition is reported before touching the row,
// then the repository compare-and-sets against that same status so a
// concurrent update cannot slip a backward move through.
func (s *PhotoService) UpdateStatus(ctx context.Context, id string, target domain.PhotoStatus) (*domain.Photo, error) {
	if !target.IsValid() {
		return nil, domain.NewValidationError("invalid status. Allowed values: pending, processing, completed, failed")
	}

	current, err := s.repo.GetPhotoByID(ctx, id)
	if err != nil {
		if _, ok := err.(*domain.ErrPhotoNotFound); ok {
			return nil, err
		}
		s.logger.WithField("photo_id", id).Error(fmt.Sprintf("Failed to get photo: %v", err))
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}

	if !current.Status.CanTransitionTo(target) {
		return nil, &domain.ErrInvalidStatusTransition{From: current.Status, To: target}
	}
	if current.Status == target {
		return current, nil
	}

	updated, err := s.repo.UpdatePhotoStatus(ctx, id, current.Status, target)
	if err != nil {
		switch err.(type) {
		case *domain.ErrPhotoNotFound, *domain.ErrInvalidStatusTransition:
			return nil, err
		}
		s.logger.WithField("photo_id", id).Error(fmt.Sprintf("Failed to update photo status: %v", err))
		return nil, fmt.Errorf("failed to update photo status: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"photo_id": id,
		"from":     string(current.Status),
		"to":       string(target),
	}).Info("Photo status updated")

	return updated, nil
}

func (s *PhotoService) GetStats(ctx context.Context) (*domain.PhotoStats, error) {
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get photo stats: %v", err))
		return nil, fmt.Errorf("failed to get photo stats: %w", err)
	}
	return stats, nil
}
