package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fitportal/fitportal/internal/domain"
)

var photoColumns = []string{
	"id", "customer_email", "photo_url", "original_name", "file_size",
	"mime_type", "status", "is_virtual_fitting_photo", "webhook_sent",
	"webhook_attempts", "created_at", "updated_at",
}

type photoRepository struct {
	db *sql.DB
}

// NewPhotoRepository creates a new PostgreSQL photo repository
func NewPhotoRepository(db *sql.DB) domain.PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) CreatePhoto(ctx context.Context, photo *domain.Photo) error {
	now := time.Now().UTC()
	if photo.ID == "" {
		photo.ID = uuid.New().String()
	}
	if photo.Status == "" {
		photo.Status = domain.PhotoStatusPending
	}
	photo.CreatedAt = now
	photo.UpdatedAt = now

	query := `
		INSERT INTO photos (
			id, customer_email, photo_url, original_name, file_size, mime_type,
			status, is_virtual_fitting_photo, webhook_sent, webhook_attempts,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		photo.ID,
		photo.CustomerEmail,
		photo.PhotoURL,
		photo.OriginalName,
		photo.FileSize,
		photo.MimeType,
		photo.Status,
		photo.IsVirtualFittingPhoto,
		photo.WebhookSent,
		photo.WebhookAttempts,
		photo.CreatedAt,
		photo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create photo: %w", err)
	}

	return nil
}

func (r *photoRepository) GetPhotoByID(ctx context.Context, id string) (*domain.Photo, error) {
	query := `
		SELECT id, customer_email, photo_url, original_name, file_size,
			mime_type, status, is_virtual_fitting_photo, webhook_sent,
			webhook_attempts, created_at, updated_at
		FROM photos
		WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, id)
	photo, err := domain.ScanPhoto(row)

	if err == sql.ErrNoRows {
		return nil, &domain.ErrPhotoNotFound{Message: "photo not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}

	return photo, nil
}

func (r *photoRepository) ListPhotos(ctx context.Context, filter domain.PhotoFilter) ([]*domain.Photo, error) {
	builder := sq.Select(photoColumns...).
		From("photos").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": *filter.Status})
	}
	if filter.Email != "" {
		builder = builder.Where(sq.ILike{"customer_email": "%" + filter.Email + "%"})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build photos query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	defer rows.Close()

	var photos []*domain.Photo
	for rows.Next() {
		photo, err := domain.ScanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		photos = append(photos, photo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate photos: %w", err)
	}

	return photos, nil
}

func (r *photoRepository) UpdatePhotoStatus(ctx context.Context, id string, expected, target domain.PhotoStatus) (*domain.Photo, error) {
	// Compare-and-set keeps concurrent updates from moving the status
	// backward: the row only changes while its status still equals the one
	// the caller saw.
	query := `
		UPDATE photos
		SET status = $3, updated_at = $4
		WHERE id = $1 AND status = $2
		RETURNING id, customer_email, photo_url, original_name, file_size,
			mime_type, status, is_virtual_fitting_photo, webhook_sent,
			webhook_attempts, created_at, updated_at
	`

	row := r.db.QueryRowContext(ctx, query, id, expected, target, time.Now().UTC())
	photo, err := domain.ScanPhoto(row)

	if err == sql.ErrNoRows {
		// Either the photo is gone or its status moved under us.
		if _, getErr := r.GetPhotoByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, &domain.ErrInvalidStatusTransition{From: expected, To: target}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update photo status: %w", err)
	}

	return photo, nil
}

func (r *photoRepository) UpdateWebhookState(ctx context.Context, id string, sent bool, attempts int) error {
	query := `
		UPDATE photos
		SET webhook_sent = $2, webhook_attempts = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, sent, attempts, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update webhook state: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.ErrPhotoNotFound{Message: "photo not found"}
	}

	return nil
}

func (r *photoRepository) ListPendingWebhooks(ctx context.Context, maxAttempts, limit int) ([]*domain.Photo, error) {
	query := `
		SELECT id, customer_email, photo_url, original_name, file_size,
			mime_type, status, is_virtual_fitting_photo, webhook_sent,
			webhook_attempts, created_at, updated_at
		FROM photos
		WHERE webhook_sent = FALSE AND webhook_attempts < $1
		ORDER BY created_at ASC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, maxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending webhooks: %w", err)
	}
	defer rows.Close()

	var photos []*domain.Photo
	for rows.Next() {
		photo, err := domain.ScanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		photos = append(photos, photo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate photos: %w", err)
	}

	return photos, nil
}

func (r *photoRepository) GetStats(ctx context.Context) (*domain.PhotoStats, error) {
	stats := &domain.PhotoStats{}

	count := func(dest *int, query string, args ...interface{}) func() error {
		return func() error {
			return r.db.QueryRowContext(ctx, query, args...).Scan(dest)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(count(&stats.Total, "SELECT COUNT(*) FROM photos"))
	g.Go(count(&stats.Pending, "SELECT COUNT(*) FROM photos WHERE status = $1", domain.PhotoStatusPending))
	g.Go(count(&stats.Processing, "SELECT COUNT(*) FROM photos WHERE status = $1", domain.PhotoStatusProcessing))
	g.Go(count(&stats.Completed, "SELECT COUNT(*) FROM photos WHERE status = $1", domain.PhotoStatusCompleted))
	g.Go(count(&stats.Failed, "SELECT COUNT(*) FROM photos WHERE status = $1", domain.PhotoStatusFailed))
	g.Go(count(&stats.VirtualFittingCount, "SELECT COUNT(*) FROM photos WHERE is_virtual_fitting_photo = TRUE"))

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to get photo stats: %w", err)
	}

	return stats, nil
}
