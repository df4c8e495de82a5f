package service

import (
	"context"
	"fmt"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/fitportal/fitportal/pkg/logger"
)

type CustomerService struct {
	repo             domain.CustomerRepository
	measurementsRepo domain.MeasurementsRepository
	logger           logger.Logger
}

func NewCustomerService(
	repo domain.CustomerRepository,
	measurementsRepo domain.MeasurementsRepository,
	logger logger.Logger,
) *CustomerService {
	return &CustomerService{
		repo:             repo,
		measurementsRepo: measurementsRepo,
		logger:           logger,
	}
}

func (s *CustomerService) UpsertProfile(ctx context.Context, req *domain.UpsertCustomerRequest) (*domain.Customer, error) {
	customer, err := req.Validate()
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpsertCustomer(ctx, customer); err != nil {
		s.logger.WithField("email", customer.Email).Error(fmt.Sprintf("Failed to upsert customer: %v", err))
		return nil, fmt.Errorf("failed to upsert customer: %w", err)
	}

	// Re-read so the caller gets the merged row, not just the fields from
	// this request.
	saved, err := s.repo.GetCustomerByEmail(ctx, customer.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to reload customer: %w", err)
	}

	return saved, nil
}

func (s *CustomerService) GetProfile(ctx context.Context, email string) (*domain.Customer, error) {
	sanitized, err := domain.SanitizeEmail(email)
	if err != nil {
		return nil, err
	}

	customer, err := s.repo.GetCustomerByEmail(ctx, sanitized)
	if err != nil {
		if _, ok := err.(*domain.ErrCustomerNotFound); ok {
			return nil, err
		}
		s.logger.WithField("email", sanitized).Error(fmt.Sprintf("Failed to get customer: %v", err))
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

func (s *CustomerService) UpsertMeasurements(ctx context.Context, req *domain.UpsertMeasurementsRequest) (*domain.BodyMeasurements, error) {
	m, err := req.Validate()
	if err != nil {
		return nil, err
	}

	// The measurements row references the customer by email, so make sure
	// the customer exists first.
	if err := s.repo.UpsertCustomer(ctx, &domain.Customer{Email: m.CustomerEmail}); err != nil {
		return nil, fmt.Errorf("failed to ensure customer: %w", err)
	}

	if err := s.measurementsRepo.UpsertMeasurements(ctx, m); err != nil {
		s.logger.WithField("email", m.CustomerEmail).Error(fmt.Sprintf("Failed to upsert measurements: %v", err))
		return nil, fmt.Errorf("failed to upsert measurements: %w", err)
	}

	return m, nil
}

func (s *CustomerService) GetMeasurements(ctx context.Context, email string) (*domain.BodyMeasurements, error) {
	sanitized, err := domain.SanitizeEmail(email)
	if err != nil {
		return nil, err
	}

	m, err := s.measurementsRepo.GetMeasurementsByEmail(ctx, sanitized)
	if err != nil {
		if _, ok := err.(*domain.ErrMeasurementsNotFound); ok {
			return nil, err
		}
		s.logger.WithField("email", sanitized).Error(fmt.Sprintf("Failed to get measurements: %v", err))
		return nil, fmt.Errorf("failed to get measurements: %w", err)
	}

	return m, nil
}
