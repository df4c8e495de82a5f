package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/fitportal/fitportal/internal/domain/mocks"
)

func newTestLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().WithFields(gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func TestCustomerService_UpsertProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomerRepository(ctrl)
	mockMeasurements := mocks.NewMockMeasurementsRepository(ctrl)
	service := NewCustomerService(mockRepo, mockMeasurements, newTestLogger(ctrl))

	ctx := context.Background()
	firstName := "Jo"

	t.Run("upserts and reloads the merged row", func(t *testing.T) {
		saved := &domain.Customer{Email: "jo@example.com", FirstName: &firstName}
		mockRepo.EXPECT().UpsertCustomer(ctx, gomock.Any()).Return(nil)
		mockRepo.EXPECT().GetCustomerByEmail(ctx, "jo@example.com").Return(saved, nil)

		result, err := service.UpsertProfile(ctx, &domain.UpsertCustomerRequest{
			Email:     "Jo@Example.com",
			FirstName: &firstName,
		})
		require.NoError(t, err)
		assert.Equal(t, saved, result)
	})

	t.Run("invalid email never reaches the repository", func(t *testing.T) {
		result, err := service.UpsertProfile(ctx, &domain.UpsertCustomerRequest{Email: "not-an-email"})
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.IsType(t, domain.ValidationError{}, err)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		mockRepo.EXPECT().UpsertCustomer(ctx, gomock.Any()).Return(errors.New("db down"))

		result, err := service.UpsertProfile(ctx, &domain.UpsertCustomerRequest{Email: "jo@example.com"})
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestCustomerService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomerRepository(ctrl)
	mockMeasurements := mocks.NewMockMeasurementsRepository(ctrl)
	service := NewCustomerService(mockRepo, mockMeasurements, newTestLogger(ctrl))

	ctx := context.Background()

	t.Run("returns the customer", func(t *testing.T) {
		customer := &domain.Customer{Email: "jo@example.com"}
		mockRepo.EXPECT().GetCustomerByEmail(ctx, "jo@example.com").Return(customer, nil)

		result, err := service.GetProfile(ctx, "Jo@Example.com")
		require.NoError(t, err)
		assert.Equal(t, customer, result)
	})

	t.Run("not found passes through typed", func(t *testing.T) {
		mockRepo.EXPECT().GetCustomerByEmail(ctx, "missing@example.com").
			Return(nil, &domain.ErrCustomerNotFound{})

		result, err := service.GetProfile(ctx, "missing@example.com")
		assert.Nil(t, result)
		assert.IsType(t, &domain.ErrCustomerNotFound{}, err)
	})
}

func TestCustomerService_UpsertMeasurements(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomerRepository(ctrl)
	mockMeasurements := mocks.NewMockMeasurementsRepository(ctrl)
	service := NewCustomerService(mockRepo, mockMeasurements, newTestLogger(ctrl))

	ctx := context.Background()
	waist := 72.0

	t.Run("ensures the customer exists first", func(t *testing.T) {
		gomock.InOrder(
			mockRepo.EXPECT().UpsertCustomer(ctx, &domain.Customer{Email: "jo@example.com"}).Return(nil),
			mockMeasurements.EXPECT().UpsertMeasurements(ctx, gomock.Any()).Return(nil),
		)

		result, err := service.UpsertMeasurements(ctx, &domain.UpsertMeasurementsRequest{
			CustomerEmail: "jo@example.com",
			Waist:         &waist,
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "jo@example.com", result.CustomerEmail)
		require.NotNil(t, result.Waist)
		assert.Equal(t, waist, *result.Waist)
	})

	t.Run("invalid measurement never reaches the repository", func(t *testing.T) {
		negative := -1.0
		result, err := service.UpsertMeasurements(ctx, &domain.UpsertMeasurementsRequest{
			CustomerEmail: "jo@example.com",
			Waist:         &negative,
		})
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestCustomerService_GetMeasurements(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomerRepository(ctrl)
	mockMeasurements := mocks.NewMockMeasurementsRepository(ctrl)
	service := NewCustomerService(mockRepo, mockMeasurements, newTestLogger(ctrl))

	ctx := context.Background()

	t.Run("not found passes through typed", func(t *testing.T) {
		mockMeasurements.EXPECT().GetMeasurementsByEmail(ctx, "jo@example.com").
			Return(nil, &domain.ErrMeasurementsNotFound{})

		result, err := service.GetMeasurements(ctx, "jo@example.com")
		assert.Nil(t, result)
		assert.IsType(t, &domain.ErrMeasurementsNotFound{}, err)
	})
}
