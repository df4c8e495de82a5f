package mocks

import (
	"context"
	"reflect"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/golang/mock/gomock"
)

// MockMeasurementsRepository is a mock of MeasurementsRepository interface
type MockMeasurementsRepository struct {
	ctrl     *gomock.Controller
	recorder *MockMeasurementsRepositoryMockRecorder
}

// MockMeasurementsRepositoryMockRecorder is the mock recorder for MockMeasurementsRepository
type MockMeasurementsRepositoryMockRecorder struct {
	mock *MockMeasurementsRepository
}

// NewMockMeasurementsRepository creates a new mock instance
func NewMockMeasurementsRepository(ctrl *gomock.Controller) *MockMeasurementsRepository {
	mock := &MockMeasurementsRepository{ctrl: ctrl}
	mock.recorder = &MockMeasurementsRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockMeasurementsRepository) EXPECT() *MockMeasurementsRepositoryMockRecorder {
	return m.recorder
}

// UpsertMeasurements mocks base method
func (m *MockMeasurementsRepository) UpsertMeasurements(ctx context.Context, measurements *domain.BodyMeasurements) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertMeasurements", ctx, measurements)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertMeasurements indicates an expected call of UpsertMeasurements
func (mr *MockMeasurementsRepositoryMockRecorder) UpsertMeasurements(ctx, measurements interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertMeasurements", reflect.TypeOf((*MockMeasurementsRepository)(nil).UpsertMeasurements), ctx, measurements)
}

// GetMeasurementsByEmail mocks base method
func (m *MockMeasurementsRepository) GetMeasurementsByEmail(ctx context.Context, email string) (*domain.BodyMeasurements, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMeasurementsByEmail", ctx, email)
	ret0, _ := ret[0].(*domain.BodyMeasurements)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMeasurementsByEmail indicates an expected call of GetMeasurementsByEmail
func (mr *MockMeasurementsRepositoryMockRecorder) GetMeasurementsByEmail(ctx, email interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMeasurementsByEmail", reflect.TypeOf((*MockMeasurementsRepository)(nil).GetMeasurementsByEmail), ctx, email)
}
