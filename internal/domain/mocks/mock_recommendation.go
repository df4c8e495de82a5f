package mocks

import (
	"context"
	"reflect"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/golang/mock/gomock"
)

// MockSizeRecommendationRepository is a mock of SizeRecommendationRepository interface
type MockSizeRecommendationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockSizeRecommendationRepositoryMockRecorder
}

// MockSizeRecommendationRepositoryMockRecorder is the mock recorder for MockSizeRecommendationRepository
type MockSizeRecommendationRepositoryMockRecorder struct {
	mock *MockSizeRecommendationRepository
}

// NewMockSizeRecommendationRepository creates a new mock instance
func NewMockSizeRecommendationRepository(ctrl *gomock.Controller) *MockSizeRecommendationRepository {
	mock := &MockSizeRecommendationRepository{ctrl: ctrl}
	mock.recorder = &MockSizeRecommendationRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockSizeRecommendationRepository) EXPECT() *MockSizeRecommendationRepositoryMockRecorder {
	return m.recorder
}

// CreateRecommendation mocks base method
func (m *MockSizeRecommendationRepository) CreateRecommendation(ctx context.Context, rec *domain.SizeRecommendation) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateRecommendation", ctx, rec)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateRecommendation indicates an expected call of CreateRecommendation
func (mr *MockSizeRecommendationRepositoryMockRecorder) CreateRecommendation(ctx, rec interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateRecommendation", reflect.TypeOf((*MockSizeRecommendationRepository)(nil).CreateRecommendation), ctx, rec)
}

// ListRecommendations mocks base method
func (m *MockSizeRecommendationRepository) ListRecommendations(ctx context.Context, email, productType string) ([]*domain.SizeRecommendation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRecommendations", ctx, email, productType)
	ret0, _ := ret[0].([]*domain.SizeRecommendation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRecommendations indicates an expected call of ListRecommendations
func (mr *MockSizeRecommendationRepositoryMockRecorder) ListRecommendations(ctx, email, productType interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRecommendations", reflect.TypeOf((*MockSizeRecommendationRepository)(nil).ListRecommendations), ctx, email, productType)
}
