package mocks

import (
	"context"
	"reflect"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/golang/mock/gomock"
)

// MockPhotoRepository is a mock of PhotoRepository interface
type MockPhotoRepository struct {
	ctrl     *gomock.Controller
	recorder *MockPhotoRepositoryMockRecorder
}

// MockPhotoRepositoryMockRecorder is the mock recorder for MockPhotoRepository
type MockPhotoRepositoryMockRecorder struct {
	mock *MockPhotoRepository
}

// NewMockPhotoRepository creates a new mock instance
func NewMockPhotoRepository(ctrl *gomock.Controller) *MockPhotoRepository {
	mock := &MockPhotoRepository{ctrl: ctrl}
	mock.recorder = &MockPhotoRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockPhotoRepository) EXPECT() *MockPhotoRepositoryMockRecorder {
	return m.recorder
}

// CreatePhoto mocks base method
func (m *MockPhotoRepository) CreatePhoto(ctx context.Context, photo *domain.Photo) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreatePhoto", ctx, photo)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreatePhoto indicates an expected call of CreatePhoto
func (mr *MockPhotoRepositoryMockRecorder) CreatePhoto(ctx, photo interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreatePhoto", reflect.TypeOf((*MockPhotoRepository)(nil).CreatePhoto), ctx, photo)
}

// GetPhotoByID mocks base method
func (m *MockPhotoRepository) GetPhotoByID(ctx context.Context, id string) (*domain.Photo, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPhotoByID", ctx, id)
	ret0, _ := ret[0].(*domain.Photo)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPhotoByID indicates an expected call of GetPhotoByID
func (mr *MockPhotoRepositoryMockRecorder) GetPhotoByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPhotoByID", reflect.TypeOf((*MockPhotoRepository)(nil).GetPhotoByID), ctx, id)
}

// ListPhotos mocks base method
func (m *MockPhotoRepository) ListPhotos(ctx context.Context, filter domain.PhotoFilter) ([]*domain.Photo, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPhotos", ctx, filter)
	ret0, _ := ret[0].([]*domain.Photo)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListPhotos indicates an expected call of ListPhotos
func (mr *MockPhotoRepositoryMockRecorder) ListPhotos(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPhotos", reflect.TypeOf((*MockPhotoRepository)(nil).ListPhotos), ctx, filter)
}

// UpdatePhotoStatus mocks base method
func (m *MockPhotoRepository) UpdatePhotoStatus(ctx context.Context, id string, expected, target domain.PhotoStatus) (*domain.Photo, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePhotoStatus", ctx, id, expected, target)
	ret0, _ := ret[0].(*domain.Photo)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdatePhotoStatus indicates an expected call of UpdatePhotoStatus
func (mr *MockPhotoRepositoryMockRecorder) UpdatePhotoStatus(ctx, id, expected, target interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePhotoStatus", reflect.TypeOf((*MockPhotoRepository)(nil).UpdatePhotoStatus), ctx, id, expected, target)
}

// UpdateWebhookState mocks base method
func (m *MockPhotoRepository) UpdateWebhookState(ctx context.Context, id string, sent bool, attempts int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateWebhookState", ctx, id, sent, attempts)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateWebhookState indicates an expected call of UpdateWebhookState
func (mr *MockPhotoRepositoryMockRecorder) UpdateWebhookState(ctx, id, sent, attempts interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateWebhookState", reflect.TypeOf((*MockPhotoRepository)(nil).UpdateWebhookState), ctx, id, sent, attempts)
}

// ListPendingWebhooks mocks base method
func (m *MockPhotoRepository) ListPendingWebhooks(ctx context.Context, maxAttempts, limit int) ([]*domain.Photo, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPendingWebhooks", ctx, maxAttempts, limit)
	ret0, _ := ret[0].([]*domain.Photo)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListPendingWebhooks indicates an expected call of ListPendingWebhooks
func (mr *MockPhotoRepositoryMockRecorder) ListPendingWebhooks(ctx, maxAttempts, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPendingWebhooks", reflect.TypeOf((*MockPhotoRepository)(nil).ListPendingWebhooks), ctx, maxAttempts, limit)
}

// GetStats mocks base method
func (m *MockPhotoRepository) GetStats(ctx context.Context) (*domain.PhotoStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStats", ctx)
	ret0, _ := ret[0].(*domain.PhotoStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetStats indicates an expected call of GetStats
func (mr *MockPhotoRepositoryMockRecorder) GetStats(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStats", reflect.TypeOf((*MockPhotoRepository)(nil).GetStats), ctx)
}
