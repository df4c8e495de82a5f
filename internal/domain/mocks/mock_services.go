package mocks

import (
	"context"
	"reflect"
	"time"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/golang/mock/gomock"
)

// MockCustomerService is a mock of CustomerService interface
type MockCustomerService struct {
	ctrl     *gomock.Controller
	recorder *MockCustomerServiceMockRecorder
}

// MockCustomerServiceMockRecorder is the mock recorder for MockCustomerService
type MockCustomerServiceMockRecorder struct {
	mock *MockCustomerService
}

// NewMockCustomerService creates a new mock instance
func NewMockCustomerService(ctrl *gomock.Controller) *MockCustomerService {
	mock := &MockCustomerService{ctrl: ctrl}
	mock.recorder = &MockCustomerServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockCustomerService) EXPECT() *MockCustomerServiceMockRecorder {
	return m.recorder
}

// UpsertProfile mocks base method
func (m *MockCustomerService) UpsertProfile(ctx context.Context, req *domain.UpsertCustomerRequest) (*domain.Customer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertProfile", ctx, req)
	ret0, _ := ret[0].(*domain.Customer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpsertProfile indicates an expected call of UpsertProfile
func (mr *MockCustomerServiceMockRecorder) UpsertProfile(ctx, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertProfile", reflect.TypeOf((*MockCustomerService)(nil).UpsertProfile), ctx, req)
}

// GetProfile mocks base method
func (m *MockCustomerService) GetProfile(ctx context.Context, email string) (*domain.Customer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProfile", ctx, email)
	ret0, _ := ret[0].(*domain.Customer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProfile indicates an expected call of GetProfile
func (mr *MockCustomerServiceMockRecorder) GetProfile(ctx, email interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProfile", reflect.TypeOf((*MockCustomerService)(nil).GetProfile), ctx, email)
}

// UpsertMeasurements mocks base method
func (m *MockCustomerService) UpsertMeasurements(ctx context.Context, req *domain.UpsertMeasurementsRequest) (*domain.BodyMeasurements, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertMeasurements", ctx, req)
	ret0, _ := ret[0].(*domain.BodyMeasurements)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpsertMeasurements indicates an expected call of UpsertMeasurements
func (mr *MockCustomerServiceMockRecorder) UpsertMeasurements(ctx, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertMeasurements", reflect.TypeOf((*MockCustomerService)(nil).UpsertMeasurements), ctx, req)
}

// GetMeasurements mocks base method
func (m *MockCustomerService) GetMeasurements(ctx context.Context, email string) (*domain.BodyMeasurements, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMeasurements", ctx, email)
	ret0, _ := ret[0].(*domain.BodyMeasurements)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMeasurements indicates an expected call of GetMeasurements
func (mr *MockCustomerServiceMockRecorder) GetMeasurements(ctx, email interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMeasurements", reflect.TypeOf((*MockCustomerService)(nil).GetMeasurements), ctx, email)
}

// MockPhotoService is a mock of PhotoService interface
type MockPhotoService struct {
	ctrl     *gomock.Controller
	recorder *MockPhotoServiceMockRecorder
}

// MockPhotoServiceMockRecorder is the mock recorder for MockPhotoService
type MockPhotoServiceMockRecorder struct {
	mock *MockPhotoService
}

// NewMockPhotoService creates a new mock instance
func NewMockPhotoService(ctrl *gomock.Controller) *MockPhotoService {
	mock := &MockPhotoService{ctrl: ctrl}
	mock.recorder = &MockPhotoServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockPhotoService) EXPECT() *MockPhotoServiceMockRecorder {
	return m.recorder
}

// UploadPhoto mocks base method
func (m *MockPhotoService) UploadPhoto(ctx context.Context, req *domain.UploadPhotoRequest) (*domain.Photo, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UploadPhoto", ctx, req)
	ret0, _ := ret[0].(*domain.Photo)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UploadPhoto indicates an expected call of UploadPhoto
func (mr *MockPhotoServiceMockRecorder) UploadPhoto(ctx, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UploadPhoto", reflect.TypeOf((*MockPhotoService)(nil).UploadPhoto), ctx, req)
}

// ListPhotos mocks base method
func (m *MockPhotoService) ListPhotos(ctx context.Context, filter domain.PhotoFilter) ([]*domain.Photo, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPhotos", ctx, filter)
	ret0, _ := ret[0].([]*domain.Photo)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListPhotos indicates an expected call of ListPhotos
func (mr *MockPhotoServiceMockRecorder) ListPhotos(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPhotos", reflect.TypeOf((*MockPhotoService)(nil).ListPhotos), ctx, filter)
}

// UpdateStatus mocks base method
func (m *MockPhotoService) UpdateStatus(ctx context.Context, id string, target domain.PhotoStatus) (*domain.Photo, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", ctx, id, target)
	ret0, _ := ret[0].(*domain.Photo)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateStatus indicates an expected call of UpdateStatus
func (mr *MockPhotoServiceMockRecorder) UpdateStatus(ctx, id, target interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockPhotoService)(nil).UpdateStatus), ctx, id, target)
}

// GetStats mocks base method
func (m *MockPhotoService) GetStats(ctx context.Context) (*domain.PhotoStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStats", ctx)
	ret0, _ := ret[0].(*domain.PhotoStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetStats indicates an expected call of GetStats
func (mr *MockPhotoServiceMockRecorder) GetStats(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStats", reflect.TypeOf((*MockPhotoService)(nil).GetStats), ctx)
}

// MockSizingService is a mock of SizingService interface
type MockSizingService struct {
	ctrl     *gomock.Controller
	recorder *MockSizingServiceMockRecorder
}

// MockSizingServiceMockRecorder is the mock recorder for MockSizingService
type MockSizingServiceMockRecorder struct {
	mock *MockSizingService
}

// NewMockSizingService creates a new mock instance
func NewMockSizingService(ctrl *gomock.Controller) *MockSizingService {
	mock := &MockSizingService{ctrl: ctrl}
	mock.recorder = &MockSizingServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockSizingService) EXPECT() *MockSizingServiceMockRecorder {
	return m.recorder
}

// GetRecommendation mocks base method
func (m *MockSizingService) GetRecommendation(ctx context.Context, email, productType, brand, collection string) (*domain.Recommendation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecommendation", ctx, email, productType, brand, collection)
	ret0, _ := ret[0].(*domain.Recommendation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecommendation indicates an expected call of GetRecommendation
func (mr *MockSizingServiceMockRecorder) GetRecommendation(ctx, email, productType, brand, collection interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecommendation", reflect.TypeOf((*MockSizingService)(nil).GetRecommendation), ctx, email, productType, brand, collection)
}

// GetHistory mocks base method
func (m *MockSizingService) GetHistory(ctx context.Context, email, productType string) ([]*domain.SizeRecommendation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetHistory", ctx, email, productType)
	ret0, _ := ret[0].([]*domain.SizeRecommendation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetHistory indicates an expected call of GetHistory
func (mr *MockSizingServiceMockRecorder) GetHistory(ctx, email, productType interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetHistory", reflect.TypeOf((*MockSizingService)(nil).GetHistory), ctx, email, productType)
}

// MockShopifyService is a mock of ShopifyService interface
type MockShopifyService struct {
	ctrl     *gomock.Controller
	recorder *MockShopifyServiceMockRecorder
}

// MockShopifyServiceMockRecorder is the mock recorder for MockShopifyService
type MockShopifyServiceMockRecorder struct {
	mock *MockShopifyService
}

// NewMockShopifyService creates a new mock instance
func NewMockShopifyService(ctrl *gomock.Controller) *MockShopifyService {
	mock := &MockShopifyService{ctrl: ctrl}
	mock.recorder = &MockShopifyServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockShopifyService) EXPECT() *MockShopifyServiceMockRecorder {
	return m.recorder
}

// Enabled mocks base method
func (m *MockShopifyService) Enabled() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Enabled")
	ret0, _ := ret[0].(bool)
	return ret0
}

// Enabled indicates an expected call of Enabled
func (mr *MockShopifyServiceMockRecorder) Enabled() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Enabled", reflect.TypeOf((*MockShopifyService)(nil).Enabled))
}

// SyncOrders mocks base method
func (m *MockShopifyService) SyncOrders(ctx context.Context, email string) ([]*domain.ShopifyOrder, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SyncOrders", ctx, email)
	ret0, _ := ret[0].([]*domain.ShopifyOrder)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SyncOrders indicates an expected call of SyncOrders
func (mr *MockShopifyServiceMockRecorder) SyncOrders(ctx, email interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SyncOrders", reflect.TypeOf((*MockShopifyService)(nil).SyncOrders), ctx, email)
}

// ListCachedOrders mocks base method
func (m *MockShopifyService) ListCachedOrders(ctx context.Context, email string) ([]*domain.ShopifyOrder, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListCachedOrders", ctx, email)
	ret0, _ := ret[0].([]*domain.ShopifyOrder)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListCachedOrders indicates an expected call of ListCachedOrders
func (mr *MockShopifyServiceMockRecorder) ListCachedOrders(ctx, email interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListCachedOrders", reflect.TypeOf((*MockShopifyService)(nil).ListCachedOrders), ctx, email)
}

// GetCustomer mocks base method
func (m *MockShopifyService) GetCustomer(ctx context.Context, email string) (*domain.ShopifyCustomer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCustomer", ctx, email)
	ret0, _ := ret[0].(*domain.ShopifyCustomer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCustomer indicates an expected call of GetCustomer
func (mr *MockShopifyServiceMockRecorder) GetCustomer(ctx, email interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCustomer", reflect.TypeOf((*MockShopifyService)(nil).GetCustomer), ctx, email)
}

// MockAuthService is a mock of AuthService interface
type MockAuthService struct {
	ctrl     *gomock.Controller
	recorder *MockAuthServiceMockRecorder
}

// MockAuthServiceMockRecorder is the mock recorder for MockAuthService
type MockAuthServiceMockRecorder struct {
	mock *MockAuthService
}

// NewMockAuthService creates a new mock instance
func NewMockAuthService(ctrl *gomock.Controller) *MockAuthService {
	mock := &MockAuthService{ctrl: ctrl}
	mock.recorder = &MockAuthServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockAuthService) EXPECT() *MockAuthServiceMockRecorder {
	return m.recorder
}

// AdminLogin mocks base method
func (m *MockAuthService) AdminLogin(ctx context.Context, password string) (string, time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AdminLogin", ctx, password)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(time.Time)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// AdminLogin indicates an expected call of AdminLogin
func (mr *MockAuthServiceMockRecorder) AdminLogin(ctx, password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AdminLogin", reflect.TypeOf((*MockAuthService)(nil).AdminLogin), ctx, password)
}

// VerifyAdminToken mocks base method
func (m *MockAuthService) VerifyAdminToken(token string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyAdminToken", token)
	ret0, _ := ret[0].(error)
	return ret0
}

// VerifyAdminToken indicates an expected call of VerifyAdminToken
func (mr *MockAuthServiceMockRecorder) VerifyAdminToken(token interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyAdminToken", reflect.TypeOf((*MockAuthService)(nil).VerifyAdminToken), token)
}

// Register mocks base method
func (m *MockAuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Register", ctx, req)
	ret0, _ := ret[0].(*domain.AuthResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Register indicates an expected call of Register
func (mr *MockAuthServiceMockRecorder) Register(ctx, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Register", reflect.TypeOf((*MockAuthService)(nil).Register), ctx, req)
}

// Login mocks base method
func (m *MockAuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Login", ctx, req)
	ret0, _ := ret[0].(*domain.AuthResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Login indicates an expected call of Login
func (mr *MockAuthServiceMockRecorder) Login(ctx, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Login", reflect.TypeOf((*MockAuthService)(nil).Login), ctx, req)
}

// MockWebhookDispatcher is a mock of WebhookDispatcher interface
type MockWebhookDispatcher struct {
	ctrl     *gomock.Controller
	recorder *MockWebhookDispatcherMockRecorder
}

// MockWebhookDispatcherMockRecorder is the mock recorder for MockWebhookDispatcher
type MockWebhookDispatcherMockRecorder struct {
	mock *MockWebhookDispatcher
}

// NewMockWebhookDispatcher creates a new mock instance
func NewMockWebhookDispatcher(ctrl *gomock.Controller) *MockWebhookDispatcher {
	mock := &MockWebhookDispatcher{ctrl: ctrl}
	mock.recorder = &MockWebhookDispatcherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockWebhookDispatcher) EXPECT() *MockWebhookDispatcherMockRecorder {
	return m.recorder
}

// DispatchPhotoUploaded mocks base method
func (m *MockWebhookDispatcher) DispatchPhotoUploaded(ctx context.Context, photo *domain.Photo) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "DispatchPhotoUploaded", ctx, photo)
}

// DispatchPhotoUploaded indicates an expected call of DispatchPhotoUploaded
func (mr *MockWebhookDispatcherMockRecorder) DispatchPhotoUploaded(ctx, photo interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DispatchPhotoUploaded", reflect.TypeOf((*MockWebhookDispatcher)(nil).DispatchPhotoUploaded), ctx, photo)
}

// RetryFailed mocks base method
func (m *MockWebhookDispatcher) RetryFailed(ctx context.Context) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RetryFailed", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RetryFailed indicates an expected call of RetryFailed
func (mr *MockWebhookDispatcherMockRecorder) RetryFailed(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RetryFailed", reflect.TypeOf((*MockWebhookDispatcher)(nil).RetryFailed), ctx)
}
