package mocks

import (
	"context"
	"reflect"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/golang/mock/gomock"
)

// MockCustomerRepository is a mock of CustomerRepository interface
type MockCustomerRepository struct {
	ctrl     *gomock.Controller
	recorder *MockCustomerRepositoryMockRecorder
}

// MockCustomerRepositoryMockRecorder is the mock recorder for MockCustomerRepository
type MockCustomerRepositoryMockRecorder struct {
	mock *MockCustomerRepository
}

// NewMockCustomerRepository creates a new mock instance
func NewMockCustomerRepository(ctrl *gomock.Controller) *MockCustomerRepository {
	mock := &MockCustomerRepository{ctrl: ctrl}
	mock.recorder = &MockCustomerRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockCustomerRepository) EXPECT() *MockCustomerRepositoryMockRecorder {
	return m.recorder
}

// UpsertCustomer mocks base method
func (m *MockCustomerRepository) UpsertCustomer(ctx context.Context, customer *domain.Customer) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertCustomer", ctx, customer)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertCustomer indicates an expected call of UpsertCustomer
func (mr *MockCustomerRepositoryMockRecorder) UpsertCustomer(ctx, customer interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertCustomer", reflect.TypeOf((*MockCustomerRepository)(nil).UpsertCustomer), ctx, customer)
}

// GetCustomerByEmail mocks base method
func (m *MockCustomerRepository) GetCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCustomerByEmail", ctx, email)
	ret0, _ := ret[0].(*domain.Customer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCustomerByEmail indicates an expected call of GetCustomerByEmail
func (mr *MockCustomerRepositoryMockRecorder) GetCustomerByEmail(ctx, email interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCustomerByEmail", reflect.TypeOf((*MockCustomerRepository)(nil).GetCustomerByEmail), ctx, email)
}

// UpdateShopifyProfile mocks base method
func (m *MockCustomerRepository) UpdateShopifyProfile(ctx context.Context, email string, firstName, lastName, phone, shopifyCustomerID *string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateShopifyProfile", ctx, email, firstName, lastName, phone, shopifyCustomerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateShopifyProfile indicates an expected call of UpdateShopifyProfile
func (mr *MockCustomerRepositoryMockRecorder) UpdateShopifyProfile(ctx, email, firstName, lastName, phone, shopifyCustomerID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateShopifyProfile", reflect.TypeOf((*MockCustomerRepository)(nil).UpdateShopifyProfile), ctx, email, firstName, lastName, phone, shopifyCustomerID)
}
