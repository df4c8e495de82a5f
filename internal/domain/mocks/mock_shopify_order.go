package mocks

import (
	"context"
	"reflect"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/golang/mock/gomock"
)

// MockShopifyOrderRepository is a mock of ShopifyOrderRepository interface
type MockShopifyOrderRepository struct {
	ctrl     *gomock.Controller
	recorder *MockShopifyOrderRepositoryMockRecorder
}

// MockShopifyOrderRepositoryMockRecorder is the mock recorder for MockShopifyOrderRepository
type MockShopifyOrderRepositoryMockRecorder struct {
	mock *MockShopifyOrderRepository
}

// NewMockShopifyOrderRepository creates a new mock instance
func NewMockShopifyOrderRepository(ctrl *gomock.Controller) *MockShopifyOrderRepository {
	mock := &MockShopifyOrderRepository{ctrl: ctrl}
	mock.recorder = &MockShopifyOrderRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockShopifyOrderRepository) EXPECT() *MockShopifyOrderRepositoryMockRecorder {
	return m.recorder
}

// UpsertOrder mocks base method
func (m *MockShopifyOrderRepository) UpsertOrder(ctx context.Context, order *domain.ShopifyOrder) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertOrder", ctx, order)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertOrder indicates an expected call of UpsertOrder
func (mr *MockShopifyOrderRepositoryMockRecorder) UpsertOrder(ctx, order interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertOrder", reflect.TypeOf((*MockShopifyOrderRepository)(nil).UpsertOrder), ctx, order)
}

// ListOrdersByEmail mocks base method
func (m *MockShopifyOrderRepository) ListOrdersByEmail(ctx context.Context, email string, limit int) ([]*domain.ShopifyOrder, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListOrdersByEmail", ctx, email, limit)
	ret0, _ := ret[0].([]*domain.ShopifyOrder)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListOrdersByEmail indicates an expected call of ListOrdersByEmail
func (mr *MockShopifyOrderRepositoryMockRecorder) ListOrdersByEmail(ctx, email, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListOrdersByEmail", reflect.TypeOf((*MockShopifyOrderRepository)(nil).ListOrdersByEmail), ctx, email, limit)
}
