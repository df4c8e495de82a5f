package mocks

import (
	"context"
	"reflect"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/golang/mock/gomock"
)

// MockSizeChartRepository is a mock of SizeChartRepository interface
type MockSizeChartRepository struct {
	ctrl     *gomock.Controller
	recorder *MockSizeChartRepositoryMockRecorder
}

// MockSizeChartRepositoryMockRecorder is the mock recorder for MockSizeChartRepository
type MockSizeChartRepositoryMockRecorder struct {
	mock *MockSizeChartRepository
}

// NewMockSizeChartRepository creates a new mock instance
func NewMockSizeChartRepository(ctrl *gomock.Controller) *MockSizeChartRepository {
	mock := &MockSizeChartRepository{ctrl: ctrl}
	mock.recorder = &MockSizeChartRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockSizeChartRepository) EXPECT() *MockSizeChartRepositoryMockRecorder {
	return m.recorder
}

// CreateSizeChart mocks base method
func (m *MockSizeChartRepository) CreateSizeChart(ctx context.Context, chart *domain.SizeChart) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateSizeChart", ctx, chart)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateSizeChart indicates an expected call of CreateSizeChart
func (mr *MockSizeChartRepositoryMockRecorder) CreateSizeChart(ctx, chart interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateSizeChart", reflect.TypeOf((*MockSizeChartRepository)(nil).CreateSizeChart), ctx, chart)
}

// GetSizeCharts mocks base method
func (m *MockSizeChartRepository) GetSizeCharts(ctx context.Context, productType string) ([]*domain.SizeChart, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSizeCharts", ctx, productType)
	ret0, _ := ret[0].([]*domain.SizeChart)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSizeCharts indicates an expected call of GetSizeCharts
func (mr *MockSizeChartRepositoryMockRecorder) GetSizeCharts(ctx, productType interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSizeCharts", reflect.TypeOf((*MockSizeChartRepository)(nil).GetSizeCharts), ctx, productType)
}

// CountSizeCharts mocks base method
func (m *MockSizeChartRepository) CountSizeCharts(ctx context.Context) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountSizeCharts", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountSizeCharts indicates an expected call of CountSizeCharts
func (mr *MockSizeChartRepositoryMockRecorder) CountSizeCharts(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountSizeCharts", reflect.TypeOf((*MockSizeChartRepository)(nil).CountSizeCharts), ctx)
}
