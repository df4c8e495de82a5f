package mocks

import (
	"reflect"

	"github.com/golang/mock/gomock"
)

// MockMailer is a mock of Mailer interface
type MockMailer struct {
	ctrl     *gomock.Controller
	recorder *MockMailerMockRecorder
}

// MockMailerMockRecorder is the mock recorder for MockMailer
type MockMailerMockRecorder struct {
	mock *MockMailer
}

// NewMockMailer creates a new mock instance
func NewMockMailer(ctrl *gomock.Controller) *MockMailer {
	mock := &MockMailer{ctrl: ctrl}
	mock.recorder = &MockMailerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockMailer) EXPECT() *MockMailerMockRecorder {
	return m.recorder
}

// SendWebhookFailureAlert mocks base method
func (m *MockMailer) SendWebhookFailureAlert(photoID, customerEmail, reason string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendWebhookFailureAlert", photoID, customerEmail, reason)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendWebhookFailureAlert indicates an expected call of SendWebhookFailureAlert
func (mr *MockMailerMockRecorder) SendWebhookFailureAlert(photoID, customerEmail, reason interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendWebhookFailureAlert", reflect.TypeOf((*MockMailer)(nil).SendWebhookFailureAlert), photoID, customerEmail, reason)
}
