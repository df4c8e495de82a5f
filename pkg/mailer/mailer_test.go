package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testConfig() *Config {
	return &Config{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     587,
		SMTPUsername: "user",
		SMTPPassword: "pass",
		FromEmail:    "noreply@example.com",
		FromName:     "FitPortal",
		AlertEmail:   "ops@example.com",
	}
}

func TestSMTPMailer_SendWebhookFailureAlert(t *testing.T) {
	m := NewTestSMTPMailer(testConfig())

	err := m.SendWebhookFailureAlert("photo-123", "customer@example.com", "HTTP 500")
	assert.NoError(t, err)
}

func TestSMTPMailer_SendWebhookFailureAlert_InvalidRecipient(t *testing.T) {
	cfg := testConfig()
	cfg.AlertEmail = "not-an-email"
	m := NewTestSMTPMailer(cfg)

	err := m.SendWebhookFailureAlert("photo-123", "customer@example.com", "HTTP 500")
	assert.Error(t, err)
}

func TestNoopMailer(t *testing.T) {
	var m Mailer = NoopMailer{}
	assert.NoError(t, m.SendWebhookFailureAlert("id", "email", "reason"))
}
