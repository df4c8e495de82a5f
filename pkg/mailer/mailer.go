package mailer

import (
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// Mailer is the interface for sending operational emails.
type Mailer interface {
	// SendWebhookFailureAlert notifies the operations address that webhook
	// delivery for a photo exhausted all retries.
	SendWebhookFailureAlert(photoID, customerEmail, reason string) error
}

// Config holds the configuration for the mailer
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	AlertEmail   string
}

// SMTPMailer implements the Mailer interface using SMTP
type SMTPMailer struct {
	config   *Config
	testMode bool
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: false,
	}
}

// NewTestSMTPMailer creates a mailer in test mode that builds messages but
// never connects to an SMTP server.
func NewTestSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: true,
	}
}

// SendWebhookFailureAlert notifies the alert address about an exhausted
// webhook delivery.
func (m *SMTPMailer) SendWebhookFailureAlert(photoID, customerEmail, reason string) error {
	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set email from address: %w", err)
	}

	if err := msg.To(m.config.AlertEmail); err != nil {
		return fmt.Errorf("failed to set email recipient: %w", err)
	}

	msg.Subject(fmt.Sprintf("Webhook delivery failed for photo %s", photoID))

	body := fmt.Sprintf(`
	<html>
		<body>
			<h1>Webhook delivery failed</h1>
			<p>All delivery attempts for photo <strong>%s</strong> (customer %s) have failed.</p>
			<p>Last error: %s</p>
			<p>The photo itself was uploaded successfully; only the downstream notification is affected.</p>
		</body>
	</html>`, photoID, customerEmail, reason)

	msg.SetBodyString(mail.TypeTextHTML, body)

	return m.send(msg)
}

func (m *SMTPMailer) send(msg *mail.Msg) error {
	if m.testMode {
		return nil
	}

	client, err := mail.NewClient(m.config.SMTPHost,
		mail.WithPort(m.config.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.config.SMTPUsername),
		mail.WithPassword(m.config.SMTPPassword),
		mail.WithTimeout(10*time.Second),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// NoopMailer discards alerts. Used when SMTP is not configured.
type NoopMailer struct{}

func (NoopMailer) SendWebhookFailureAlert(photoID, customerEmail, reason string) error {
	return nil
}
