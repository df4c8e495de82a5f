package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	svix "github.com/standard-webhooks/standard-webhooks/libraries/go"

	"github.com/fitportal/fitportal/config"
	"github.com/fitportal/fitportal/internal/domain"
	"github.com/fitportal/fitportal/pkg/logger"
	"github.com/fitportal/fitportal/pkg/mailer"
	"github.com/fitportal/fitportal/pkg/metrics"
)

const (
	webhookMaxRetries = 3
	webhookRetryDelay = time.Second
	// retryBatchSize caps how many photos one retry pass re-dispatches.
	retryBatchSize = 10
)

// WebhookPayload is the JSON body posted to the processing endpoint.
type WebhookPayload struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PhotoURL     string `json:"photoUrl"`
	Status       string `json:"status"`
	Timestamp    string `json:"timestamp"`
	OriginalName string `json:"originalName,omitempty"`
	FileSize     int64  `json:"fileSize,omitempty"`
	MimeType     string `json:"mimeType,omitempty"`
}

type WebhookService struct {
	photoRepo  domain.PhotoRepository
	mailer     mailer.Mailer
	client     *http.Client
	cfg        config.WebhookConfig
	retryDelay time.Duration
	logger     logger.Logger
}

func NewWebhookService(
	photoRepo domain.PhotoRepository,
	mailer mailer.Mailer,
	cfg config.WebhookConfig,
	logger logger.Logger,
) *WebhookService {
	return &WebhookService{
		photoRepo:  photoRepo,
		mailer:     mailer,
		client:     &http.Client{Timeout: 30 * time.Second},
		cfg:        cfg,
		retryDelay: webhookRetryDelay,
		logger:     logger,
	}
}

// DispatchPhotoUploaded delivers the upload notification, retrying with
// exponential backoff. Delivery bookkeeping is written back to the photo row
// after every attempt so a crash never loses track of progress.
func (s *WebhookService) DispatchPhotoUploaded(ctx context.Context, photo *domain.Photo) {
	if s.cfg.URL == "" {
		s.logger.Warn("Webhook URL not configured, skipping webhook")
		return
	}

	payload := WebhookPayload{
		ID:        photo.ID,
		Email:     photo.CustomerEmail,
		PhotoURL:  photo.PhotoURL,
		Status:    string(photo.Status),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if photo.OriginalName != nil {
		payload.OriginalName = *photo.OriginalName
	}
	if photo.FileSize != nil {
		payload.FileSize = *photo.FileSize
	}
	if photo.MimeType != nil {
		payload.MimeType = *photo.MimeType
	}

	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.WithField("photo_id", photo.ID).Error(fmt.Sprintf("Failed to marshal webhook payload: %v", err))
		return
	}

	var lastErr error
	for attempt := 0; attempt < webhookMaxRetries; attempt++ {
		s.logger.WithFields(map[string]interface{}{
			"photo_id": photo.ID,
			"attempt":  attempt + 1,
		}).Info("Sending photo webhook")

		if err := s.send(ctx, body); err != nil {
			lastErr = err
			s.logger.WithFields(map[string]interface{}{
				"photo_id": photo.ID,
				"attempt":  attempt + 1,
			}).Warn(fmt.Sprintf("Webhook attempt failed: %v", err))
			metrics.WebhookDeliveriesTotal.WithLabelValues("failed").Inc()

			if err := s.photoRepo.UpdateWebhookState(ctx, photo.ID, false, attempt+1); err != nil {
				s.logger.WithField("photo_id", photo.ID).Error(fmt.Sprintf("Failed to record webhook attempt: %v", err))
			}

			if attempt < webhookMaxRetries-1 {
				if !sleepCtx(ctx, s.retryDelay*(1<<attempt)) {
					return
				}
			}
			continue
		}

		metrics.WebhookDeliveriesTotal.WithLabelValues("delivered").Inc()
		if err := s.photoRepo.UpdateWebhookState(ctx, photo.ID, true, attempt); err != nil {
			s.logger.WithField("photo_id", photo.ID).Error(fmt.Sprintf("Failed to record webhook delivery: %v", err))
		}
		return
	}

	s.logger.WithField("photo_id", photo.ID).Error(fmt.Sprintf("All webhook attempts failed: %v", lastErr))
	metrics.WebhookDeliveriesTotal.WithLabelValues("exhausted").Inc()

	if s.cfg.AlertEmail != "" {
		reason := "unknown error"
		if lastErr != nil {
			reason = lastErr.Error()
		}
		if err := s.mailer.SendWebhookFailureAlert(photo.ID, photo.CustomerEmail, reason); err != nil {
			s.logger.WithField("photo_id", photo.ID).Error(fmt.Sprintf("Failed to send webhook failure alert: %v", err))
		}
	}
}

func (s *WebhookService) send(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := s.signRequest(req, body); err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post webhook: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint returned HTTP %d", resp.StatusCode)
	}
	return nil
}

// signRequest adds Standard Webhooks signature headers so the receiver can
// verify the payload.
func (s *WebhookService) signRequest(req *http.Request, body []byte) error {
	wh, err := svix.NewWebhook(s.cfg.Secret)
	if err != nil {
		return fmt.Errorf("failed to init webhook signer: %w", err)
	}

	msgID := uuid.New().String()
	now := time.Now().UTC()
	signature, err := wh.Sign(msgID, now, body)
	if err != nil {
		return fmt.Errorf("failed to sign webhook: %w", err)
	}

	req.Header.Set("webhook-id", msgID)
	req.Header.Set("webhook-timestamp", fmt.Sprintf("%d", now.Unix()))
	req.Header.Set("webhook-signature", signature)
	return nil
}

// RetryFailed re-dispatches photos whose webhook never succeeded and that
// still have attempts remaining. Dispatch is sequential so one stuck
// endpoint cannot fan out into a flood.
func (s *WebhookService) RetryFailed(ctx context.Context) (int, error) {
	photos, err := s.photoRepo.ListPendingWebhooks(ctx, webhookMaxRetries, retryBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending webhooks: %w", err)
	}

	for _, photo := range photos {
		s.logger.WithField("photo_id", photo.ID).Info("Retrying photo webhook")
		s.DispatchPhotoUploaded(ctx, photo)
	}

	return len(photos), nil
}

// sleepCtx waits for the duration and reports false when the context ended
// first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
