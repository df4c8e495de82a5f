package domain

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// PhotoStatus is the processing state of an uploaded photo. Statuses only
// move forward: pending -> processing -> completed/failed.
type PhotoStatus string

const (
	PhotoStatusPending    PhotoStatus = "pending"
	PhotoStatusProcessing PhotoStatus = "processing"
	PhotoStatusCompleted  PhotoStatus = "completed"
	PhotoStatusFailed     PhotoStatus = "failed"
)

var photoStatusRank = map[PhotoStatus]int{
	PhotoStatusPending:    0,
	PhotoStatusProcessing: 1,
	PhotoStatusCompleted:  2,
	PhotoStatusFailed:     2,
}

// ParsePhotoStatus parses a status string case-insensitively.
func ParsePhotoStatus(s string) (PhotoStatus, error) {
	switch PhotoStatus(strings.ToLower(s)) {
	case PhotoStatusPending:
		return PhotoStatusPending, nil
	case PhotoStatusProcessing:
		return PhotoStatusProcessing, nil
	case PhotoStatusCompleted:
		return PhotoStatusCompleted, nil
	case PhotoStatusFailed:
		return PhotoStatusFailed, nil
	default:
		return "", NewValidationError("invalid status. Allowed values: pending, processing, completed, failed")
	}
}

// IsValid reports whether the status is one of the known values.
func (s PhotoStatus) IsValid() bool {
	_, ok := photoStatusRank[s]
	return ok
}

// CanTransitionTo reports whether moving to the target status is a forward
// transition. Setting the same status again is allowed; completed and
// failed are terminal with respect to each other.
func (s PhotoStatus) CanTransitionTo(target PhotoStatus) bool {
	from, ok := photoStatusRank[s]
	if !ok {
		return false
	}
	to, ok := photoStatusRank[target]
	if !ok {
		return false
	}
	if s == target {
		return true
	}
	if from == to {
		// completed <-> failed would be a sideways move between terminals
		return false
	}
	return to > from
}

// Photo represents an uploaded customer photo.
type Photo struct {
	ID                    string      `json:"id"`
	CustomerEmail         string      `json:"customerEmail"`
	PhotoURL              string      `json:"photoUrl"`
	OriginalName          *string     `json:"originalName,omitempty"`
	FileSize              *int64      `json:"fileSize,omitempty"`
	MimeType              *string     `json:"mimeType,omitempty"`
	Status                PhotoStatus `json:"status"`
	IsVirtualFittingPhoto bool        `json:"isVirtualFittingPhoto"`
	WebhookSent           bool        `json:"webhookSent"`
	WebhookAttempts       int         `json:"webhookAttempts"`
	CreatedAt             time.Time   `json:"createdAt"`
	UpdatedAt             time.Time   `json:"updatedAt"`
}

// PhotoStats holds aggregate counts for the admin dashboard.
type PhotoStats struct {
	Total               int `json:"total"`
	Pending             int `json:"pending"`
	Processing          int `json:"processing"`
	Completed           int `json:"completed"`
	Failed              int `json:"failed"`
	VirtualFittingCount int `json:"virtualFittingPhotos"`
}

// PhotoFilter narrows photo listings.
type PhotoFilter struct {
	Status *PhotoStatus
	Email  string // substring match on customer email
	Limit  int
}

type dbPhoto struct {
	ID                    string
	CustomerEmail         string
	PhotoURL              string
	OriginalName          sql.NullString
	FileSize              sql.NullInt64
	MimeType              sql.NullString
	Status                string
	IsVirtualFittingPhoto bool
	WebhookSent           bool
	WebhookAttempts       int
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ScanPhoto scans a photo row from the database.
func ScanPhoto(scanner interface {
	Scan(dest ...interface{}) error
}) (*Photo, error) {
	var dbp dbPhoto
	if err := scanner.Scan(
		&dbp.ID,
		&dbp.CustomerEmail,
		&dbp.PhotoURL,
		&dbp.OriginalName,
		&dbp.FileSize,
		&dbp.MimeType,
		&dbp.Status,
		&dbp.IsVirtualFittingPhoto,
		&dbp.WebhookSent,
		&dbp.WebhookAttempts,
		&dbp.CreatedAt,
		&dbp.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p := &Photo{
		ID:                    dbp.ID,
		CustomerEmail:         dbp.CustomerEmail,
		PhotoURL:              dbp.PhotoURL,
		Status:                PhotoStatus(dbp.Status),
		IsVirtualFittingPhoto: dbp.IsVirtualFittingPhoto,
		WebhookSent:           dbp.WebhookSent,
		WebhookAttempts:       dbp.WebhookAttempts,
		CreatedAt:             dbp.CreatedAt,
		UpdatedAt:             dbp.UpdatedAt,
	}
	if dbp.OriginalName.Valid {
		p.OriginalName = &dbp.OriginalName.String
	}
	if dbp.FileSize.Valid {
		p.FileSize = &dbp.FileSize.Int64
	}
	if dbp.MimeType.Valid {
		p.MimeType = &dbp.MimeType.String
	}

	return p, nil
}

//go:generate mockgen -destination=mocks/mock_photo.go -package=mocks github.com/fitportal/fitportal/internal/domain PhotoRepository

// PhotoRepository is the persistence interface for photos.
type PhotoRepository interface {
	CreatePhoto(ctx context.Context, photo *Photo) error
	GetPhotoByID(ctx context.Context, id string) (*Photo, error)
	// ListPhotos returns photos newest first, narrowed by the filter.
	ListPhotos(ctx context.Context, filter PhotoFilter) ([]*Photo, error)
	// UpdatePhotoStatus performs a compare-and-set: the row is only updated
	// when its current status still equals expected, which guards
	// concurrent updates against lost writes.
	UpdatePhotoStatus(ctx context.Context, id string, expected, target PhotoStatus) (*Photo, error)
	// UpdateWebhookState records the delivery bookkeeping after an attempt.
	UpdateWebhookState(ctx context.Context, id string, sent bool, attempts int) error
	// ListPendingWebhooks returns photos whose webhook never succeeded and
	// that still have attempts remaining, oldest first.
	ListPendingWebhooks(ctx context.Context, maxAttempts, limit int) ([]*Photo, error)
	GetStats(ctx context.Context) (*PhotoStats, error)
}

// UploadPhotoRequest is the payload for storing an uploaded photo.
type UploadPhotoRequest struct {
	CustomerEmail         string
	OriginalName          string
	MimeType              string
	Size                  int64
	Content               []byte
	IsVirtualFittingPhoto bool
}

// PhotoService is the business interface consumed by HTTP handlers.
type PhotoService interface {
	// UploadPhoto validates and persists the upload, ensures the customer
	// exists, and queues the webhook notification.
	UploadPhoto(ctx context.Context, req *UploadPhotoRequest) (*Photo, error)
	ListPhotos(ctx context.Context, filter PhotoFilter) ([]*Photo, error)
	// UpdateStatus moves the photo forward to the target status.
	UpdateStatus(ctx context.Context, id string, target PhotoStatus) (*Photo, error)
	GetStats(ctx context.Context) (*PhotoStats, error)
}

// WebhookDispatcher notifies the external processing pipeline about uploads.
type WebhookDispatcher interface {
	// DispatchPhotoUploaded delivers the upload notification with retries,
	// recording the attempts on the photo row.
	DispatchPhotoUploaded(ctx context.Context, photo *Photo)
	// RetryFailed re-dispatches photos whose delivery never succeeded and
	// returns how many were queued.
	RetryFailed(ctx context.Context) (int, error)
}
