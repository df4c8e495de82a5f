package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/fitportal/fitportal/internal/repository/testutil"
)

func photoRows(id string, status domain.PhotoStatus, now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "customer_email", "photo_url", "original_name", "file_size",
		"mime_type", "status", "is_virtual_fitting_photo", "webhook_sent",
		"webhook_attempts", "created_at", "updated_at",
	}).AddRow(
		id, "jane@example.com", "/api/photos/serve/abc.jpg", "holiday.jpg", int64(2048),
		"image/jpeg", string(status), false, false,
		0, now, now,
	)
}

func TestCreatePhoto(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewPhotoRepository(db)
	photo := &domain.Photo{
		CustomerEmail: "jane@example.com",
		PhotoURL:      "/api/photos/serve/abc.jpg",
	}

	mock.ExpectExec(`INSERT INTO photos`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreatePhoto(context.Background(), photo)
	require.NoError(t, err)
	assert.NotEmpty(t, photo.ID)
	assert.Equal(t, domain.PhotoStatusPending, photo.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPhotoByID(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewPhotoRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	id := "22222222-2222-2222-2222-222222222222"

	mock.ExpectQuery(`SELECT (.+) FROM photos WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(photoRows(id, domain.PhotoStatusPending, now))

	photo, err := repo.GetPhotoByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, photo.ID)
	assert.Equal(t, "holiday.jpg", *photo.OriginalName)

	mock.ExpectQuery(`SELECT (.+) FROM photos WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetPhotoByID(context.Background(), "missing")
	require.Error(t, err)
	assert.IsType(t, &domain.ErrPhotoNotFound{}, err)
}

func TestListPhotos(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewPhotoRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("no filter", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM photos ORDER BY created_at DESC`).
			WillReturnRows(photoRows("p1", domain.PhotoStatusPending, now))

		photos, err := repo.ListPhotos(context.Background(), domain.PhotoFilter{})
		require.NoError(t, err)
		require.Len(t, photos, 1)
		assert.Equal(t, "p1", photos[0].ID)
	})

	t.Run("status and email filter", func(t *testing.T) {
		status := domain.PhotoStatusCompleted
		mock.ExpectQuery(`SELECT (.+) FROM photos WHERE status = \$1 AND customer_email ILIKE \$2 ORDER BY created_at DESC LIMIT 10`).
			WithArgs(string(status), "%jane%").
			WillReturnRows(photoRows("p2", status, now))

		photos, err := repo.ListPhotos(context.Background(), domain.PhotoFilter{
			Status: &status,
			Email:  "jane",
			Limit:  10,
		})
		require.NoError(t, err)
		require.Len(t, photos, 1)
		assert.Equal(t, status, photos[0].Status)
	})
}

func TestUpdatePhotoStatus(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewPhotoRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	id := "33333333-3333-3333-3333-333333333333"

	t.Run("successful compare and set", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE photos`).
			WithArgs(id, string(domain.PhotoStatusPending), string(domain.PhotoStatusProcessing), sqlmock.AnyArg()).
			WillReturnRows(photoRows(id, domain.PhotoStatusProcessing, now))

		photo, err := repo.UpdatePhotoStatus(context.Background(), id, domain.PhotoStatusPending, domain.PhotoStatusProcessing)
		require.NoError(t, err)
		assert.Equal(t, domain.PhotoStatusProcessing, photo.Status)
	})

	t.Run("status moved concurrently", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE photos`).
			WithArgs(id, string(domain.PhotoStatusPending), string(domain.PhotoStatusProcessing), sqlmock.AnyArg()).
			WillReturnError(sql.ErrNoRows)

		// The photo still exists, its status just changed under us
		mock.ExpectQuery(`SELECT (.+) FROM photos WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(photoRows(id, domain.PhotoStatusCompleted, now))

		_, err := repo.UpdatePhotoStatus(context.Background(), id, domain.PhotoStatusPending, domain.PhotoStatusProcessing)
		require.Error(t, err)
		assert.IsType(t, &domain.ErrInvalidStatusTransition{}, err)
	})

	t.Run("photo not found", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE photos`).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(`SELECT (.+) FROM photos WHERE id = \$1`).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdatePhotoStatus(context.Background(), "missing", domain.PhotoStatusPending, domain.PhotoStatusProcessing)
		require.Error(t, err)
		assert.IsType(t, &domain.ErrPhotoNotFound{}, err)
	})
}

func TestUpdateWebhookState(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewPhotoRepository(db)

	mock.ExpectExec(`UPDATE photos`).
		WithArgs("p1", true, 2, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateWebhookState(context.Background(), "p1", true, 2)
	require.NoError(t, err)

	mock.ExpectExec(`UPDATE photos`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateWebhookState(context.Background(), "missing", false, 1)
	require.Error(t, err)
	assert.IsType(t, &domain.ErrPhotoNotFound{}, err)
}

func TestListPendingWebhooks(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewPhotoRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery(`SELECT (.+) FROM photos WHERE webhook_sent = FALSE AND webhook_attempts < \$1`).
		WithArgs(3, 50).
		WillReturnRows(photoRows("p1", domain.PhotoStatusPending, now))

	photos, err := repo.ListPendingWebhooks(context.Background(), 3, 50)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.False(t, photos[0].WebhookSent)
}

func TestGetStats(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	mock.MatchExpectationsInOrder(false)

	countRows := func(n int) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"count"}).AddRow(n)
	}
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM photos$`).WillReturnRows(countRows(10))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM photos WHERE status = \$1`).
		WithArgs(string(domain.PhotoStatusPending)).WillReturnRows(countRows(4))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM photos WHERE status = \$1`).
		WithArgs(string(domain.PhotoStatusProcessing)).WillReturnRows(countRows(2))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM photos WHERE status = \$1`).
		WithArgs(string(domain.PhotoStatusCompleted)).WillReturnRows(countRows(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM photos WHERE status = \$1`).
		WithArgs(string(domain.PhotoStatusFailed)).WillReturnRows(countRows(1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM photos WHERE is_virtual_fitting_photo = TRUE`).
		WillReturnRows(countRows(5))

	repo := NewPhotoRepository(db)
	stats, err := repo.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.PhotoStats{
		Total:               10,
		Pending:             4,
		Processing:          2,
		Completed:           3,
		Failed:              1,
		VirtualFittingCount: 5,
	}, stats)
}
