package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/fitportal/fitportal/internal/repository/testutil"
)

func TestCreateRecommendation(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewSizeRecommendationRepository(db)
	rec := &domain.SizeRecommendation{
		CustomerEmail:   "jane@example.com",
		SizeChartID:     "c1",
		RecommendedSize: "M",
		Confidence:      0.95,
		ProductType:     "top",
		MeasurementData: []byte(`{"chestWidth": 92}`),
	}

	mock.ExpectExec(`INSERT INTO size_recommendations`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateRecommendation(context.Background(), rec)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecommendations(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewSizeRecommendationRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	rows := sqlmock.NewRows([]string{
		"id", "customer_email", "size_chart_id", "recommended_size",
		"confidence", "product_type", "measurement_data", "created_at",
	}).AddRow("r1", "jane@example.com", "c1", "M", 0.95, "top", []byte(`{"chestWidth": 92}`), now)

	mock.ExpectQuery(`SELECT (.+) FROM size_recommendations WHERE customer_email = \$1 AND product_type = \$2`).
		WithArgs("jane@example.com", "top").
		WillReturnRows(rows)

	recs, err := repo.ListRecommendations(context.Background(), "jane@example.com", "top")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "M", recs[0].RecommendedSize)
	assert.JSONEq(t, `{"chestWidth": 92}`, string(recs[0].MeasurementData))
}
