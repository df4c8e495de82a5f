package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitportal/fitportal/internal/domain"
)

const measurementsColumns = `
	id, customer_email, chest_width, overall_width, sleeve_width, top_length,
	waist, hip, rise, thigh_width, bottom_length, created_at, updated_at
`

type measurementsRepository struct {
	db *sql.DB
}

// NewMeasurementsRepository creates a new PostgreSQL measurements repository
func NewMeasurementsRepository(db *sql.DB) domain.MeasurementsRepository {
	return &measurementsRepository{db: db}
}

func (r *measurementsRepository) UpsertMeasurements(ctx context.Context, m *domain.BodyMeasurements) error {
	now := time.Now().UTC()
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.CreatedAt = now
	m.UpdatedAt = now

	// Saves replace the record as a whole: fields absent from the request
	// become NULL rather than keeping their old values.
	query := `
		INSERT INTO body_measurements (
			id, customer_email, chest_width, overall_width, sleeve_width, top_length,
			waist, hip, rise, thigh_width, bottom_length, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (customer_email) DO UPDATE SET
			chest_width = EXCLUDED.chest_width,
			overall_width = EXCLUDED.overall_width,
			sleeve_width = EXCLUDED.sleeve_width,
			top_length = EXCLUDED.top_length,
			waist = EXCLUDED.waist,
			hip = EXCLUDED.hip,
			rise = EXCLUDED.rise,
			thigh_width = EXCLUDED.thigh_width,
			bottom_length = EXCLUDED.bottom_length,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.CustomerEmail,
		m.ChestWidth,
		m.OverallWidth,
		m.SleeveWidth,
		m.TopLength,
		m.Waist,
		m.Hip,
		m.Rise,
		m.ThighWidth,
		m.BottomLength,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert measurements: %w", err)
	}

	return nil
}

func (r *measurementsRepository) GetMeasurementsByEmail(ctx context.Context, email string) (*domain.BodyMeasurements, error) {
	query := `SELECT ` + measurementsColumns + ` FROM body_measurements WHERE customer_email = $1`

	row := r.db.QueryRowContext(ctx, query, email)
	m, err := domain.ScanMeasurements(row)

	if err == sql.ErrNoRows {
		return nil, &domain.ErrMeasurementsNotFound{Message: "measurements not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get measurements: %w", err)
	}

	return m, nil
}
