package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/fitportal/fitportal/internal/domain"
)

type recommendationRepository struct {
	db *sql.DB
}

// NewSizeRecommendationRepository creates a new PostgreSQL recommendation repository
func NewSizeRecommendationRepository(db *sql.DB) domain.SizeRecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) CreateRecommendation(ctx context.Context, rec *domain.SizeRecommendation) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	rec.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO size_recommendations (
			id, customer_email, size_chart_id, recommended_size, confidence,
			product_type, measurement_data, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	var measurementData interface{}
	if len(rec.MeasurementData) > 0 {
		measurementData = []byte(rec.MeasurementData)
	}

	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.CustomerEmail,
		rec.SizeChartID,
		rec.RecommendedSize,
		rec.Confidence,
		rec.ProductType,
		measurementData,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create recommendation: %w", err)
	}

	return nil
}

func (r *recommendationRepository) ListRecommendations(ctx context.Context, email, productType string) ([]*domain.SizeRecommendation, error) {
	builder := sq.Select(
		"id", "customer_email", "size_chart_id", "recommended_size",
		"confidence", "product_type", "measurement_data", "created_at",
	).
		From("size_recommendations").
		Where(sq.Eq{"customer_email": email}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if productType != "" {
		builder = builder.Where(sq.Eq{"product_type": productType})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recommendations query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	defer rows.Close()

	var recs []*domain.SizeRecommendation
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recommendations: %w", err)
	}

	return recs, nil
}

func scanRecommendation(scanner interface {
	Scan(dest ...interface{}) error
}) (*domain.SizeRecommendation, error) {
	var rec domain.SizeRecommendation
	var measurementData []byte
	if err := scanner.Scan(
		&rec.ID,
		&rec.CustomerEmail,
		&rec.SizeChartID,
		&rec.RecommendedSize,
		&rec.Confidence,
		&rec.ProductType,
		&measurementData,
		&rec.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(measurementData) > 0 {
		rec.MeasurementData = measurementData
	}
	return &rec, nil
}
