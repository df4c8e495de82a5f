package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/fitportal/fitportal/internal/domain"
)

var sizeChartColumns = []string{
	"id", "brand", "collection", "product_type", "sizes", "is_active",
	"created_at", "updated_at",
}

type sizeChartRepository struct {
	db *sql.DB
}

// NewSizeChartRepository creates a new PostgreSQL size chart repository
func NewSizeChartRepository(db *sql.DB) domain.SizeChartRepository {
	return &sizeChartRepository{db: db}
}

func (r *sizeChartRepository) CreateSizeChart(ctx context.Context, chart *domain.SizeChart) error {
	if err := chart.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	if chart.ID == "" {
		chart.ID = uuid.New().String()
	}
	chart.CreatedAt = now
	chart.UpdatedAt = now

	sizes, err := json.Marshal(chart.Sizes)
	if err != nil {
		return fmt.Errorf("failed to marshal size chart entries: %w", err)
	}

	query := `
		INSERT INTO size_charts (id, brand, collection, product_type, sizes, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.db.ExecContext(ctx, query,
		chart.ID,
		chart.Brand,
		chart.Collection,
		chart.ProductType,
		sizes,
		chart.IsActive,
		chart.CreatedAt,
		chart.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create size chart: %w", err)
	}

	return nil
}

func (r *sizeChartRepository) GetSizeCharts(ctx context.Context, productType string) ([]*domain.SizeChart, error) {
	builder := sq.Select(sizeChartColumns...).
		From("size_charts").
		Where(sq.Eq{"is_active": true}).
		OrderBy("brand ASC", "created_at ASC").
		PlaceholderFormat(sq.Dollar)

	if productType != "" {
		builder = builder.Where(sq.Eq{"product_type": productType})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build size charts query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list size charts: %w", err)
	}
	defer rows.Close()

	var charts []*domain.SizeChart
	for rows.Next() {
		chart, err := domain.ScanSizeChart(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan size chart: %w", err)
		}
		charts = append(charts, chart)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate size charts: %w", err)
	}

	return charts, nil
}

func (r *sizeChartRepository) CountSizeCharts(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM size_charts").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count size charts: %w", err)
	}
	return count, nil
}
