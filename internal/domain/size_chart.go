package domain

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// SizeOrder is the ordinal list used to derive alternative sizes.
var SizeOrder = []string{"XXS", "XS", "S", "M", "L", "XL", "XXL", "XXXL"}

// SizeRange is an inclusive [min, max] measurement range in centimeters.
type SizeRange [2]float64

// Min returns the lower bound of the range.
func (r SizeRange) Min() float64 { return r[0] }

// Max returns the upper bound of the range.
func (r SizeRange) Max() float64 { return r[1] }

// SizeEntries maps a size name (e.g. "M") to its measurement ranges
// (e.g. "waist" -> [70, 75]).
type SizeEntries map[string]map[string]SizeRange

// SizeChart is static reference data describing a brand's sizing for one
// product type. Charts are seeded at bootstrap, not created by end users.
type SizeChart struct {
	ID          string      `json:"id"`
	Brand       string      `json:"brand"`
	Collection  *string     `json:"collection,omitempty"`
	ProductType string      `json:"productType"`
	Sizes       SizeEntries `json:"sizes"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Validate ensures the chart carries the minimum fields and well-formed
// ranges.
func (c *SizeChart) Validate() error {
	if c.Brand == "" {
		return NewValidationError("brand is required")
	}
	if c.ProductType == "" {
		return NewValidationError("product type is required")
	}
	if len(c.Sizes) == 0 {
		return NewValidationError("sizes are required")
	}
	for size, ranges := range c.Sizes {
		for field, r := range ranges {
			if r.Min() > r.Max() {
				return NewValidationError(fmt.Sprintf("size %s has inverted range for %s", size, field))
			}
		}
	}
	return nil
}

// MatchesBrand reports whether the chart matches the given brand and
// optional collection, case-insensitively.
func (c *SizeChart) MatchesBrand(brand, collection string) bool {
	if !strings.EqualFold(c.Brand, brand) {
		return false
	}
	if collection == "" {
		return true
	}
	return c.Collection != nil && strings.EqualFold(*c.Collection, collection)
}

// AlternativeSizes returns the ordinal neighbours of the recommended size
// that are present in the chart.
func (c *SizeChart) AlternativeSizes(recommended string) []string {
	idx := -1
	for i, s := range SizeOrder {
		if strings.EqualFold(s, recommended) {
			idx = i
			break
		}
	}

	var candidates []string
	if idx > 0 {
		candidates = append(candidates, SizeOrder[idx-1])
	}
	if idx >= 0 && idx < len(SizeOrder)-1 {
		candidates = append(candidates, SizeOrder[idx+1])
	}

	alternatives := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		for available := range c.Sizes {
			if strings.EqualFold(available, candidate) {
				alternatives = append(alternatives, candidate)
				break
			}
		}
	}
	return alternatives
}

type dbSizeChart struct {
	ID          string
	Brand       string
	Collection  sql.NullString
	ProductType string
	Sizes       []byte
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ScanSizeChart scans a size chart row from the database.
func ScanSizeChart(scanner interface {
	Scan(dest ...interface{}) error
}) (*SizeChart, error) {
	var dbc dbSizeChart
	if err := scanner.Scan(
		&dbc.ID,
		&dbc.Brand,
		&dbc.Collection,
		&dbc.ProductType,
		&dbc.Sizes,
		&dbc.IsActive,
		&dbc.CreatedAt,
		&dbc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c := &SizeChart{
		ID:          dbc.ID,
		Brand:       dbc.Brand,
		ProductType: dbc.ProductType,
		IsActive:    dbc.IsActive,
		CreatedAt:   dbc.CreatedAt,
		UpdatedAt:   dbc.UpdatedAt,
	}
	if dbc.Collection.Valid {
		c.Collection = &dbc.Collection.String
	}
	if len(dbc.Sizes) > 0 {
		if err := json.Unmarshal(dbc.Sizes, &c.Sizes); err != nil {
			return nil, fmt.Errorf("failed to decode size chart entries: %w", err)
		}
	}

	return c, nil
}

//go:generate mockgen -destination=mocks/mock_size_chart.go -package=mocks github.com/fitportal/fitportal/internal/domain SizeChartRepository

// SizeChartRepository is the persistence interface for size charts.
type SizeChartRepository interface {
	CreateSizeChart(ctx context.Context, chart *SizeChart) error
	// GetSizeCharts returns active charts, optionally narrowed by product
	// type, ordered by brand.
	GetSizeCharts(ctx context.Context, productType string) ([]*SizeChart, error)
	CountSizeCharts(ctx context.Context) (int, error)
}
