package domain

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// MaxMeasurementCm is the upper bound accepted for any single measurement.
const MaxMeasurementCm = 500

// BodyMeasurements holds a customer's body measurements in centimeters.
// There is at most one record per customer; saves replace the whole record.
type BodyMeasurements struct {
	ID            string    `json:"id"`
	CustomerEmail string    `json:"customerEmail"`
	ChestWidth    *float64  `json:"chestWidth,omitempty"`
	OverallWidth  *float64  `json:"overallWidth,omitempty"`
	SleeveWidth   *float64  `json:"sleeveWidth,omitempty"`
	TopLength     *float64  `json:"topLength,omitempty"`
	Waist         *float64  `json:"waist,omitempty"`
	Hip           *float64  `json:"hip,omitempty"`
	Rise          *float64  `json:"rise,omitempty"`
	ThighWidth    *float64  `json:"thighWidth,omitempty"`
	BottomLength  *float64  `json:"bottomLength,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Fields returns the measurements that are present, keyed by the field names
// used in size charts.
func (m *BodyMeasurements) Fields() map[string]float64 {
	fields := make(map[string]float64)
	add := func(name string, v *float64) {
		if v != nil {
			fields[name] = *v
		}
	}
	add("chestWidth", m.ChestWidth)
	add("overallWidth", m.OverallWidth)
	add("sleeveWidth", m.SleeveWidth)
	add("topLength", m.TopLength)
	add("waist", m.Waist)
	add("hip", m.Hip)
	add("rise", m.Rise)
	add("thighWidth", m.ThighWidth)
	add("bottomLength", m.BottomLength)
	return fields
}

// UpsertMeasurementsRequest is the payload for saving a customer's
// measurements.
type UpsertMeasurementsRequest struct {
	CustomerEmail string   `json:"customerEmail"`
	ChestWidth    *float64 `json:"chestWidth,omitempty"`
	OverallWidth  *float64 `json:"overallWidth,omitempty"`
	SleeveWidth   *float64 `json:"sleeveWidth,omitempty"`
	TopLength     *float64 `json:"topLength,omitempty"`
	Waist         *float64 `json:"waist,omitempty"`
	Hip           *float64 `json:"hip,omitempty"`
	Rise          *float64 `json:"rise,omitempty"`
	ThighWidth    *float64 `json:"thighWidth,omitempty"`
	BottomLength  *float64 `json:"bottomLength,omitempty"`
}

// Validate normalizes the request and returns the measurements record it
// describes. Each provided value must be a positive number below
// MaxMeasurementCm.
func (r *UpsertMeasurementsRequest) Validate() (*BodyMeasurements, error) {
	email, err := SanitizeEmail(r.CustomerEmail)
	if err != nil {
		return nil, err
	}

	check := func(name string, v *float64) error {
		if v == nil {
			return nil
		}
		if *v <= 0 || *v > MaxMeasurementCm {
			return NewValidationError(fmt.Sprintf("invalid measurement for %s: must be a positive number less than %dcm", name, MaxMeasurementCm))
		}
		return nil
	}

	values := []struct {
		name string
		v    *float64
	}{
		{"chestWidth", r.ChestWidth},
		{"overallWidth", r.OverallWidth},
		{"sleeveWidth", r.SleeveWidth},
		{"topLength", r.TopLength},
		{"waist", r.Waist},
		{"hip", r.Hip},
		{"rise", r.Rise},
		{"thighWidth", r.ThighWidth},
		{"bottomLength", r.BottomLength},
	}
	for _, f := range values {
		if err := check(f.name, f.v); err != nil {
			return nil, err
		}
	}

	return &BodyMeasurements{
		CustomerEmail: email,
		ChestWidth:    r.ChestWidth,
		OverallWidth:  r.OverallWidth,
		SleeveWidth:   r.SleeveWidth,
		TopLength:     r.TopLength,
		Waist:         r.Waist,
		Hip:           r.Hip,
		Rise:          r.Rise,
		ThighWidth:    r.ThighWidth,
		BottomLength:  r.BottomLength,
	}, nil
}

type dbMeasurements struct {
	ID            string
	CustomerEmail string
	ChestWidth    sql.NullFloat64
	OverallWidth  sql.NullFloat64
	SleeveWidth   sql.NullFloat64
	TopLength     sql.NullFloat64
	Waist         sql.NullFloat64
	Hip           sql.NullFloat64
	Rise          sql.NullFloat64
	ThighWidth    sql.NullFloat64
	BottomLength  sql.NullFloat64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ScanMeasurements scans a measurements row from the database.
func ScanMeasurements(scanner interface {
	Scan(dest ...interface{}) error
}) (*BodyMeasurements, error) {
	var dbm dbMeasurements
	if err := scanner.Scan(
		&dbm.ID,
		&dbm.CustomerEmail,
		&dbm.ChestWidth,
		&dbm.OverallWidth,
		&dbm.SleeveWidth,
		&dbm.TopLength,
		&dbm.Waist,
		&dbm.Hip,
		&dbm.Rise,
		&dbm.ThighWidth,
		&dbm.BottomLength,
		&dbm.CreatedAt,
		&dbm.UpdatedAt,
	); err != nil {
		return nil, err
	}

	m := &BodyMeasurements{
		ID:            dbm.ID,
		CustomerEmail: dbm.CustomerEmail,
		CreatedAt:     dbm.CreatedAt,
		UpdatedAt:     dbm.UpdatedAt,
	}
	set := func(dst **float64, src sql.NullFloat64) {
		if src.Valid {
			v := src.Float64
			*dst = &v
		}
	}
	set(&m.ChestWidth, dbm.ChestWidth)
	set(&m.OverallWidth, dbm.OverallWidth)
	set(&m.SleeveWidth, dbm.SleeveWidth)
	set(&m.TopLength, dbm.TopLength)
	set(&m.Waist, dbm.Waist)
	set(&m.Hip, dbm.Hip)
	set(&m.Rise, dbm.Rise)
	set(&m.ThighWidth, dbm.ThighWidth)
	set(&m.BottomLength, dbm.BottomLength)

	return m, nil
}

//go:generate mockgen -destination=mocks/mock_measurements.go -package=mocks github.com/fitportal/fitportal/internal/domain MeasurementsRepository

// MeasurementsRepository is the persistence interface for body measurements.
type MeasurementsRepository interface {
	// UpsertMeasurements replaces the customer's measurements record as a
	// whole. There is never more than one record per customer email.
	UpsertMeasurements(ctx context.Context, m *BodyMeasurements) error
	GetMeasurementsByEmail(ctx context.Context, email string) (*BodyMeasurements, error)
}
