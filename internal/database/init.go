package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitportal/fitportal/internal/database/schema"
	"github.com/fitportal/fitportal/internal/domain"
)

// InitializeDatabase creates all necessary database tables if they don't exist
// and seeds the default size charts on first run.
func InitializeDatabase(db *sql.DB) error {
	// Run all table creation queries
	for _, query := range schema.TableDefinitions {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM size_charts").Scan(&count); err != nil {
		return fmt.Errorf("failed to count size charts: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, chart := range DefaultSizeCharts() {
		sizes, err := json.Marshal(chart.Sizes)
		if err != nil {
			return fmt.Errorf("failed to marshal default chart sizes: %w", err)
		}

		query := `
			INSERT INTO size_charts (id, brand, collection, product_type, sizes, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		now := time.Now().UTC()
		_, err = db.Exec(query,
			uuid.New().String(),
			chart.Brand,
			chart.Collection,
			chart.ProductType,
			sizes,
			true,
			now,
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to seed size chart %s/%s: %w", chart.Brand, chart.ProductType, err)
		}
	}

	return nil
}

// DefaultSizeCharts returns the generic charts seeded on first run. Ranges
// are in centimeters.
func DefaultSizeCharts() []*domain.SizeChart {
	return []*domain.SizeChart{
		{
			Brand:       "Generic",
			ProductType: "top",
			Sizes: domain.SizeEntries{
				"XS": {
					"chestWidth":   {80, 85},
					"overallWidth": {85, 90},
					"sleeveWidth":  {30, 32},
					"topLength":    {58, 62},
				},
				"S": {
					"chestWidth":   {85, 90},
					"overallWidth": {90, 95},
					"sleeveWidth":  {32, 34},
					"topLength":    {60, 64},
				},
				"M": {
					"chestWidth":   {90, 95},
					"overallWidth": {95, 100},
					"sleeveWidth":  {34, 36},
					"topLength":    {62, 66},
				},
				"L": {
					"chestWidth":   {95, 100},
					"overallWidth": {100, 105},
					"sleeveWidth":  {36, 38},
					"topLength":    {64, 68},
				},
				"XL": {
					"chestWidth":   {100, 105},
					"overallWidth": {105, 110},
					"sleeveWidth":  {38, 40},
					"topLength":    {66, 70},
				},
			},
			IsActive: true,
		},
		{
			Brand:       "Generic",
			ProductType: "bottom",
			Sizes: domain.SizeEntries{
				"XS": {
					"waist":        {60, 65},
					"hip":          {85, 90},
					"rise":         {20, 22},
					"thighWidth":   {50, 52},
					"bottomLength": {100, 105},
				},
				"S": {
					"waist":        {65, 70},
					"hip":          {90, 95},
					"rise":         {22, 24},
					"thighWidth":   {52, 54},
					"bottomLength": {102, 107},
				},
				"M": {
					"waist":        {70, 75},
					"hip":          {95, 100},
					"rise":         {24, 26},
					"thighWidth":   {54, 56},
					"bottomLength": {104, 109},
				},
				"L": {
					"waist":        {75, 80},
					"hip":          {100, 105},
					"rise":         {26, 28},
					"thighWidth":   {56, 58},
					"bottomLength": {106, 111},
				},
				"XL": {
					"waist":        {80, 85},
					"hip":          {105, 110},
					"rise":         {28, 30},
					"thighWidth":   {58, 60},
					"bottomLength": {108, 113},
				},
			},
			IsActive: true,
		},
	}
}

// CleanDatabase drops all tables. Used by tests and the reset tooling.
func CleanDatabase(db *sql.DB) error {
	for _, table := range schema.TableNames {
		if _, err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}
