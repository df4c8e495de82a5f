package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// FieldScore records how one measurement compared against a size's range.
type FieldScore struct {
	UserValue float64   `json:"userValue"`
	SizeRange SizeRange `json:"sizeRange"`
	Score     float64   `json:"score"`
}

// MatchDetails is the per-field breakdown behind a recommendation.
type MatchDetails struct {
	Measurements map[string]FieldScore `json:"measurements"`
	OverallScore float64               `json:"overallScore"`
}

// SizeMatch is the scored outcome for one candidate size.
type SizeMatch struct {
	Size       string       `json:"size"`
	Confidence float64      `json:"confidence"`
	Details    MatchDetails `json:"matchDetails"`
}

// Recommendation is the result returned to the caller.
type Recommendation struct {
	ProductType      string   `json:"productType"`
	RecommendedSize  string   `json:"recommendedSize"`
	Confidence       float64  `json:"confidence"`
	AlternativeSizes []string `json:"alternativeSizes"`
	Brand            string   `json:"brand"`
	Collection       *string  `json:"collection,omitempty"`
	Reasoning        string   `json:"reasoning"`
}

// DeriveReasoning derives the human-readable explanation from confidence buckets.
func (r *Recommendation) DeriveReasoning() string {
	confidence := int(r.Confidence*100 + 0.5)
	switch {
	case confidence >= 90:
		return fmt.Sprintf("Excellent fit based on your measurements (%d%% confidence)", confidence)
	case confidence >= 75:
		return fmt.Sprintf("Good fit for most of your measurements (%d%% confidence)", confidence)
	case confidence >= 60:
		return fmt.Sprintf("Reasonable fit, but consider trying multiple sizes (%d%% confidence)", confidence)
	default:
		return fmt.Sprintf("Limited data available for accurate recommendation (%d%% confidence)", confidence)
	}
}

// SizeRecommendation is the append-only audit record of one scoring result.
type SizeRecommendation struct {
	ID              string          `json:"id"`
	CustomerEmail   string          `json:"customerEmail"`
	SizeChartID     string          `json:"sizeChartId"`
	RecommendedSize string          `json:"recommendedSize"`
	Confidence      float64         `json:"confidence"`
	ProductType     string          `json:"productType"`
	MeasurementData json.RawMessage `json:"measurementData"`
	CreatedAt       time.Time       `json:"createdAt"`
}

//go:generate mockgen -destination=mocks/mock_recommendation.go -package=mocks github.com/fitportal/fitportal/internal/domain SizeRecommendationRepository

// SizeRecommendationRepository persists scoring audit records.
type SizeRecommendationRepository interface {
	CreateRecommendation(ctx context.Context, rec *SizeRecommendation) error
	// ListRecommendations returns a customer's past recommendations newest
	// first, optionally narrowed by product type.
	ListRecommendations(ctx context.Context, email, productType string) ([]*SizeRecommendation, error)
}

// SizingService computes size recommendations.
type SizingService interface {
	// GetRecommendation scores the customer's measurements against the
	// applicable charts. It returns nil (not an error) when there are no
	// measurements or no matching chart.
	GetRecommendation(ctx context.Context, email, productType, brand, collection string) (*Recommendation, error)
	GetHistory(ctx context.Context, email, productType string) ([]*SizeRecommendation, error)
}
