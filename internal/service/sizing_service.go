package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/fitportal/fitportal/pkg/logger"
	"github.com/fitportal/fitportal/pkg/metrics"
)

type SizingService struct {
	measurementsRepo domain.MeasurementsRepository
	chartRepo        domain.SizeChartRepository
	recRepo          domain.SizeRecommendationRepository
	logger           logger.Logger
}

func NewSizingService(
	measurementsRepo domain.MeasurementsRepository,
	chartRepo domain.SizeChartRepository,
	recRepo domain.SizeRecommendationRepository,
	logger logger.Logger,
) *SizingService {
	return &SizingService{
		measurementsRepo: measurementsRepo,
		chartRepo:        chartRepo,
		recRepo:          recRepo,
		logger:           logger,
	}
}

// GetRecommendation scores the customer's measurements against the applicable
// charts and persists an audit record for the winning match. It returns nil
// when the customer has no measurements or no chart matches the criteria.
func (s *SizingService) GetRecommendation(ctx context.Context, email, productType, brand, collection string) (*domain.Recommendation, error) {
	sanitized, err := domain.SanitizeEmail(email)
	if err != nil {
		return nil, err
	}
	if productType == "" {
		return nil, domain.NewValidationError("product type is required")
	}

	measurements, err := s.measurementsRepo.GetMeasurementsByEmail(ctx, sanitized)
	if err != nil {
		if _, ok := err.(*domain.ErrMeasurementsNotFound); ok {
			s.logger.WithField("email", sanitized).Debug("No measurements found for customer")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get measurements: %w", err)
	}

	charts, err := s.chartRepo.GetSizeCharts(ctx, productType)
	if err != nil {
		return nil, fmt.Errorf("failed to get size charts: %w", err)
	}
	if brand != "" {
		filtered := charts[:0]
		for _, chart := range charts {
			if chart.MatchesBrand(brand, collection) {
				filtered = append(filtered, chart)
			}
		}
		charts = filtered
	}
	if len(charts) == 0 {
		s.logger.WithFields(map[string]interface{}{
			"productType": productType,
			"brand":       brand,
		}).Debug("No size charts found for criteria")
		return nil, nil
	}

	relevant := relevantMeasurements(measurements, productType)

	var bestChart *domain.SizeChart
	var bestMatch *domain.SizeMatch
	for _, chart := range charts {
		match := findBestSizeMatch(relevant, chart)
		if match != nil && (bestMatch == nil || match.Confidence > bestMatch.Confidence) {
			bestChart = chart
			bestMatch = match
		}
	}
	if bestMatch == nil {
		return nil, nil
	}

	measurementData, err := json.Marshal(bestMatch.Details)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal match details: %w", err)
	}

	rec := &domain.SizeRecommendation{
		CustomerEmail:   sanitized,
		SizeChartID:     bestChart.ID,
		RecommendedSize: bestMatch.Size,
		Confidence:      bestMatch.Confidence,
		ProductType:     productType,
		MeasurementData: measurementData,
	}
	if err := s.recRepo.CreateRecommendation(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to record recommendation: %w", err)
	}

	metrics.SizeRecommendationsTotal.Inc()

	recommendation := &domain.Recommendation{
		ProductType:      productType,
		RecommendedSize:  bestMatch.Size,
		Confidence:       bestMatch.Confidence,
		AlternativeSizes: bestChart.AlternativeSizes(bestMatch.Size),
		Brand:            bestChart.Brand,
		Collection:       bestChart.Collection,
	}
	recommendation.Reasoning = recommendation.DeriveReasoning()

	return recommendation, nil
}

func (s *SizingService) GetHistory(ctx context.Context, email, productType string) ([]*domain.SizeRecommendation, error) {
	sanitized, err := domain.SanitizeEmail(email)
	if err != nil {
		return nil, err
	}

	recs, err := s.recRepo.ListRecommendations(ctx, sanitized, productType)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	return recs, nil
}

// relevantMeasurements selects the measurement fields that matter for the
// product type.
func relevantMeasurements(m *domain.BodyMeasurements, productType string) map[string]float64 {
	fields := m.Fields()
	var names []string

	switch strings.ToLower(productType) {
	case "top", "shirt", "blouse":
		names = []string{"chestWidth", "overallWidth", "sleeveWidth", "topLength"}
	case "bottom", "pants", "jeans":
		names = []string{"waist", "hip", "rise", "thighWidth", "bottomLength"}
	case "dress":
		names = []string{"chestWidth", "waist", "hip", "topLength"}
	default:
		names = []string{"chestWidth", "waist", "hip"}
	}

	relevant := make(map[string]float64)
	for _, name := range names {
		if v, ok := fields[name]; ok {
			relevant[name] = v
		}
	}
	return relevant
}

// findBestSizeMatch scores every size in the chart and returns the winner.
// Ties keep the earlier size in ordinal order, so between equally scored
// sizes the smaller one wins.
func findBestSizeMatch(relevant map[string]float64, chart *domain.SizeChart) *domain.SizeMatch {
	if len(relevant) == 0 || len(chart.Sizes) == 0 {
		return nil
	}

	var best *domain.SizeMatch
	for _, size := range orderedSizes(chart.Sizes) {
		match := scoreSize(relevant, chart.Sizes[size], size)
		if best == nil || match.Confidence > best.Confidence {
			best = match
		}
	}
	return best
}

// orderedSizes returns the chart's size names in ordinal order, with any
// non-standard names appended alphabetically.
func orderedSizes(sizes domain.SizeEntries) []string {
	rank := make(map[string]int, len(domain.SizeOrder))
	for i, s := range domain.SizeOrder {
		rank[s] = i
	}

	names := make([]string, 0, len(sizes))
	for name := range sizes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, iOK := rank[strings.ToUpper(names[i])]
		rj, jOK := rank[strings.ToUpper(names[j])]
		switch {
		case iOK && jOK:
			return ri < rj
		case iOK:
			return true
		case jOK:
			return false
		default:
			return names[i] < names[j]
		}
	})
	return names
}

// scoreSize computes the per-field scores for one candidate size. A value
// inside the range scores 1.0; outside, the score falls off linearly with
// the relative distance and bottoms out at zero.
func scoreSize(relevant map[string]float64, ranges map[string]domain.SizeRange, sizeName string) *domain.SizeMatch {
	details := domain.MatchDetails{
		Measurements: make(map[string]domain.FieldScore),
	}

	totalScore := 0.0
	count := 0
	for field, userValue := range relevant {
		r, ok := ranges[field]
		if !ok {
			continue
		}

		var score float64
		switch {
		case userValue >= r.Min() && userValue <= r.Max():
			score = 1.0
		case userValue < r.Min():
			diff := r.Min() - userValue
			score = max(0, 1-(diff/r.Min())*2)
		default:
			diff := userValue - r.Max()
			score = max(0, 1-(diff/r.Max())*2)
		}

		details.Measurements[field] = domain.FieldScore{
			UserValue: userValue,
			SizeRange: r,
			Score:     score,
		}
		totalScore += score
		count++
	}

	if count > 0 {
		details.OverallScore = totalScore / float64(count)
	}

	return &domain.SizeMatch{
		Size:       sizeName,
		Confidence: details.OverallScore,
		Details:    details,
	}
}
