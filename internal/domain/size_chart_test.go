package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChart() *SizeChart {
	return &SizeChart{
		Brand:       "Generic",
		ProductType: "top",
		Sizes: SizeEntries{
			"S":  {"chestWidth": {46, 49}},
			"M":  {"chestWidth": {50, 53}},
			"L":  {"chestWidth": {54, 57}},
			"XL": {"chestWidth": {58, 61}},
		},
		IsActive: true,
	}
}

func TestSizeChart_Validate(t *testing.T) {
	t.Run("valid chart", func(t *testing.T) {
		require.NoError(t, testChart().Validate())
	})

	t.Run("missing brand", func(t *testing.T) {
		chart := testChart()
		chart.Brand = ""
		require.Error(t, chart.Validate())
	})

	t.Run("missing sizes", func(t *testing.T) {
		chart := testChart()
		chart.Sizes = nil
		require.Error(t, chart.Validate())
	})

	t.Run("inverted range", func(t *testing.T) {
		chart := testChart()
		chart.Sizes["M"] = map[string]SizeRange{"chestWidth": {53, 50}}
		err := chart.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "inverted range")
	})
}

func TestSizeChart_MatchesBrand(t *testing.T) {
	collection := "Summer"
	chart := testChart()
	chart.Collection = &collection

	assert.True(t, chart.MatchesBrand("generic", ""))
	assert.True(t, chart.MatchesBrand("GENERIC", "summer"))
	assert.False(t, chart.MatchesBrand("generic", "winter"))
	assert.False(t, chart.MatchesBrand("acme", ""))

	chart.Collection = nil
	assert.True(t, chart.MatchesBrand("generic", ""))
	assert.False(t, chart.MatchesBrand("generic", "summer"))
}

func TestSizeChart_AlternativeSizes(t *testing.T) {
	chart := testChart()

	// Both neighbours present
	assert.ElementsMatch(t, []string{"S", "L"}, chart.AlternativeSizes("M"))

	// Neighbour missing from the chart is skipped
	assert.Equal(t, []string{"M"}, chart.AlternativeSizes("S"))
	assert.Equal(t, []string{"L"}, chart.AlternativeSizes("XL"))

	// Unknown size yields no alternatives
	assert.Empty(t, chart.AlternativeSizes("tall"))
}
