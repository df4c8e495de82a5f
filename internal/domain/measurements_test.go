package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestUpsertMeasurementsRequest_Validate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := &UpsertMeasurementsRequest{
			CustomerEmail: "Jane@Example.com",
			Waist:         floatPtr(72),
			Hip:           floatPtr(97),
		}

		m, err := req.Validate()
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", m.CustomerEmail)
		assert.Equal(t, 72.0, *m.Waist)
		assert.Equal(t, 97.0, *m.Hip)
		assert.Nil(t, m.ChestWidth)
	})

	t.Run("rejects zero and negative values", func(t *testing.T) {
		for _, v := range []float64{0, -3} {
			req := &UpsertMeasurementsRequest{
				CustomerEmail: "jane@example.com",
				Waist:         floatPtr(v),
			}
			_, err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "waist")
		}
	})

	t.Run("rejects values above the cap", func(t *testing.T) {
		req := &UpsertMeasurementsRequest{
			CustomerEmail: "jane@example.com",
			ThighWidth:    floatPtr(MaxMeasurementCm + 1),
		}
		_, err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "thighWidth")
	})

	t.Run("requires an email", func(t *testing.T) {
		req := &UpsertMeasurementsRequest{Waist: floatPtr(72)}
		_, err := req.Validate()
		require.Error(t, err)
	})
}

func TestBodyMeasurements_Fields(t *testing.T) {
	m := &BodyMeasurements{
		Waist:      floatPtr(72),
		Hip:        floatPtr(97),
		ThighWidth: floatPtr(55),
	}

	fields := m.Fields()
	assert.Equal(t, map[string]float64{
		"waist":      72,
		"hip":        97,
		"thighWidth": 55,
	}, fields)
}
