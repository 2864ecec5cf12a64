package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate_ReferenceRate(t *testing.T) {
	model := DefaultModel()

	costs, err := model.Estimate(35)
	require.NoError(t, err)

	assert.InDelta(t, 1.75, costs.Monthly, 1e-9)
	assert.InDelta(t, 0.0583, costs.Daily, 1e-4)
	assert.InDelta(t, costs.Daily*7, costs.Weekly, 1e-9)
	assert.InDelta(t, 21.0, costs.Annual, 1e-9)
}

func TestEstimate_HorizonRatios(t *testing.T) {
	model := NewModel(0.125)

	for _, size := range []float64{0, 0.5, 1, 100, 16384} {
		costs, err := model.Estimate(size)
		require.NoError(t, err)

		assert.InDelta(t, costs.Monthly, costs.Daily*30, 1e-9)
		assert.InDelta(t, costs.Annual, costs.Monthly*12, 1e-9)
		assert.InDelta(t, costs.Weekly, costs.Daily*7, 1e-9)
		assert.GreaterOrEqual(t, costs.Daily, 0.0)
		assert.LessOrEqual(t, costs.Daily, costs.Weekly+1e-12)
		assert.LessOrEqual(t, costs.Weekly, costs.Monthly+1e-12)
		assert.LessOrEqual(t, costs.Monthly, costs.Annual+1e-12)
	}
}

func TestEstimate_Monotonic(t *testing.T) {
	model := DefaultModel()

	prev, err := model.Estimate(0)
	require.NoError(t, err)

	for _, size := range []float64{1, 10, 500, 10000} {
		costs, err := model.Estimate(size)
		require.NoError(t, err)
		assert.Greater(t, costs.Annual, prev.Annual)
		prev = costs
	}
}

func TestEstimate_InvalidInput(t *testing.T) {
	model := DefaultModel()

	for name, size := range map[string]float64{
		"negative": -1,
		"nan":      math.NaN(),
		"inf":      math.Inf(1),
		"neg inf":  math.Inf(-1),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := model.Estimate(size)
			assert.ErrorIs(t, err, ErrInvalidSize)
		})
	}
}

func TestNewModel_DefaultsOnNonPositiveRate(t *testing.T) {
	model := NewModel(0)

	costs, err := model.Estimate(100)
	require.NoError(t, err)
	assert.InDelta(t, 100*DefaultRatePerGiBMonth, costs.Monthly, 1e-9)
}
