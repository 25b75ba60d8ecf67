package predictors_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/seqlath/predictors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNames is sorted and covers the documented presets.
func TestNames(t *testing.T) {
	names := predictors.Names()
	assert.True(t, slices.IsSorted(names))
	for _, want := range []string{"division", "improved-division-zero", "subtraction", "slope-and-bias"} {
		assert.Contains(t, names, want)
	}
}

// TestLookup_AllPresets builds every preset and runs it once.
func TestLookup_AllPresets(t *testing.T) {
	for _, name := range predictors.Names() {
		p, err := predictors.Lookup(name, predictors.DefaultTruncation)
		require.NoError(t, err, name)
		assert.NotEmpty(t, p.Name(), name)
		assert.True(t, predictors.Known(name))

		got, ok := p.Predict([]float64{1, 2, 4, 8, 16})
		require.True(t, ok, name)
		assert.False(t, math.IsNaN(got), "%s returned NaN", name)
	}
}

// TestLookup_Errors checks the sentinels.
func TestLookup_Errors(t *testing.T) {
	_, err := predictors.Lookup("fourier", 0)
	assert.ErrorIs(t, err, predictors.ErrUnknownPredictor)

	_, err = predictors.Lookup("division", -2)
	assert.ErrorIs(t, err, predictors.ErrBadPrecision)

	p, err := predictors.Lookup("  Subtraction ", 0)
	require.NoError(t, err)
	assert.Equal(t, "Subtraction", p.Name())
	assert.False(t, predictors.Known("fourier"))
}

// TestLookup_FreshInstances ensures composites never share sub-strategies.
func TestLookup_FreshInstances(t *testing.T) {
	a, err := predictors.Lookup("slope-and-bias", 0)
	require.NoError(t, err)
	b, err := predictors.Lookup("slope-and-bias", 0)
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}
