package predictors_test

import (
	"testing"

	"github.com/katalvlaran/seqlath/numeric"
	"github.com/katalvlaran/seqlath/predictors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSubtraction_Constant checks predict([c]) and predict([c, c, c]) == c.
func TestSubtraction_Constant(t *testing.T) {
	p := predictors.NewSubtraction()
	for _, c := range []float64{0, 4, -2.5} {
		got, ok := p.Predict([]float64{c})
		require.True(t, ok)
		assert.Equal(t, c, got)

		got, ok = p.Predict([]float64{c, c, c})
		require.True(t, ok)
		assert.Equal(t, c, got)
	}

	_, ok := p.Predict(nil)
	assert.False(t, ok)
}

// TestSubtraction_Polynomial recovers squares and cubes exactly.
func TestSubtraction_Polynomial(t *testing.T) {
	p := predictors.NewSubtraction()

	got, ok := p.Predict([]float64{1, 4, 9, 16})
	require.True(t, ok)
	assert.Equal(t, 25.0, got)

	got, ok = p.Predict([]float64{0, 1, 8, 27, 64})
	require.True(t, ok)
	assert.Equal(t, 125.0, got)
}

// TestSubtraction_InverseLaw: one Infer with the true last difference
// reconstructs the next-step formula s[-1] + (s[-1] - s[-2]).
func TestSubtraction_InverseLaw(t *testing.T) {
	s := predictors.NewSubtractionOf[float64](numeric.Float{})
	for _, seq := range []series{{1, 2}, {5, 3, 10}, {2, -7, 0.5, 11}} {
		reduced := s.Reduce(seq)
		require.Len(t, reduced, len(seq)-1)
		n := len(seq)
		assert.Equal(t, seq[n-1]+(seq[n-1]-seq[n-2]), s.Infer(seq, reduced.Last()))
	}
}

// TestSubtraction_Contract covers base case and trimming.
func TestSubtraction_Contract(t *testing.T) {
	s := predictors.NewSubtractionOf[float64](numeric.Float{})
	assert.True(t, s.IsBaseCase(series{3}))
	assert.False(t, s.IsBaseCase(series{0, 0}), "zeros are ordinary values")
	assert.Equal(t, 0.0, s.BaseValue(series{1, 2}))
	assert.Equal(t, series{0, 1}, s.Trim(series{0, 1}))
	assert.Equal(t, "Subtraction", s.Name())
}

// TestSubtractionFrac agrees with the float form on integers.
func TestSubtractionFrac(t *testing.T) {
	got, ok := predictors.NewSubtractionFrac().Predict([]float64{1, 4, 9, 16})
	require.True(t, ok)
	assert.Equal(t, 25.0, got)
}
