package predictors_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/seqlath/numeric"
	"github.com/katalvlaran/seqlath/predictors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTruncated_ZeroPlacesYieldsIntegers checks that precision 0 turns
// integer inputs into integer predictions for every primitive strategy.
func TestTruncated_ZeroPlacesYieldsIntegers(t *testing.T) {
	var ar numeric.Float
	inners := []predictors.FloatStrategy{
		predictors.NewDivisionOf[float64](ar),
		predictors.NewDivisionOf[float64](ar, predictors.WithThreshold(predictors.DefaultThreshold)),
		predictors.NewDivisionOf[float64](ar, predictors.WithZeroTolerance()),
		predictors.NewSubtractionOf[float64](ar),
	}
	inputs := [][]float64{{1, 3, 10}, {2, 7, 1, 8, 2, 8}, {5, 4, 0, 3}, {1, 1, 2, 3, 5, 8, 13}}
	for _, inner := range inners {
		p := predictors.Float(predictors.NewTruncated[float64](ar, inner, 0))
		for _, in := range inputs {
			got, ok := p.Predict(in)
			if !ok {
				continue
			}
			assert.Equal(t, math.Trunc(got), got, "%s on %v", p.Name(), in)
		}
	}
}

// TestTruncated_RoundsReduce checks rounding happens on the reduced values.
func TestTruncated_RoundsReduce(t *testing.T) {
	var ar numeric.Float
	tr := predictors.NewTruncated[float64](ar, predictors.NewDivisionOf[float64](ar), 2)
	assert.Equal(t, series{3, 3.33}, tr.Reduce(series{1, 3, 10}))
	assert.Equal(t, 1.0, tr.BaseValue(series{4}))
	assert.Equal(t, 33.3, tr.Infer(series{1, 3, 10}, 3.33))
	assert.Equal(t, "DivisionWithTruncation(2)", tr.Name())

	got, ok := predictors.NewDivisionWithTruncation(0).Predict([]float64{1, 3, 10})
	require.True(t, ok)
	assert.Equal(t, 30.0, got)
}

// TestTruncated_Delegates checks IsBaseCase and Trim are forwarded untouched.
func TestTruncated_Delegates(t *testing.T) {
	var ar numeric.Float
	tr := predictors.NewTruncated[float64](ar, predictors.NewDivisionOf[float64](ar), 1)
	assert.True(t, tr.IsBaseCase(series{1, 0}))
	assert.Equal(t, series{5}, tr.Trim(series{1, 0, 5}))
}

// TestTruncated_NoTruncation matches the wrapped strategy exactly.
func TestTruncated_NoTruncation(t *testing.T) {
	plain := predictors.NewImprovedDivision()
	wrapped := predictors.NewImprovedDivisionWithTruncation(predictors.NoTruncation)
	for _, in := range [][]float64{{1, 3, 10}, {2, 3, 5, 7, 11}, {100, 1, 0.01}} {
		want, wantOK := plain.Predict(in)
		got, ok := wrapped.Predict(in)
		assert.Equal(t, wantOK, ok)
		assert.Equal(t, want, got, "%v", in)
	}
}

// TestTruncated_Name embeds the wrapped name and precision.
func TestTruncated_Name(t *testing.T) {
	assert.Equal(t, "DivisionWithTruncation(3)", predictors.NewDivisionWithTruncation(3).Name())
	assert.Equal(t, "ImprovedDivisionWithTruncation(0)", predictors.NewImprovedDivisionWithTruncation(0).Name())
}

// TestTruncated_Panics rejects nil inner and bad precision.
func TestTruncated_Panics(t *testing.T) {
	var ar numeric.Float
	assert.Panics(t, func() { predictors.NewTruncated[float64](ar, nil, 1) })
	assert.Panics(t, func() { predictors.NewTruncated[float64](ar, predictors.NewSubtractionOf[float64](ar), -2) })
}
