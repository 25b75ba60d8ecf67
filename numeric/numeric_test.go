package numeric_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/seqlath/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFloat_Round checks decimal rounding, including values whose binary
// representation sits just below the half.
func TestFloat_Round(t *testing.T) {
	var ar numeric.Float
	cases := []struct {
		in     float64
		places int32
		want   float64
	}{
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{0.1 + 0.2, 1, 0.3},
		{3.14159, 2, 3.14},
		{125.0000000001, 3, 125},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ar.Round(tc.in, tc.places), "Round(%v, %d)", tc.in, tc.places)
	}
}

// TestFloat_RoundNonFinite verifies NaN and Inf pass through untouched.
func TestFloat_RoundNonFinite(t *testing.T) {
	var ar numeric.Float
	assert.True(t, math.IsNaN(ar.Round(math.NaN(), 2)))
	assert.True(t, math.IsInf(ar.Round(math.Inf(-1), 2), -1))
}

// TestRat_Exact verifies that fractions survive a ratio round trip exactly.
func TestRat_Exact(t *testing.T) {
	var ar numeric.Rat
	third := ar.Quo(ar.FromFloat(1), ar.FromFloat(3))
	back := ar.Mul(third, ar.FromFloat(3))
	assert.Equal(t, 0, back.Cmp(ar.One()), "1/3*3 must be exactly 1")
	assert.Equal(t, "1/3", third.RatString())
}

// TestRat_Floor covers positive, negative and integral inputs.
func TestRat_Floor(t *testing.T) {
	var ar numeric.Rat
	assert.Equal(t, "2", ar.Floor(big.NewRat(13, 5)).RatString())
	assert.Equal(t, "-3", ar.Floor(big.NewRat(-13, 5)).RatString())
	assert.Equal(t, "4", ar.Floor(big.NewRat(4, 1)).RatString())
}

// TestRat_DoesNotMutate ensures operands are left intact.
func TestRat_DoesNotMutate(t *testing.T) {
	var ar numeric.Rat
	a, b := big.NewRat(1, 2), big.NewRat(1, 3)
	_ = ar.Add(a, b)
	_ = ar.Abs(ar.Sub(b, a))
	assert.Equal(t, "1/2", a.RatString())
	assert.Equal(t, "1/3", b.RatString())
}

// TestRat_Round mirrors the float behaviour.
func TestRat_Round(t *testing.T) {
	var ar numeric.Rat
	assert.Equal(t, "3", ar.Round(big.NewRat(5, 2), 0).RatString())
	assert.Equal(t, "33/100", ar.Round(big.NewRat(1, 3), 2).RatString())
}

// TestHelpers covers Max, MinAbs and conversions.
func TestHelpers(t *testing.T) {
	var ar numeric.Float
	m, ok := numeric.Max[float64](ar, []float64{3, -7, 5, 1})
	require.True(t, ok)
	assert.Equal(t, 5.0, m)

	a, ok := numeric.MinAbs[float64](ar, []float64{3, -0.5, 5})
	require.True(t, ok)
	assert.Equal(t, 0.5, a)

	_, ok = numeric.Max[float64](ar, nil)
	assert.False(t, ok, "empty input has no maximum")

	var q numeric.Rat
	rs := numeric.FromFloats[*big.Rat](q, []float64{1, 2.5})
	assert.Equal(t, []float64{1, 2.5}, numeric.Floats[*big.Rat](q, rs))

	assert.True(t, numeric.Finite([]float64{1, 2}))
	assert.False(t, numeric.Finite([]float64{1, math.Inf(1)}))
}
