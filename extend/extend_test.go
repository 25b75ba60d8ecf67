// SPDX-License-Identifier: MIT
// Package: seqlath/extend
//
// extend_test.go — prefix invariants and NaN propagation.

package extend_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/seqlath/dtw"
	"github.com/katalvlaran/seqlath/extend"
	"github.com/katalvlaran/seqlath/predictors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// never is a Predictor that always declines.
type never struct{}

func (never) Name() string                      { return "never" }
func (never) Predict([]float64) (float64, bool) { return 0, false }

// TestPredictionSeries_Subtraction checks the one-step forecasts on an
// arithmetic sequence.
func TestPredictionSeries_Subtraction(t *testing.T) {
	got := extend.PredictionSeries([]float64{2, 4, 6, 8}, predictors.NewSubtraction())
	want := []float64{2, 2, 6, 8}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("PredictionSeries mismatch (-want +got):\n%s", diff)
	}
}

// TestPredictionSeries_FirstIsSeed holds for every preset.
func TestPredictionSeries_FirstIsSeed(t *testing.T) {
	seq := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	for _, name := range predictors.Names() {
		p, err := predictors.Lookup(name, predictors.DefaultTruncation)
		require.NoError(t, err)
		got := extend.PredictionSeries(seq, p)
		require.Len(t, got, len(seq), name)
		assert.Equal(t, seq[0], got[0], name)
	}
	assert.Nil(t, extend.PredictionSeries(nil, predictors.NewSubtraction()))
}

// TestContinuations_Shape verifies count, length and shared prefixes.
func TestContinuations_Shape(t *testing.T) {
	seq := []float64{1, 1, 2, 3, 5, 8}
	conts := extend.Continuations(seq, predictors.NewSubtraction())
	require.Len(t, conts, len(seq)-1)
	for i, c := range conts {
		require.Len(t, c, len(seq))
		if diff := cmp.Diff(seq[:i+1], c[:i+1]); diff != "" {
			t.Errorf("continuation %d prefix (-want +got):\n%s", i+1, diff)
		}
	}
	assert.Nil(t, extend.Continuations([]float64{1}, predictors.NewSubtraction()))
}

// TestContinuations_Geometric rolls a ratio forward exactly.
func TestContinuations_Geometric(t *testing.T) {
	seq := []float64{1, 2, 4, 8, 16}
	conts := extend.Continuations(seq, predictors.NewDivision())
	for i := 1; i < len(conts); i++ {
		if diff := cmp.Diff(seq, conts[i]); diff != "" {
			t.Errorf("continuation %d (-want +got):\n%s", i+1, diff)
		}
	}
}

// TestContinuations_AbsentIsNaN fills the tail with NaN.
func TestContinuations_AbsentIsNaN(t *testing.T) {
	conts := extend.Continuations([]float64{1, 2, 3}, never{})
	want := [][]float64{
		{1, math.NaN(), math.NaN()},
		{1, 2, math.NaN()},
	}
	if diff := cmp.Diff(want, conts, cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// TestContinuationDistances ranks a perfect continuation at zero.
func TestContinuationDistances(t *testing.T) {
	seq := []float64{1, 3, 5, 7, 9}
	d, err := extend.ContinuationDistances(seq, predictors.NewSubtraction(), dtw.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, d, len(seq)-1)
	for _, v := range d[1:] {
		assert.Equal(t, 0.0, v)
	}

	d, err = extend.ContinuationDistances([]float64{1, 2, 3}, never{}, dtw.Options{Window: 0})
	require.NoError(t, err)
	for _, v := range d {
		assert.True(t, math.IsInf(v, 1))
	}

	_, err = extend.ContinuationDistances(seq, predictors.NewSubtraction(), dtw.Options{Window: -5})
	assert.ErrorIs(t, err, dtw.ErrBadWindow)
}
