// SPDX-License-Identifier: MIT
// Package: seqlath/extend
//
// extend.go — prefix-wise forecasting utilities.

package extend

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seqlath/dtw"
	"github.com/katalvlaran/seqlath/predictors"
)

// PredictionSeries returns a slice of len(seq) where out[0] = seq[0] and
// out[i] = p.Predict(seq[:i]) for i ≥ 1. Empty input yields nil.
func PredictionSeries(seq []float64, p predictors.Predictor) []float64 {
	if len(seq) == 0 {
		return nil
	}
	out := make([]float64, len(seq))
	out[0] = seq[0]
	for i := 1; i < len(seq); i++ {
		out[i] = predictOrNaN(p, seq[:i])
	}

	return out
}

// Continuations returns len(seq)-1 sequences. The i-th one (1-based prefix
// length i) starts with seq[:i] and is extended by repeated prediction until
// it reaches len(seq). Fewer than two elements yield nil.
func Continuations(seq []float64, p predictors.Predictor) [][]float64 {
	if len(seq) < 2 {
		return nil
	}
	out := make([][]float64, 0, len(seq)-1)
	for i := 1; i < len(seq); i++ {
		out = append(out, rollForward(seq[:i], len(seq), p))
	}

	return out
}

// ContinuationDistances returns the DTW distance from every continuation to
// seq, in the order produced by Continuations. Continuations holding NaN
// only match where both sides are finite, so a broken continuation scores +Inf.
func ContinuationDistances(seq []float64, p predictors.Predictor, opts dtw.Options) ([]float64, error) {
	conts := Continuations(seq, p)
	out := make([]float64, len(conts))
	for i, c := range conts {
		d, err := dtw.Distance(c, seq, opts)
		if err != nil {
			return nil, fmt.Errorf("extend: continuation %d: %w", i+1, err)
		}
		out[i] = d
	}

	return out, nil
}

// rollForward copies prefix and appends predictions until length n.
func rollForward(prefix []float64, n int, p predictors.Predictor) []float64 {
	cur := make([]float64, len(prefix), n)
	copy(cur, prefix)
	for len(cur) < n {
		next, ok := p.Predict(cur)
		if !ok {
			break
		}
		cur = append(cur, next)
	}
	for len(cur) < n {
		cur = append(cur, math.NaN())
	}

	return cur
}

func predictOrNaN(p predictors.Predictor, seq []float64) float64 {
	if v, ok := p.Predict(seq); ok {
		return v
	}

	return math.NaN()
}
