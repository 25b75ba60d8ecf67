// SPDX-License-Identifier: MIT
// Package: seqlath/predictors
//
// adapt.go — lifting typed strategies into Predictor.

package predictors

import (
	"math/big"

	"github.com/katalvlaran/seqlath/extrapolate"
	"github.com/katalvlaran/seqlath/numeric"
)

// ExactStrategy is any strategy over exact fractions.
type ExactStrategy = extrapolate.Strategy[extrapolate.Series[*big.Rat], *big.Rat]

// Float lifts a float64 strategy into a Predictor.
func Float(st FloatStrategy) Predictor { return floatPredictor{st: st} }

// Exact lifts an exact-rational strategy into a Predictor. Inputs are
// converted exactly; the result is rounded to the nearest float64 only once,
// at the end. Inputs holding NaN or ±Inf have no rational form and yield no
// prediction.
func Exact(st ExactStrategy) Predictor { return exactPredictor{st: st} }

type floatPredictor struct{ st FloatStrategy }

func (p floatPredictor) Name() string { return p.st.Name() }

func (p floatPredictor) Predict(seq []float64) (float64, bool) {
	return extrapolate.Predict[Series, float64](p.st, seq)
}

type exactPredictor struct{ st ExactStrategy }

func (p exactPredictor) Name() string { return p.st.Name() }

func (p exactPredictor) Predict(seq []float64) (float64, bool) {
	if !numeric.Finite(seq) {
		return 0, false
	}
	var ar numeric.Rat
	next, ok := extrapolate.Predict[extrapolate.Series[*big.Rat], *big.Rat](p.st, numeric.FromFloats[*big.Rat](ar, seq))
	if !ok {
		return 0, false
	}

	return ar.Float(next), true
}
