// SPDX-License-Identifier: MIT
// Package: seqlath/evaluate
//
// check.go — single-sequence pass/fail test.

package evaluate

import (
	"github.com/katalvlaran/seqlath/predictors"
)

// DefaultMargins are the error margins reported when none are configured.
var DefaultMargins = []float64{5, 2, 1.1, 1.01, 1.001, 1.0000001, 1}

// Check forecasts the last element of seq from the rest and reports, per
// margin, whether the forecast fell inside the margin band. ok is false when
// seq has fewer than two elements or the predictor declines.
func Check(p predictors.Predictor, seq []float64, margins []float64) (passed []bool, ok bool) {
	if len(seq) < 2 {
		return nil, false
	}
	got, ok := p.Predict(seq[:len(seq)-1])
	if !ok {
		return nil, false
	}

	target := seq[len(seq)-1]
	passed = make([]bool, len(margins))
	for i, m := range margins {
		lo, hi := target/m, target*m
		if lo > hi {
			lo, hi = hi, lo
		}
		passed[i] = lo <= got && got <= hi
	}

	return passed, true
}
