// SPDX-License-Identifier: MIT
// Package: seqlath/predictors
//
// subtraction.go — difference-based extrapolation.

package predictors

import (
	"github.com/katalvlaran/seqlath/extrapolate"
	"github.com/katalvlaran/seqlath/numeric"
)

// Subtraction extrapolates through consecutive differences. It recovers any
// polynomial sequence of degree < len(s)-1 exactly.
type Subtraction[T any] struct {
	ar numeric.Arith[T]
}

// NewSubtractionOf builds a difference strategy over ar.
func NewSubtractionOf[T any](ar numeric.Arith[T]) *Subtraction[T] {
	return &Subtraction[T]{ar: ar}
}

// Name returns "Subtraction".
func (*Subtraction[T]) Name() string { return "Subtraction" }

// BaseValue is 0: last(s)+0 continues s as a constant.
func (s *Subtraction[T]) BaseValue(extrapolate.Series[T]) T { return s.ar.Zero() }

// IsBaseCase fires on singletons only.
func (*Subtraction[T]) IsBaseCase(seq extrapolate.Series[T]) bool { return len(seq) <= 1 }

// Reduce returns the consecutive differences.
func (s *Subtraction[T]) Reduce(seq extrapolate.Series[T]) extrapolate.Series[T] {
	out := make(extrapolate.Series[T], len(seq)-1)
	for i := 1; i < len(seq); i++ {
		out[i-1] = s.ar.Sub(seq[i], seq[i-1])
	}

	return out
}

// Infer adds the predicted difference to the last element.
func (s *Subtraction[T]) Infer(seq extrapolate.Series[T], next T) T {
	return s.ar.Add(seq.Last(), next)
}

// Trim keeps the whole sequence.
func (*Subtraction[T]) Trim(seq extrapolate.Series[T]) extrapolate.Series[T] { return seq }

// Predict runs the engine over seq.
func (s *Subtraction[T]) Predict(seq extrapolate.Series[T]) (T, bool) {
	return extrapolate.Predict[extrapolate.Series[T], T](s, seq)
}
