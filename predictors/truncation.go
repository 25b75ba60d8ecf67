// SPDX-License-Identifier: MIT
// Package: seqlath/predictors
//
// truncation.go — decimal rounding of every intermediate value.

package predictors

import (
	"fmt"

	"github.com/katalvlaran/seqlath/extrapolate"
	"github.com/katalvlaran/seqlath/numeric"
)

// Truncated wraps a strategy and rounds every value its BaseValue, Reduce and
// Infer produce to a fixed number of decimal places, on the theory that the
// dropped digits are noise. IsBaseCase and Trim are forwarded untouched.
type Truncated[T any] struct {
	inner  extrapolate.Strategy[extrapolate.Series[T], T]
	ar     numeric.Arith[T]
	places int
}

// NewTruncated wraps inner. places is the number of decimal digits kept, or
// NoTruncation to forward values unchanged. Panics on nil inner or
// places < NoTruncation.
func NewTruncated[T any](ar numeric.Arith[T], inner extrapolate.Strategy[extrapolate.Series[T], T], places int) *Truncated[T] {
	if inner == nil {
		panic("predictors: NewTruncated(nil)")
	}
	if places < NoTruncation {
		panic(ErrBadPrecision.Error())
	}

	return &Truncated[T]{inner: inner, ar: ar, places: places}
}

// Name appends the precision to the wrapped name, e.g. "DivisionWithTruncation(3)".
func (t *Truncated[T]) Name() string {
	return fmt.Sprintf("%sWithTruncation(%d)", t.inner.Name(), t.places)
}

// BaseValue rounds the wrapped base value.
func (t *Truncated[T]) BaseValue(s extrapolate.Series[T]) T {
	return t.round(t.inner.BaseValue(s))
}

// IsBaseCase forwards to the wrapped strategy.
func (t *Truncated[T]) IsBaseCase(s extrapolate.Series[T]) bool {
	return t.inner.IsBaseCase(s)
}

// Reduce rounds every element of the wrapped reduction in place.
func (t *Truncated[T]) Reduce(s extrapolate.Series[T]) extrapolate.Series[T] {
	out := t.inner.Reduce(s)
	for i, v := range out {
		out[i] = t.round(v)
	}

	return out
}

// Infer rounds the wrapped inference.
func (t *Truncated[T]) Infer(s extrapolate.Series[T], next T) T {
	return t.round(t.inner.Infer(s, next))
}

// Trim forwards to the wrapped strategy.
func (t *Truncated[T]) Trim(s extrapolate.Series[T]) extrapolate.Series[T] {
	return t.inner.Trim(s)
}

// Predict runs the engine over s.
func (t *Truncated[T]) Predict(s extrapolate.Series[T]) (T, bool) {
	return extrapolate.Predict[extrapolate.Series[T], T](t, s)
}

func (t *Truncated[T]) round(x T) T {
	if t.places == NoTruncation {
		return x
	}

	return t.ar.Round(x, int32(t.places))
}
