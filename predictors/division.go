// SPDX-License-Identifier: MIT
// Package: seqlath/predictors
//
// division.go — ratio-based extrapolation and its variants.

package predictors

import (
	"math/big"
	"strings"

	"github.com/katalvlaran/seqlath/extrapolate"
	"github.com/katalvlaran/seqlath/numeric"
)

// Division extrapolates through consecutive ratios: Reduce(s)[i] =
// s[i+1]/s[i], Infer(s, r) = last(s)*r, and a singleton continues with
// ratio 1.
//
// Without zero tolerance the base case also fires on any sequence holding a
// zero, and Trim drops everything up to and including the last zero, so no
// ratio is ever taken through zero.
type Division[T any] struct {
	ar  numeric.Arith[T]
	cfg ratioConfig
}

var _ extrapolate.Strategy[Series, float64] = (*Division[float64])(nil)

var _ extrapolate.Strategy[extrapolate.Series[*big.Rat], *big.Rat] = (*Division[*big.Rat])(nil)

// NewDivisionOf builds a ratio strategy over ar.
func NewDivisionOf[T any](ar numeric.Arith[T], opts ...RatioOption) *Division[T] {
	return &Division[T]{ar: ar, cfg: newRatioConfig(opts...)}
}

// Name returns the configured name, or one derived from the variant flags
// (e.g. "ImprovedDivisionFracCanDealWithZero").
func (d *Division[T]) Name() string {
	if d.cfg.name != "" {
		return d.cfg.name
	}
	var b strings.Builder
	if d.cfg.threshold > 0 {
		b.WriteString("Improved")
	}
	b.WriteString("Division")
	if _, exact := any(d.ar).(numeric.Rat); exact {
		b.WriteString("Frac")
	}
	if d.cfg.zeroTolerant {
		b.WriteString("CanDealWithZero")
	}

	return b.String()
}

// BaseValue is 1: last(s)*1 continues s as a constant.
func (d *Division[T]) BaseValue(extrapolate.Series[T]) T { return d.ar.One() }

// IsBaseCase fires on singletons and, unless zero tolerant, on any zero.
func (d *Division[T]) IsBaseCase(s extrapolate.Series[T]) bool {
	if len(s) <= 1 {
		return true
	}
	if d.cfg.zeroTolerant {
		return false
	}

	return d.lastZero(s) >= 0
}

// Reduce returns the consecutive ratios, subject to zero substitution and
// the precision guard (checked after substitution).
func (d *Division[T]) Reduce(s extrapolate.Series[T]) extrapolate.Series[T] {
	var out extrapolate.Series[T]
	if d.cfg.zeroTolerant {
		out = d.tolerantRatios(s)
	} else {
		out = d.ratios(s)
	}

	return d.guard(out)
}

// Infer multiplies the last element by the predicted ratio.
func (d *Division[T]) Infer(s extrapolate.Series[T], next T) T {
	return d.ar.Mul(s.Last(), next)
}

// Trim drops the prefix ending at the last zero. Zero tolerant strategies
// keep the whole sequence.
func (d *Division[T]) Trim(s extrapolate.Series[T]) extrapolate.Series[T] {
	if d.cfg.zeroTolerant {
		return s
	}

	return s[d.lastZero(s)+1:]
}

// Predict runs the engine over s.
func (d *Division[T]) Predict(s extrapolate.Series[T]) (T, bool) {
	return extrapolate.Predict[extrapolate.Series[T], T](d, s)
}

func (d *Division[T]) ratios(s extrapolate.Series[T]) extrapolate.Series[T] {
	out := make(extrapolate.Series[T], len(s)-1)
	for i := 1; i < len(s); i++ {
		out[i-1] = d.ar.Quo(s[i], s[i-1])
	}

	return out
}

// tolerantRatios replaces every ratio through a zero with the largest
// defined ratio. If no ratio is defined the reduction collapses to the base
// value.
func (d *Division[T]) tolerantRatios(s extrapolate.Series[T]) extrapolate.Series[T] {
	out := make(extrapolate.Series[T], len(s)-1)
	holes := make([]bool, len(out))
	defined := make([]T, 0, len(out))
	for i := 1; i < len(s); i++ {
		if d.ar.IsZero(s[i-1]) {
			holes[i-1] = true
			continue
		}
		out[i-1] = d.ar.Quo(s[i], s[i-1])
		defined = append(defined, out[i-1])
	}

	fill, ok := numeric.Max(d.ar, defined)
	if !ok {
		return extrapolate.Series[T]{d.BaseValue(s)}
	}
	for i, hole := range holes {
		if hole {
			out[i] = fill
		}
	}

	return out
}

// guard collapses out to [1] when any |ratio| is below the threshold.
func (d *Division[T]) guard(out extrapolate.Series[T]) extrapolate.Series[T] {
	if d.cfg.threshold <= 0 {
		return out
	}
	lowest, ok := numeric.MinAbs(d.ar, out)
	if ok && d.ar.Less(lowest, d.ar.FromFloat(d.cfg.threshold)) {
		return extrapolate.Series[T]{d.ar.One()}
	}

	return out
}

// lastZero returns the index of the last zero in s, or -1.
func (d *Division[T]) lastZero(s extrapolate.Series[T]) int {
	for i := len(s) - 1; i >= 0; i-- {
		if d.ar.IsZero(s[i]) {
			return i
		}
	}

	return -1
}
