// SPDX-License-Identifier: MIT
// Package: seqlath/numeric
//
// arith.go — the scalar contract shared by Float and Rat.

package numeric

// Arith is the set of scalar operations a strategy may perform on elements
// of type T. Implementations are stateless value types; the zero value is
// ready to use.
//
// Contract:
//   - No method mutates its arguments; results are freshly owned.
//   - Quo with a zero divisor is a programmer error (strategies must guard it).
//   - Round(x, places) rounds to places decimal digits, half away from zero.
type Arith[T any] interface {
	Zero() T
	One() T
	FromFloat(f float64) T
	Float(x T) float64

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Quo(a, b T) T

	Abs(x T) T
	Less(a, b T) bool
	IsZero(x T) bool
	Floor(x T) T
	Round(x T, places int32) T
}

// Max returns the largest element of xs under ar, or false when xs is empty.
func Max[T any](ar Arith[T], xs []T) (T, bool) {
	var best T
	if len(xs) == 0 {
		return best, false
	}
	best = xs[0]
	for _, x := range xs[1:] {
		if ar.Less(best, x) {
			best = x
		}
	}

	return best, true
}

// MinAbs returns the smallest absolute value in xs, or false when xs is empty.
func MinAbs[T any](ar Arith[T], xs []T) (T, bool) {
	var best T
	if len(xs) == 0 {
		return best, false
	}
	best = ar.Abs(xs[0])
	for _, x := range xs[1:] {
		if a := ar.Abs(x); ar.Less(a, best) {
			best = a
		}
	}

	return best, true
}

// Floats converts xs to float64 using ar.
func Floats[T any](ar Arith[T], xs []T) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = ar.Float(x)
	}

	return out
}

// FromFloats converts float64 values into T using ar.
func FromFloats[T any](ar Arith[T], xs []float64) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = ar.FromFloat(x)
	}

	return out
}
