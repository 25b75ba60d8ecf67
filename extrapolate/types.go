// SPDX-License-Identifier: MIT
// Package: seqlath/extrapolate
//
// types.go — sequences and the strategy contract.

package extrapolate

// Sized is anything the engine can test for emptiness. Flat series and
// composite (paired) levels both satisfy it.
type Sized interface {
	Len() int
}

// Series is an ordered, oldest-first list of values. Engine inputs are never
// modified; every derived Series is freshly allocated.
type Series[T any] []T

// Len returns the number of elements.
func (s Series[T]) Len() int { return len(s) }

// Last returns the most recent element. It panics on an empty Series, which
// the engine never passes to a strategy.
func (s Series[T]) Last() T { return s[len(s)-1] }

// Clone returns an independent copy of s.
func (s Series[T]) Clone() Series[T] {
	out := make(Series[T], len(s))
	copy(out, s)

	return out
}

// Contract is the set of operations the engine drives.
//
//   - BaseValue(s) returns x such that Infer(s, x) continues s as if it were
//     constant. It is callable whether or not IsBaseCase(s) holds.
//   - IsBaseCase(s) stops the descent. Built-in strategies accept every
//     length-1 sequence, which bounds the descent by len(input).
//   - Reduce(s) derives the next generation, normally one element shorter.
//   - Infer(s, next) maps a predicted next value of Reduce(s) to a predicted
//     next value of s.
type Contract[S Sized, V any] interface {
	BaseValue(s S) V
	IsBaseCase(s S) bool
	Reduce(s S) S
	Infer(s S, next V) V
}

// Strategy is a Contract with input trimming and a display name.
//
// Trim returns the longest suffix that is safe to extrapolate; an empty
// result means no prediction is possible. Name is used in reports; a strategy
// built from sub-strategies embeds their names one per line.
type Strategy[S Sized, V any] interface {
	Contract[S, V]
	Trim(s S) S
	Name() string
}

// BaseCaseFunc reports the base value of s, or false when the descent must
// continue.
type BaseCaseFunc[S Sized, V any] func(s S) (V, bool)

// ReduceFunc derives the next generation.
type ReduceFunc[S Sized] func(s S) S

// InferFunc lifts a prediction one generation up.
type InferFunc[S Sized, V any] func(s S, next V) V
