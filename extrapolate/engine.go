// SPDX-License-Identifier: MIT
// Package: seqlath/extrapolate
//
// engine.go — generation stack construction and unwinding.

package extrapolate

// PredictNext extrapolates one element past seq.
//
// Algorithm:
//  1. gens = [seq]; while baseCase(gens[last]) is false, append reduce(gens[last]).
//  2. Seed the running prediction with the base value of the last generation.
//  3. For i = len(gens)-1 down to 0: prediction = infer(gens[i], prediction).
//  4. Return the prediction for gens[0].
//
// Returns false only when seq is empty. A strategy whose base case never
// fires loops forever; preventing that is the strategy's job.
//
// Complexity: len(gens) calls to each of baseCase/infer, len(gens)-1 to reduce.
func PredictNext[S Sized, V any](seq S, baseCase BaseCaseFunc[S, V], reduce ReduceFunc[S], infer InferFunc[S, V]) (V, bool) {
	var zero V
	if seq.Len() == 0 {
		return zero, false
	}

	gens, next := descend(seq, baseCase, reduce)
	for i := len(gens) - 1; i >= 0; i-- {
		next = infer(gens[i], next)
	}

	return next, true
}

// descend builds the generation stack and returns it together with the base
// value found on its last element.
func descend[S Sized, V any](seq S, baseCase BaseCaseFunc[S, V], reduce ReduceFunc[S]) ([]S, V) {
	gens := []S{seq}
	for {
		if base, ok := baseCase(gens[len(gens)-1]); ok {
			return gens, base
		}
		gens = append(gens, reduce(gens[len(gens)-1]))
	}
}

// BaseCaseOf folds IsBaseCase and BaseValue into a single optional result.
func BaseCaseOf[S Sized, V any](c Contract[S, V]) BaseCaseFunc[S, V] {
	return func(s S) (V, bool) {
		if !c.IsBaseCase(s) {
			var zero V
			return zero, false
		}

		return c.BaseValue(s), true
	}
}

// Generations returns the generation stack PredictNext would build for seq,
// and the base value seeding the unwind. seq must be non-empty.
func Generations[S Sized, V any](seq S, c Contract[S, V]) ([]S, V) {
	return descend(seq, BaseCaseOf(c), c.Reduce)
}

// Predict trims seq with st and extrapolates what remains. It returns false
// when nothing is left to extrapolate.
func Predict[S Sized, V any](st Strategy[S, V], seq S) (V, bool) {
	trimmed := st.Trim(seq)
	if trimmed.Len() == 0 {
		var zero V
		return zero, false
	}

	return PredictNext(trimmed, BaseCaseOf[S, V](st), st.Reduce, st.Infer)
}
