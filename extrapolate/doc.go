// Package extrapolate predicts the next element of a finite sequence by
// reducing it to ever simpler sequences and then undoing each reduction.
//
// 🚀 How does it work?
//
//	A Strategy describes one "shape" of sequence (ratios, differences, ...)
//	through three operations:
//	  • Reduce  — derive a simpler sequence (e.g. consecutive ratios)
//	  • Infer   — turn a predicted next value of the reduced sequence back
//	              into a predicted next value of the original
//	  • BaseCase — decide when a sequence is trivial enough to continue
//	              with a constant assumption
//
//	The engine descends by Reduce until the base case fires, collecting every
//	intermediate sequence on a generation stack, then ascends by Infer from
//	the base value to the prediction for the input.
//
//	  [1 2 4 8]  ──Reduce──▶  [2 2 2]  ──Reduce──▶  [1 1]  ──Reduce──▶  [1]
//	     16      ◀──Infer───     2     ◀──Infer───    1    ◀──Infer───   1 (base)
//
// ✨ Key features:
//   - iterative stack-then-unwind, no recursion depth limit
//   - exactly one Infer per Reduce, applied in reverse order
//   - generic over the sequence shape S and value V, so composite strategies
//     whose levels are pairs of sequences run through the same engine
//   - "no prediction" is a comma-ok result, never an error
//
// ⚙️ Usage:
//
//	next, ok := extrapolate.Predict[extrapolate.Series[float64], float64](st, seq)
//	if !ok {
//	  // nothing left to extrapolate after Trim
//	}
//
// Complexity:
//
//   - Time:   O(n²) scalar operations for the built-in strategies (n reductions of O(n))
//   - Memory: O(n²) for the generation stack
package extrapolate
