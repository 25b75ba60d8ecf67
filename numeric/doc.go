// Package numeric supplies the scalar arithmetic that the extrapolation
// strategies are written against.
//
// 🚀 Why a separate arithmetic layer?
//
//	The ratio and difference strategies are the same algorithm whether the
//	numbers are IEEE-754 doubles or exact fractions. Writing them once against
//	Arith[T] lets one implementation serve both:
//	  • Float — float64, fast, accepts rounding noise
//	  • Rat   — *big.Rat, exact, never loses a digit in a ratio
//
// ✨ Key features:
//   - value semantics: no operation mutates its operands
//   - decimal rounding (Round) for the truncation modifier, backed by
//     shopspring/decimal for floats and big.Rat.FloatString for fractions
//   - Floor for integer slope extraction
//
// ⚙️ Usage:
//
//	var a numeric.Float
//	r := a.Quo(13, 5)   // 2.6
//	f := a.Floor(r)     // 2
//
//	var q numeric.Rat
//	x := q.Quo(q.FromFloat(1), q.FromFloat(3)) // exactly 1/3
package numeric
