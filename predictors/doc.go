// Package predictors holds the concrete extrapolation strategies.
//
// 🚀 What is inside?
//
//	Primitive strategies, each a Strategy over Series[T]:
//	  • Division    — consecutive ratios, inverted by multiplication
//	      - WithThreshold:     "Improved" precision guard (ratios below ≈2/3
//	                           collapse to the constant-ratio assumption)
//	      - WithZeroTolerance: ratios through zero borrow the largest ratio
//	      - numeric.Rat:       exact fractions instead of float64
//	  • Subtraction — consecutive differences, inverted by addition
//
//	Modifiers and composites:
//	  • Truncated    — rounds every BaseValue/Reduce/Infer output to p digits
//	  • SlopeAndBias — models x[i+1] = x[i]*slope + bias and extrapolates the
//	                   slope and bias sequences in lockstep
//
//	Predictor is the float-facing surface consumed by reports and tooling:
//	Name() plus Predict([]float64) (float64, bool).
//
// ⚙️ Usage:
//
//	p := predictors.NewImprovedDivisionCanDealWithZero()
//	next, ok := p.Predict([]float64{1, 2, 4, 8})   // 16, true
//
//	sb := predictors.NewSlopeAndBias()
//	next, ok = sb.Predict([]float64{1, 5, 13, 29, 61}) // 125, true
//
//	p, err := predictors.Lookup("improved-division-truncated", 3)
//
// Error policy:
//   - Predict never fails; an absent prediction is reported as ok == false.
//   - Option constructors panic on meaningless values (negative thresholds,
//     nil sub-strategies); Lookup returns ErrUnknownPredictor.
package predictors
