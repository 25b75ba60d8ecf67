package extrapolate_test

import (
	"fmt"

	"github.com/katalvlaran/seqlath/extrapolate"
)

// ExamplePredictNext drives the engine with plain functions: consecutive
// differences, inverted by addition.
func ExamplePredictNext() {
	base := func(s series) (float64, bool) { return 0, len(s) == 1 }
	reduce := func(s series) series {
		out := make(series, len(s)-1)
		for i := range out {
			out[i] = s[i+1] - s[i]
		}
		return out
	}
	infer := func(s series, next float64) float64 { return s.Last() + next }

	next, ok := extrapolate.PredictNext(series{1, 3, 6, 10, 15}, base, reduce, infer)
	fmt.Println(next, ok)
	// Output:
	// 21 true
}
