package predictors_test

import (
	"fmt"

	"github.com/katalvlaran/seqlath/numeric"
	"github.com/katalvlaran/seqlath/predictors"
)

// ExampleNewSlopeAndBias recovers a first-order linear recurrence.
func ExampleNewSlopeAndBias() {
	// a[0] = 1, a[i+1] = 2*a[i] + 3
	sb := predictors.NewSlopeAndBias()
	next, ok := sb.Predict([]float64{1, 5, 13, 29, 61})
	fmt.Println(next, ok)
	fmt.Println(sb.Name())
	// Output:
	// 125 true
	// SlopeAndBias
	// slope_predictor: ImprovedDivisionCanDealWithZero
	// bias_predictor: ImprovedDivisionCanDealWithZero
}

// ExampleNewDivisionOf runs the precision-guarded ratio strategy directly.
func ExampleNewDivisionOf() {
	d := predictors.NewDivisionOf[float64](numeric.Float{}, predictors.WithThreshold(predictors.DefaultThreshold))
	next, _ := d.Predict(predictors.Series{3, 6, 12, 24})
	fmt.Println(d.Name(), next)
	// Output:
	// ImprovedDivision 48
}

// ExampleNewDivisionFrac shows exact fractions on a sequence with a
// non-terminating ratio.
func ExampleNewDivisionFrac() {
	next, _ := predictors.NewDivisionFrac().Predict([]float64{1, 3, 10})
	fmt.Printf("%.6f\n", next)
	// Output:
	// 37.037037
}
