// SPDX-License-Identifier: MIT
// Package: seqlath/predictors
//
// presets.go — the named configurations used in reports.

package predictors

import (
	"math/big"

	"github.com/katalvlaran/seqlath/numeric"
)

// NewDivision returns plain float ratio extrapolation.
func NewDivision() Predictor {
	return Float(NewDivisionOf[float64](numeric.Float{}))
}

// NewDivisionFrac is NewDivision with exact fractions.
func NewDivisionFrac() Predictor {
	return Exact(NewDivisionOf[*big.Rat](numeric.Rat{}))
}

// NewImprovedDivision guards against precision collapse with DefaultThreshold.
func NewImprovedDivision() Predictor {
	return Float(NewDivisionOf[float64](numeric.Float{}, WithThreshold(DefaultThreshold)))
}

// NewImprovedDivisionFrac is NewImprovedDivision with exact fractions.
func NewImprovedDivisionFrac() Predictor {
	return Exact(NewDivisionOf[*big.Rat](numeric.Rat{}, WithThreshold(DefaultThreshold)))
}

// NewDivisionCanDealWithZero accepts zeros anywhere in the input.
func NewDivisionCanDealWithZero() Predictor {
	return Float(NewDivisionOf[float64](numeric.Float{}, WithZeroTolerance()))
}

// NewDivisionFracCanDealWithZero is NewDivisionCanDealWithZero with exact fractions.
func NewDivisionFracCanDealWithZero() Predictor {
	return Exact(NewDivisionOf[*big.Rat](numeric.Rat{}, WithZeroTolerance()))
}

// NewImprovedDivisionCanDealWithZero combines the precision guard with zero
// tolerance. It is the strongest single strategy on integer corpora.
func NewImprovedDivisionCanDealWithZero() Predictor {
	return Float(improvedTolerant())
}

// NewImprovedDivisionFracCanDealWithZero is the exact-fraction form of
// NewImprovedDivisionCanDealWithZero.
func NewImprovedDivisionFracCanDealWithZero() Predictor {
	return Exact(NewDivisionOf[*big.Rat](numeric.Rat{}, WithThreshold(DefaultThreshold), WithZeroTolerance()))
}

// NewSubtraction returns float difference extrapolation.
func NewSubtraction() Predictor {
	return Float(NewSubtractionOf[float64](numeric.Float{}))
}

// NewSubtractionFrac is NewSubtraction with exact fractions.
func NewSubtractionFrac() Predictor {
	return Exact(NewSubtractionOf[*big.Rat](numeric.Rat{}))
}

// NewDivisionWithTruncation rounds every intermediate ratio of NewDivision
// to places decimal digits. Panics if places < NoTruncation.
func NewDivisionWithTruncation(places int) Predictor {
	var ar numeric.Float
	return Float(NewTruncated[float64](ar, NewDivisionOf[float64](ar), places))
}

// NewImprovedDivisionWithTruncation is NewDivisionWithTruncation over the
// precision-guarded variant.
func NewImprovedDivisionWithTruncation(places int) Predictor {
	var ar numeric.Float
	return Float(NewTruncated[float64](ar, NewDivisionOf[float64](ar, WithThreshold(DefaultThreshold)), places))
}

func improvedTolerant() *Division[float64] {
	return NewDivisionOf[float64](numeric.Float{}, WithThreshold(DefaultThreshold), WithZeroTolerance())
}
