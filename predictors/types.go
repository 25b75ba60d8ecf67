// SPDX-License-Identifier: MIT
// Package: seqlath/predictors
//
// types.go — shared types, defaults and the composite tagged unions.

package predictors

import (
	"github.com/katalvlaran/seqlath/extrapolate"
)

// DefaultThreshold is the precision-guard floor used by the "Improved"
// variants: below roughly 2/3 the reduced ratios stop carrying signal.
const DefaultThreshold = 0.6666666667

// NoTruncation disables rounding in Truncated.
const NoTruncation = -1

// Series is a flat float64 sequence.
type Series = extrapolate.Series[float64]

// FloatStrategy is any strategy over flat float64 sequences. SlopeAndBias
// takes its sub-strategies in this form.
type FloatStrategy = extrapolate.Strategy[Series, float64]

// Predictor is what reports and command-line tooling consume.
type Predictor interface {
	// Name identifies the configuration. Composite predictors embed the names
	// of their parts, one per line.
	Name() string

	// Predict returns the extrapolated next element, or false when no
	// prediction is possible (empty input, or nothing left after trimming).
	Predict(seq []float64) (float64, bool)
}

// Kind tags the two shapes a SlopeAndBias generation can take.
type Kind uint8

const (
	// Flat is the raw input sequence (top level only).
	Flat Kind = iota

	// Paired is a (slopes, biases) pair (every level below the top).
	Paired
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Flat:
		return "flat"
	case Paired:
		return "paired"
	default:
		return "unknown"
	}
}

// Node is one SlopeAndBias generation. Values is set for Flat nodes; Slopes
// and Biases for Paired nodes.
type Node struct {
	Kind   Kind
	Values Series
	Slopes Series
	Biases Series
}

// FlatNode wraps a raw sequence.
func FlatNode(values Series) Node { return Node{Kind: Flat, Values: values} }

// PairNode wraps a slope sequence and a bias sequence.
func PairNode(slopes, biases Series) Node {
	return Node{Kind: Paired, Slopes: slopes, Biases: biases}
}

// Len reports the element count; for pairs, the shorter component.
func (n Node) Len() int {
	switch n.Kind {
	case Flat:
		return len(n.Values)
	case Paired:
		return min(len(n.Slopes), len(n.Biases))
	default:
		return 0
	}
}

// Shape tags the two forms a SlopeAndBias prediction can take.
type Shape uint8

const (
	// Scalar is a prediction for the raw sequence.
	Scalar Shape = iota

	// Pair is a (slope, bias) prediction for a Paired node.
	Pair
)

// Estimate is a SlopeAndBias prediction. Value is set for Scalar estimates;
// Slope and Bias for Pair estimates.
type Estimate struct {
	Shape Shape
	Value float64
	Slope float64
	Bias  float64
}

// ScalarEstimate wraps a prediction for the raw sequence.
func ScalarEstimate(v float64) Estimate { return Estimate{Shape: Scalar, Value: v} }

// PairEstimate wraps a (slope, bias) prediction.
func PairEstimate(slope, bias float64) Estimate {
	return Estimate{Shape: Pair, Slope: slope, Bias: bias}
}
