// SPDX-License-Identifier: MIT
// Package: seqlath/predictors
//
// slope_bias.go — composite strategy over (slope, bias) pairs.
//
// Model:
//   x[i+1] = x[i]*slope[i] + bias[i]
//
// The raw sequence is turned into an integer slope sequence (floored ratios)
// and the matching bias sequence. From there both are reduced in lockstep by
// their own sub-strategies until either one reaches its base case, and the
// unwind rebuilds (slope, bias) level by level before the final
// last*slope + bias step.

package predictors

import (
	"github.com/katalvlaran/seqlath/extrapolate"
	"github.com/katalvlaran/seqlath/numeric"
)

// SlopeAndBias is driven by the generic engine over Node/Estimate. Every
// operation switches on the node Kind; Flat only ever appears at the top.
type SlopeAndBias struct {
	slope   FloatStrategy
	bias    FloatStrategy
	creator FloatStrategy
}

var _ extrapolate.Strategy[Node, Estimate] = (*SlopeAndBias)(nil)

var _ Predictor = (*SlopeAndBias)(nil)

// NewSlopeAndBias builds the composite. All three parts default to
// ImprovedDivisionCanDealWithZero; each instance owns its own sub-strategies.
func NewSlopeAndBias(opts ...CompositeOption) *SlopeAndBias {
	cfg := compositeConfig{
		slope:   improvedTolerant(),
		bias:    improvedTolerant(),
		creator: improvedTolerant(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &SlopeAndBias{slope: cfg.slope, bias: cfg.bias, creator: cfg.creator}
}

// Name lists the sub-strategies one per line.
func (sb *SlopeAndBias) Name() string {
	return "SlopeAndBias" +
		"\nslope_predictor: " + sb.slope.Name() +
		"\nbias_predictor: " + sb.bias.Name()
}

// Derive converts a raw sequence into its slopes and biases. When either
// sub-strategy already treats seq as a base case, both collapse to their
// base values.
func (sb *SlopeAndBias) Derive(seq Series) (slopes, biases Series) {
	if sb.slope.IsBaseCase(seq) || sb.bias.IsBaseCase(seq) {
		return Series{sb.slope.BaseValue(seq)}, Series{sb.bias.BaseValue(seq)}
	}

	var ar numeric.Float
	ratios := sb.creator.Reduce(seq)
	slopes = make(Series, 0, len(ratios))
	biases = make(Series, 0, len(ratios))
	for i, r := range ratios {
		if i+1 >= len(seq) {
			break
		}
		m := ar.Floor(r)
		slopes = append(slopes, m)
		biases = append(biases, seq[i+1]-seq[i]*m)
	}

	return slopes, biases
}

// components returns the (slopes, biases) view of n.
func (sb *SlopeAndBias) components(n Node) (Series, Series) {
	switch n.Kind {
	case Flat:
		return sb.Derive(n.Values)
	case Paired:
		return n.Slopes, n.Biases
	default:
		panic("predictors: SlopeAndBias: unknown node kind " + n.Kind.String())
	}
}

// IsBaseCase fires when either component is a base case for its strategy.
func (sb *SlopeAndBias) IsBaseCase(n Node) bool {
	slopes, biases := sb.components(n)

	return sb.slope.IsBaseCase(slopes) || sb.bias.IsBaseCase(biases)
}

// BaseValue returns the pair of component base values.
func (sb *SlopeAndBias) BaseValue(n Node) Estimate {
	slopes, biases := sb.components(n)

	return PairEstimate(sb.slope.BaseValue(slopes), sb.bias.BaseValue(biases))
}

// Reduce derives the pair from a raw sequence, or reduces both components
// of a pair independently.
func (sb *SlopeAndBias) Reduce(n Node) Node {
	switch n.Kind {
	case Flat:
		return PairNode(sb.Derive(n.Values))
	case Paired:
		return PairNode(sb.slope.Reduce(n.Slopes), sb.bias.Reduce(n.Biases))
	default:
		panic("predictors: SlopeAndBias: unknown node kind " + n.Kind.String())
	}
}

// Infer rebuilds (slope, bias) on a pair, or applies last*slope + bias on
// the raw sequence.
func (sb *SlopeAndBias) Infer(n Node, next Estimate) Estimate {
	if next.Shape != Pair {
		panic("predictors: SlopeAndBias: Infer needs a (slope, bias) estimate")
	}
	switch n.Kind {
	case Flat:
		return ScalarEstimate(n.Values.Last()*next.Slope + next.Bias)
	case Paired:
		return PairEstimate(
			sb.slope.Infer(n.Slopes, next.Slope),
			sb.bias.Infer(n.Biases, next.Bias),
		)
	default:
		panic("predictors: SlopeAndBias: unknown node kind " + n.Kind.String())
	}
}

// Trim applies the slope creator's Trim to a raw sequence.
func (sb *SlopeAndBias) Trim(n Node) Node {
	switch n.Kind {
	case Flat:
		return FlatNode(sb.creator.Trim(n.Values))
	case Paired:
		return n
	default:
		panic("predictors: SlopeAndBias: unknown node kind " + n.Kind.String())
	}
}

// Predict extrapolates a raw sequence.
func (sb *SlopeAndBias) Predict(seq []float64) (float64, bool) {
	est, ok := extrapolate.Predict[Node, Estimate](sb, FlatNode(seq))
	if !ok {
		return 0, false
	}

	return est.Value, true
}
