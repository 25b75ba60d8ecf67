// SPDX-License-Identifier: MIT
// Package: seqlath/predictors
//
// options.go — functional options for Division and SlopeAndBias.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless input.
//   • Strategies themselves never panic on user data.
//   • Later options override earlier ones.

package predictors

import "math"

// ratioConfig is the resolved Division configuration.
type ratioConfig struct {
	threshold    float64 // 0 disables the precision guard
	zeroTolerant bool    // substitute ratios through zero instead of trimming
	name         string  // "" means derive from the flags
}

// RatioOption customizes a Division.
type RatioOption func(*ratioConfig)

// WithThreshold enables the precision guard: when the smallest absolute
// reduced ratio falls below t, the whole reduction is replaced by [1].
// Panics unless t is finite and > 0.
func WithThreshold(t float64) RatioOption {
	if !(t > 0) || math.IsInf(t, 0) {
		panic("predictors: WithThreshold(t) requires finite t > 0")
	}

	return func(c *ratioConfig) { c.threshold = t }
}

// WithZeroTolerance makes Division accept zeros: the base case fires only on
// singletons, Trim keeps everything, and each ratio through a zero previous
// element is replaced by the largest other ratio of the same pass.
func WithZeroTolerance() RatioOption {
	return func(c *ratioConfig) { c.zeroTolerant = true }
}

// WithName overrides the derived display name. Panics on "".
func WithName(name string) RatioOption {
	if name == "" {
		panic("predictors: WithName(\"\")")
	}

	return func(c *ratioConfig) { c.name = name }
}

func newRatioConfig(opts ...RatioOption) ratioConfig {
	var cfg ratioConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// compositeConfig is the resolved SlopeAndBias configuration.
type compositeConfig struct {
	slope   FloatStrategy
	bias    FloatStrategy
	creator FloatStrategy
}

// CompositeOption customizes a SlopeAndBias.
type CompositeOption func(*compositeConfig)

// WithSlopePredictor sets the strategy that extrapolates the slope sequence.
// Panics on nil.
func WithSlopePredictor(st FloatStrategy) CompositeOption {
	if st == nil {
		panic("predictors: WithSlopePredictor(nil)")
	}

	return func(c *compositeConfig) { c.slope = st }
}

// WithBiasPredictor sets the strategy that extrapolates the bias sequence.
// Panics on nil.
func WithBiasPredictor(st FloatStrategy) CompositeOption {
	if st == nil {
		panic("predictors: WithBiasPredictor(nil)")
	}

	return func(c *compositeConfig) { c.bias = st }
}

// WithSlopeCreator sets the strategy whose Reduce produces the raw slopes
// (floored afterwards) and whose Trim is applied to the input. Panics on nil.
func WithSlopeCreator(st FloatStrategy) CompositeOption {
	if st == nil {
		panic("predictors: WithSlopeCreator(nil)")
	}

	return func(c *compositeConfig) { c.creator = st }
}
