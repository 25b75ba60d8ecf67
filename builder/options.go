// SPDX-License-Identifier: MIT
// Package: seqlath/builder
//
// options.go — functional options for the sequence generators.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Generators never panic; n < 1 returns nil.

package builder

import (
	"math"
	"math/rand"
)

// Defaults used when no option overrides them.
const (
	DefaultStart     = 1.0
	DefaultRatio     = 2.0
	DefaultAmplitude = 1.0
	DefaultPeriod    = 8
)

// SequenceOption customizes a generator by mutating a sequenceConfig.
type SequenceOption func(*sequenceConfig)

// sequenceConfig holds resolved knobs for one generator call.
type sequenceConfig struct {
	start     float64
	seeds     [2]float64
	ratio     float64
	amplitude float64
	period    int
	sigma     float64
	rng       *rand.Rand
}

// newSequenceConfig applies opts over the defaults.
func newSequenceConfig(opts ...SequenceOption) sequenceConfig {
	cfg := sequenceConfig{
		start:     DefaultStart,
		seeds:     [2]float64{1, 1},
		ratio:     DefaultRatio,
		amplitude: DefaultAmplitude,
		period:    DefaultPeriod,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// WithStart sets the first element. Panics on NaN or ±Inf.
func WithStart(x float64) SequenceOption {
	if !finite(x) {
		panic("builder: WithStart(non-finite)")
	}
	return func(c *sequenceConfig) { c.start = x }
}

// WithSeeds sets the first two Fibonacci elements. Panics on NaN or ±Inf.
func WithSeeds(a, b float64) SequenceOption {
	if !finite(a) || !finite(b) {
		panic("builder: WithSeeds(non-finite)")
	}
	return func(c *sequenceConfig) { c.seeds = [2]float64{a, b} }
}

// WithRatio sets the geometric ratio. Panics on zero or non-finite r.
func WithRatio(r float64) SequenceOption {
	if r == 0 || !finite(r) {
		panic("builder: WithRatio(r==0 or non-finite)")
	}
	return func(c *sequenceConfig) { c.ratio = r }
}

// WithAmplitude sets the pulse height A (>0).
func WithAmplitude(A float64) SequenceOption {
	if A <= 0 || !finite(A) {
		panic("builder: WithAmplitude(A<=0)")
	}
	return func(c *sequenceConfig) { c.amplitude = A }
}

// WithPeriod sets the pulse period in samples (>=2).
func WithPeriod(p int) SequenceOption {
	if p < 2 {
		panic("builder: WithPeriod(p<2)")
	}
	return func(c *sequenceConfig) { c.period = p }
}

// WithNoise adds Gaussian noise with standard deviation sigma (>=0).
// Noise draws come from the WithSeed stream, seed 0 when none is given.
func WithNoise(sigma float64) SequenceOption {
	if sigma < 0 || !finite(sigma) {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *sequenceConfig) { c.sigma = sigma }
}

// WithSeed fixes the noise stream.
func WithSeed(seed int64) SequenceOption {
	return func(c *sequenceConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// addNoise perturbs out in place when sigma > 0.
func (c sequenceConfig) addNoise(out []float64) {
	if c.sigma == 0 {
		return
	}
	rng := c.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	for i := range out {
		out[i] += c.sigma * rng.NormFloat64()
	}
}
