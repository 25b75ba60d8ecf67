// SPDX-License-Identifier: MIT
// Package: seqlath/builder
//
// pulse.go — rectangular pulse train.
//
// A pulse has no low-order recurrence, so it is the control case for
// predictors: a good evaluation run should fail on it more often than not.

package builder

// Pulse returns n samples of a rectangular wave: A for the first half of
// every period, 0 for the rest.
func Pulse(n int, opts ...SequenceOption) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newSequenceConfig(opts...)
	out := make([]float64, n)
	half := cfg.period / 2
	for i := range out {
		if i%cfg.period < half {
			out[i] = cfg.amplitude
		}
	}
	cfg.addNoise(out)

	return out
}
