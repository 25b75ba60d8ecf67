// SPDX-License-Identifier: MIT
// Package: seqlath/builder
//
// recurrences.go — linear recurrences and polynomials.

package builder

// Fibonacci returns n terms of a[i+2] = a[i+1] + a[i], seeded by
// WithSeeds (default 1, 1).
func Fibonacci(n int, opts ...SequenceOption) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newSequenceConfig(opts...)
	out := make([]float64, n)
	out[0] = cfg.seeds[0]
	if n > 1 {
		out[1] = cfg.seeds[1]
	}
	for i := 2; i < n; i++ {
		out[i] = out[i-1] + out[i-2]
	}
	cfg.addNoise(out)

	return out
}

// Geometric returns n terms of a[i+1] = a[i]·r starting at WithStart
// (default 1) with ratio WithRatio (default 2).
func Geometric(n int, opts ...SequenceOption) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newSequenceConfig(opts...)
	out := make([]float64, n)
	out[0] = cfg.start
	for i := 1; i < n; i++ {
		out[i] = out[i-1] * cfg.ratio
	}
	cfg.addNoise(out)

	return out
}

// Affine returns n terms of a[i+1] = a[i]·slope + bias starting at
// WithStart (default 1).
func Affine(n int, slope, bias float64, opts ...SequenceOption) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newSequenceConfig(opts...)
	out := make([]float64, n)
	out[0] = cfg.start
	for i := 1; i < n; i++ {
		out[i] = out[i-1]*slope + bias
	}
	cfg.addNoise(out)

	return out
}

// Polynomial returns p(0), …, p(n-1) where p(x) = Σ coeffs[k]·x^k.
// No coefficients means the zero polynomial.
func Polynomial(n int, coeffs ...float64) []float64 {
	if n < 1 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		x := float64(i)
		var acc float64
		for k := len(coeffs) - 1; k >= 0; k-- {
			acc = acc*x + coeffs[k]
		}
		out[i] = acc
	}

	return out
}
