// SPDX-License-Identifier: MIT
// Package: seqlath/builder
//
// doc.go — package overview.

// Package builder produces deterministic numeric sequences used as fixtures
// for predictors, examples, benchmarks and the demo command.
//
// 🚀 Generators:
//
//	Fibonacci(n, opts...)           — a[i+2] = a[i+1] + a[i]
//	Geometric(n, opts...)           — a[i+1] = a[i] · r
//	Affine(n, slope, bias, opts...) — a[i+1] = a[i] · slope + bias
//	Polynomial(n, coeffs...)        — a[i]   = Σ c_k · i^k
//	Pulse(n, opts...)               — rectangular wave, a non-recurrent control
//
// ⚙️ Options (functional, validated eagerly):
//
//	WithStart(x)          first element (Geometric, Affine)
//	WithSeeds(a, b)       first two elements (Fibonacci)
//	WithRatio(r)          common ratio (Geometric)
//	WithAmplitude(A)      pulse height (Pulse)
//	WithPeriod(p)         pulse period in samples (Pulse)
//	WithNoise(σ), WithSeed(s)  additive Gaussian noise, reproducible per seed
//
// Contract:
//   - n < 1 returns nil. Generators never panic; option constructors do,
//     on meaningless values.
//   - Same (n, options) ⇒ same output, bit for bit.
package builder
