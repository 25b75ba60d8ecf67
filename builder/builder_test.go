// SPDX-License-Identifier: MIT
// Package: seqlath/builder
//
// builder_test.go — generator contracts.

package builder_test

import (
	"testing"

	"github.com/katalvlaran/seqlath/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerators_InvalidN verifies n < 1 returns nil for every generator.
func TestGenerators_InvalidN(t *testing.T) {
	for _, n := range []int{0, -3} {
		assert.Nil(t, builder.Fibonacci(n))
		assert.Nil(t, builder.Geometric(n))
		assert.Nil(t, builder.Affine(n, 2, 3))
		assert.Nil(t, builder.Polynomial(n, 1))
		assert.Nil(t, builder.Pulse(n))
	}
}

// TestFibonacci checks defaults and custom seeds.
func TestFibonacci(t *testing.T) {
	assert.Equal(t, []float64{1, 1, 2, 3, 5, 8, 13}, builder.Fibonacci(7))
	assert.Equal(t, []float64{2}, builder.Fibonacci(1, builder.WithSeeds(2, 1)))
	assert.Equal(t, []float64{2, 1, 3, 4, 7}, builder.Fibonacci(5, builder.WithSeeds(2, 1)))
}

// TestGeometric checks ratio and start.
func TestGeometric(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 4, 8}, builder.Geometric(4))
	assert.Equal(t, []float64{3, -6, 12}, builder.Geometric(3, builder.WithStart(3), builder.WithRatio(-2)))
}

// TestAffine reproduces the slope-and-bias reference sequence.
func TestAffine(t *testing.T) {
	assert.Equal(t, []float64{1, 5, 13, 29, 61, 125}, builder.Affine(6, 2, 3))
}

// TestPolynomial evaluates with Horner's rule.
func TestPolynomial(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 5, 10, 17}, builder.Polynomial(5, 1, 0, 1))
	assert.Equal(t, []float64{0, 0, 0}, builder.Polynomial(3))
}

// TestPulse checks shape and period.
func TestPulse(t *testing.T) {
	got := builder.Pulse(8, builder.WithPeriod(4), builder.WithAmplitude(2))
	assert.Equal(t, []float64{2, 2, 0, 0, 2, 2, 0, 0}, got)
}

// TestNoise_Deterministic checks the noise stream is fixed by the seed.
func TestNoise_Deterministic(t *testing.T) {
	a := builder.Fibonacci(10, builder.WithNoise(0.5), builder.WithSeed(42))
	b := builder.Fibonacci(10, builder.WithNoise(0.5), builder.WithSeed(42))
	require.Equal(t, a, b)
	assert.NotEqual(t, builder.Fibonacci(10), a)
}

// TestOptions_Panic verifies option constructors reject nonsense.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithRatio(0) })
	assert.Panics(t, func() { builder.WithAmplitude(-1) })
	assert.Panics(t, func() { builder.WithPeriod(1) })
	assert.Panics(t, func() { builder.WithNoise(-0.1) })
}
