// SPDX-License-Identifier: MIT
// Package: seqlath/builder
//
// example_test.go — runnable examples.

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/seqlath/builder"
)

// ExampleAffine builds x[i+1] = 2·x[i] + 3.
func ExampleAffine() {
	fmt.Println(builder.Affine(6, 2, 3))
	// Output: [1 5 13 29 61 125]
}

// ExampleFibonacci builds the first ten Fibonacci numbers.
func ExampleFibonacci() {
	fmt.Println(builder.Fibonacci(10))
	// Output: [1 1 2 3 5 8 13 21 34 55]
}
