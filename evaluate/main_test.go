// SPDX-License-Identifier: MIT
// Package: seqlath/evaluate
//
// main_test.go — goroutine leak guard for the package tests.

package evaluate_test

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
