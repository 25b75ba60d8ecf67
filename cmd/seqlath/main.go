// SPDX-License-Identifier: MIT
// Package: seqlath/cmd/seqlath
//
// main.go — CLI entry point.

// Command seqlath forecasts the next element of numeric sequences and scores
// predictors against OEIS-style corpora.
//
//	seqlath predict 1 1 2 3 5 8 --predictor slope-and-bias
//	seqlath evaluate --corpus stripped.gz --limit 10000
//	seqlath predictors
//	seqlath demo --n 10
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
