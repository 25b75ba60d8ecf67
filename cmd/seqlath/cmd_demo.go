// SPDX-License-Identifier: MIT
// Package: seqlath/cmd/seqlath
//
// cmd_demo.go — built-in sequences for a quick look at a predictor.

package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqlath/builder"
	"github.com/katalvlaran/seqlath/logging"
	"github.com/katalvlaran/seqlath/predictors"
)

var demoSequences = map[string]func(n int) []float64{
	"fibonacci": func(n int) []float64 { return builder.Fibonacci(n) },
	"geometric": func(n int) []float64 { return builder.Geometric(n, builder.WithRatio(3)) },
	"affine":    func(n int) []float64 { return builder.Affine(n, 2, 3) },
	"squares":   func(n int) []float64 { return builder.Polynomial(n, 0, 0, 1) },
	"pulse":     func(n int) []float64 { return builder.Pulse(n, builder.WithPeriod(4)) },
}

func demoNames() []string {
	names := make([]string, 0, len(demoSequences))
	for k := range demoSequences {
		names = append(names, k)
	}
	slices.Sort(names)

	return names
}

func newDemoCmd(a *app) *cobra.Command {
	var (
		f        predictFlags
		n        int
		sequence string
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a predictor on a built-in sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, ok := demoSequences[sequence]
			if !ok {
				return fmt.Errorf("unknown sequence %q (known: %v)", sequence, demoNames())
			}
			if n < 1 {
				return fmt.Errorf("--n must be >= 1, got %d", n)
			}
			p, err := predictors.Lookup(f.predictor, f.precision)
			if err != nil {
				return err
			}
			a.log.Debug("demo", logging.String("sequence", sequence), logging.Int("n", n))

			return showPredictions(cmd.OutOrStdout(), gen(n), p, f)
		},
	}
	f.register(cmd)
	cmd.Flags().IntVar(&n, "n", 10, "sequence length")
	cmd.Flags().StringVarP(&sequence, "sequence", "s", "fibonacci", fmt.Sprintf("built-in sequence %v", demoNames()))

	return cmd
}
