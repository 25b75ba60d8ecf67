// SPDX-License-Identifier: MIT
// Package: seqlath/cmd/seqlath
//
// root.go — root command, shared flags and output helpers.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqlath/logging"
	"github.com/katalvlaran/seqlath/numeric"
)

const defaultPredictor = "slope-and-bias"

// app carries state shared by every subcommand.
type app struct {
	logLevel  string
	logFormat string
	log       *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.Nop()}

	root := &cobra.Command{
		Use:          "seqlath",
		Short:        "Forecast the next element of numeric sequences",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := logging.NewWriter(cmd.ErrOrStderr(), logging.Config{Level: a.logLevel, Format: a.logFormat})
			if err != nil {
				return err
			}
			a.log = l

			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error, disabled)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "console", "log format (json or console)")

	root.AddCommand(
		newPredictCmd(a),
		newEvaluateCmd(a),
		newPredictorsCmd(),
		newDemoCmd(a),
	)

	return root
}

// parseSequence converts CLI arguments into numbers.
func parseSequence(args []string) ([]float64, error) {
	seq := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		seq[i] = v
	}

	return seq, nil
}

// formatValue renders x with places fixed digits, or exactly when places < 0.
func formatValue(x float64, places int) string {
	if places < 0 {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	return strconv.FormatFloat(numeric.Float{}.Round(x, int32(places)), 'f', places, 64)
}

// formatSeq renders xs as "[a b c]".
func formatSeq(xs []float64, places int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = formatValue(x, places)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func fprintln(w io.Writer, a ...any) { _, _ = fmt.Fprintln(w, a...) }
