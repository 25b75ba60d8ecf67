// SPDX-License-Identifier: MIT
// Package: seqlath/cmd/seqlath
//
// cmd_predictors.go — list registered predictor names.

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqlath/predictors"
)

func newPredictorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predictors",
		Short: "List registered predictor names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range predictors.Names() {
				fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
