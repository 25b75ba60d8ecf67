// SPDX-License-Identifier: MIT
// Package: seqlath/cmd/seqlath
//
// cmd_predict.go — forecast one sequence and show how the forecast evolves.

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqlath/dtw"
	"github.com/katalvlaran/seqlath/extend"
	"github.com/katalvlaran/seqlath/logging"
	"github.com/katalvlaran/seqlath/predictors"
)

// predictFlags are shared by predict and demo.
type predictFlags struct {
	predictor string
	precision int
	round     int
	window    int
}

func (f *predictFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.predictor, "predictor", "p", defaultPredictor, "predictor name, see: seqlath predictors")
	cmd.Flags().IntVar(&f.precision, "precision", predictors.DefaultTruncation, "digits kept by truncated predictors (-1 disables)")
	cmd.Flags().IntVar(&f.round, "round", 0, "digits shown in output (-1 prints full precision)")
	cmd.Flags().IntVar(&f.window, "window", dtw.NoWindow, "DTW window for continuation distances (-1 unconstrained)")
}

func newPredictCmd(a *app) *cobra.Command {
	var f predictFlags
	cmd := &cobra.Command{
		Use:   "predict NUMBER...",
		Short: "Forecast the next element of a sequence",
		Long: `Forecast the next element of the given sequence, then show the
one-step forecasts at every position, the roll-forward continuation from
every prefix and the DTW distance of each continuation to the input.

Use -- before a sequence that starts with a negative number.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseSequence(args)
			if err != nil {
				return err
			}
			p, err := predictors.Lookup(f.predictor, f.precision)
			if err != nil {
				return err
			}
			a.log.Debug("predict", logging.String("predictor", f.predictor), logging.Int("length", len(seq)))

			return showPredictions(cmd.OutOrStdout(), seq, p, f)
		},
	}
	f.register(cmd)

	return cmd
}

// showPredictions prints the forecast report for seq.
func showPredictions(w io.Writer, seq []float64, p predictors.Predictor, f predictFlags) error {
	fprintln(w, "predictor")
	fprintln(w, p.Name())
	fprintln(w)

	fprintln(w, "original sequence")
	fprintln(w, formatSeq(seq, -1))
	fprintln(w)

	fprintln(w, "predicted next element")
	if next, ok := p.Predict(seq); ok {
		fprintln(w, formatValue(next, f.round))
	} else {
		fprintln(w, "none")
	}
	fprintln(w)

	fprintln(w, "prediction series")
	fprintln(w, formatSeq(extend.PredictionSeries(seq, p), f.round))
	fprintln(w)

	conts := extend.Continuations(seq, p)
	if len(conts) == 0 {
		return nil
	}
	dists, err := extend.ContinuationDistances(seq, p, dtw.Options{Window: f.window})
	if err != nil {
		return err
	}
	fprintln(w, "continuations (dtw distance)")
	for i, c := range conts {
		fprintln(w, formatSeq(c, f.round), "("+formatValue(dists[i], 3)+")")
	}

	return nil
}
