// SPDX-License-Identifier: MIT
// Package: seqlath/cmd/seqlath
//
// cmd_evaluate.go — score predictors against a corpus.

package main

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqlath/config"
	"github.com/katalvlaran/seqlath/corpus"
	"github.com/katalvlaran/seqlath/evaluate"
	"github.com/katalvlaran/seqlath/logging"
	"github.com/katalvlaran/seqlath/predictors"
)

var errNoCorpus = errors.New("no corpus path: set corpus.path in the config or pass --corpus")

func newEvaluateCmd(a *app) *cobra.Command {
	var (
		cfgPath  string
		override config.Config
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score predictors against a corpus of sequences",
		Long: `Load a corpus in OEIS stripped format (plain or gzip), forecast the last
element of every sequence from the rest, and report how many forecasts land
within each error margin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if cfgPath != "" {
				loaded, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			applyOverrides(cmd, cfg, &override)
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Corpus.Path == "" {
				return errNoCorpus
			}

			log := a.log
			if cfgPath != "" && !cmd.Flags().Changed("log-level") {
				l, err := logging.New(cfg.Log)
				if err != nil {
					return err
				}
				defer l.Close()
				log = l
			}

			entries, err := corpus.Load(cfg.Corpus.Path,
				corpus.WithLimit(cfg.Corpus.Limit),
				corpus.WithMinLength(cfg.Corpus.MinLength),
			)
			if err != nil {
				return err
			}
			log.Info("corpus loaded", logging.String("path", cfg.Corpus.Path), logging.Int("sequences", len(entries)))

			preds := make([]predictors.Predictor, 0, len(cfg.Predictors))
			for _, name := range cfg.Predictors {
				p, err := predictors.Lookup(name, cfg.Truncation)
				if err != nil {
					return err
				}
				preds = append(preds, p)
			}

			opts := []evaluate.Option{
				evaluate.WithMargins(cfg.Margins...),
				evaluate.WithWorkers(cfg.Workers),
				evaluate.WithLogger(log),
			}
			var reg *prometheus.Registry
			if cfg.MetricsFile != "" {
				reg = prometheus.NewRegistry()
				m, err := evaluate.NewMetrics(reg)
				if err != nil {
					return err
				}
				opts = append(opts, evaluate.WithMetrics(m))
			}

			rep, err := evaluate.Run(cmd.Context(), preds, entries, opts...)
			if err != nil {
				return err
			}
			fprintln(cmd.OutOrStdout(), rep.Render())

			if reg != nil {
				return evaluate.WriteTextfile(cfg.MetricsFile, reg)
			}

			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&cfgPath, "config", "c", "", "YAML configuration file")
	fl.StringVar(&override.Corpus.Path, "corpus", "", "corpus file (OEIS stripped format, optionally gzipped)")
	fl.IntVar(&override.Corpus.Limit, "limit", 0, "maximum sequences to load (0 = all)")
	fl.IntVar(&override.Corpus.MinLength, "min-length", 0, "skip sequences with fewer values")
	fl.StringSliceVarP(&override.Predictors, "predictor", "p", nil, "predictor names (repeatable)")
	fl.Float64SliceVar(&override.Margins, "margins", nil, "error margins, each >= 1")
	fl.IntVarP(&override.Workers, "workers", "w", 0, "predictors evaluated concurrently")
	fl.IntVar(&override.Truncation, "precision", 0, "digits kept by truncated predictors (-1 disables)")
	fl.StringVar(&override.MetricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")

	return cmd
}

// applyOverrides copies every explicitly set flag onto cfg.
func applyOverrides(cmd *cobra.Command, cfg, o *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("corpus") {
		cfg.Corpus.Path = o.Corpus.Path
	}
	if fl.Changed("limit") {
		cfg.Corpus.Limit = o.Corpus.Limit
	}
	if fl.Changed("min-length") {
		cfg.Corpus.MinLength = o.Corpus.MinLength
	}
	if fl.Changed("predictor") {
		cfg.Predictors = o.Predictors
	}
	if fl.Changed("margins") {
		cfg.Margins = o.Margins
	}
	if fl.Changed("workers") {
		cfg.Workers = o.Workers
	}
	if fl.Changed("precision") {
		cfg.Truncation = o.Truncation
	}
	if fl.Changed("metrics-file") {
		cfg.MetricsFile = o.MetricsFile
	}
}
