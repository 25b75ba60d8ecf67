// SPDX-License-Identifier: MIT
// Package: seqlath/evaluate
//
// run.go — concurrent corpus evaluation.

package evaluate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seqlath/corpus"
	"github.com/katalvlaran/seqlath/logging"
	"github.com/katalvlaran/seqlath/predictors"
)

// ErrNoPredictors indicates Run was called with an empty predictor list.
var ErrNoPredictors = errors.New("evaluate: no predictors")

// Result is the tally for one predictor.
type Result struct {
	Name    string
	Margins []float64
	Passed  []int
	Failed  []int
	Skipped int
	Total   int
	Elapsed time.Duration
}

// Predicted is the number of sequences the predictor produced a forecast for.
func (r *Result) Predicted() int { return r.Total - r.Skipped }

// Report holds one Result per predictor, in input order.
type Report struct {
	Margins []float64
	Entries int
	Results []Result
}

// Option customizes Run.
type Option func(*runConfig)

type runConfig struct {
	margins []float64
	workers int
	metrics *Metrics
	log     *logging.Logger
}

// WithMargins overrides DefaultMargins. Panics on an empty list or any
// margin below 1.
func WithMargins(margins ...float64) Option {
	if len(margins) == 0 {
		panic("evaluate: WithMargins()")
	}
	for _, m := range margins {
		if !(m >= 1) || math.IsInf(m, 1) {
			panic("evaluate: WithMargins(m<1 or non-finite)")
		}
	}
	cp := append([]float64(nil), margins...)
	return func(c *runConfig) { c.margins = cp }
}

// WithWorkers bounds how many predictors run at once. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("evaluate: WithWorkers(n<1)")
	}
	return func(c *runConfig) { c.workers = n }
}

// WithMetrics records every finished predictor in m.
func WithMetrics(m *Metrics) Option {
	return func(c *runConfig) { c.metrics = m }
}

// WithLogger sets the progress logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *runConfig) { c.log = logging.OrNop(l) }
}

// Run evaluates every predictor over every entry. Predictors run
// concurrently; each one walks the corpus sequentially. The first context
// error aborts the run and is returned.
func Run(ctx context.Context, preds []predictors.Predictor, entries []corpus.Entry, opts ...Option) (*Report, error) {
	if len(preds) == 0 {
		return nil, ErrNoPredictors
	}
	cfg := runConfig{margins: DefaultMargins, workers: 1, log: logging.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	cfg.log.Info("evaluation started",
		logging.Int("predictors", len(preds)),
		logging.Int("sequences", len(entries)),
		logging.Int("workers", cfg.workers),
	)

	results := make([]Result, len(preds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, p := range preds {
		g.Go(func() error {
			start := time.Now()
			res, err := evaluateOne(gctx, p, entries, cfg.margins)
			if err != nil {
				return fmt.Errorf("evaluate: %s: %w", p.Name(), err)
			}
			res.Elapsed = time.Since(start)
			results[i] = res
			cfg.metrics.observe(&res, res.Elapsed)
			cfg.log.Debug("predictor finished",
				logging.String("predictor", label(res.Name)),
				logging.Int("skipped", res.Skipped),
				logging.Duration("elapsed", res.Elapsed),
			)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cfg.log.Info("evaluation finished")

	return &Report{
		Margins: append([]float64(nil), cfg.margins...),
		Entries: len(entries),
		Results: results,
	}, nil
}

func evaluateOne(ctx context.Context, p predictors.Predictor, entries []corpus.Entry, margins []float64) (Result, error) {
	res := Result{
		Name:    p.Name(),
		Margins: margins,
		Passed:  make([]int, len(margins)),
		Failed:  make([]int, len(margins)),
		Total:   len(entries),
	}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		passed, ok := Check(p, e.Values, margins)
		if !ok {
			res.Skipped++
			continue
		}
		for j, hit := range passed {
			if hit {
				res.Passed[j]++
			} else {
				res.Failed[j]++
			}
		}
	}

	return res, nil
}
