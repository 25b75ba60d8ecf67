// SPDX-License-Identifier: MIT
// Package: seqlath/evaluate
//
// metrics.go — Prometheus instrumentation for evaluation runs.

package evaluate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ErrRegistration indicates a collector could not be registered.
var ErrRegistration = errors.New("evaluate: metric registration failed")

const (
	metricsNamespace = "seqlath"
	metricsSubsystem = "evaluate"

	outcomePredicted = "predicted"
	outcomeSkipped   = "skipped"
)

// Metrics holds the collectors updated by Run.
type Metrics struct {
	sequences *prometheus.CounterVec
	passed    *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors on reg. A nil reg uses
// prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		sequences: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "sequences_total",
			Help:      "Sequences evaluated, by predictor and outcome (predicted or skipped).",
		}, []string{"predictor", "outcome"}),
		passed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "passed_total",
			Help:      "Forecasts inside the error margin, by predictor and margin.",
		}, []string{"predictor", "margin"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "run_duration_seconds",
			Help:      "Wall time to evaluate one predictor over the corpus.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"predictor"}),
	}
	for _, c := range []prometheus.Collector{m.sequences, m.passed, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRegistration, err)
		}
	}

	return m, nil
}

// label flattens multi-line composite names into one line.
func label(name string) string {
	return strings.ReplaceAll(name, "\n", " | ")
}

func (m *Metrics) observe(r *Result, elapsed time.Duration) {
	if m == nil {
		return
	}
	name := label(r.Name)
	m.sequences.WithLabelValues(name, outcomePredicted).Add(float64(r.Predicted()))
	m.sequences.WithLabelValues(name, outcomeSkipped).Add(float64(r.Skipped))
	for i, margin := range r.Margins {
		m.passed.WithLabelValues(name, strconv.FormatFloat(margin, 'g', -1, 64)).Add(float64(r.Passed[i]))
	}
	m.duration.WithLabelValues(name).Observe(elapsed.Seconds())
}

// WriteTextfile writes every metric gathered by g to path in the
// node_exporter textfile format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("evaluate: write metrics: %w", err)
	}

	return nil
}
