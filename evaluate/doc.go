// SPDX-License-Identifier: MIT
// Package: seqlath/evaluate
//
// doc.go — package overview.

// Package evaluate scores predictors against a corpus of known sequences.
//
// 🚀 How a sequence is scored:
//
//	The predictor sees every element but the last and forecasts the last.
//	For each error margin m ≥ 1 the forecast passes when it lies in
//	[t/m, t·m] (bounds swapped for negative targets t). A predictor that
//	declines to forecast counts the sequence as skipped.
//
// ✨ Features:
//   - predictors are evaluated concurrently (errgroup, bounded workers)
//   - context cancellation stops a run between sequences
//   - optional Prometheus counters and a duration histogram
//   - Report.Render draws one lipgloss table per predictor
//
// ⚙️ Usage:
//
//	rep, err := evaluate.Run(ctx, preds, entries,
//	    evaluate.WithWorkers(4),
//	    evaluate.WithMetrics(m),
//	)
//	fmt.Println(rep.Render())
package evaluate
