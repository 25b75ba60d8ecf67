// Package seqlath forecasts the next element of a finite numeric sequence
// by reducing it to simpler sequences until a trivial pattern appears, then
// undoing every reduction in reverse.
//
// 🚀 What is inside?
//
//	numeric/     — Arith[T]: float64 (decimal rounding) and exact *big.Rat
//	extrapolate/ — the generic reduce/infer engine and the Strategy contract
//	predictors/  — Division, Subtraction, Truncated, SlopeAndBias, presets
//	extend/      — prediction series, continuations, DTW scoring
//	dtw/         — Dynamic Time Warping distance
//	builder/     — deterministic fixture sequences
//	corpus/      — OEIS "stripped" reader (plain or gzip)
//	evaluate/    — concurrent pass/fail scoring over error margins
//	config/, logging/ — harness configuration and structured logs
//	cmd/seqlath  — CLI: predict, evaluate, predictors, demo
//
// ✨ Highlights:
//
//   - One engine for every strategy: strategies only supply reduce, infer
//     and a base case.
//   - Exact fractions or float64 through the same generic code.
//   - A composite slope-and-bias model that extrapolates two derived
//     sequences in lockstep.
//
// Quick start:
//
//	p := predictors.NewSlopeAndBias()
//	next, ok := p.Predict([]float64{1, 5, 13, 29, 61}) // 125, true
package seqlath
