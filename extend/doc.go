// SPDX-License-Identifier: MIT
// Package: seqlath/extend
//
// doc.go — package overview.

// Package extend runs a Predictor over every prefix of a sequence.
//
// 🚀 What is inside?
//
//	PredictionSeries       — the one-step-ahead forecast at every position
//	Continuations          — for every prefix, the forecast rolled forward
//	                         to the full length of the sequence
//	ContinuationDistances  — DTW distance from each continuation to the
//	                         real sequence
//
// Absent predictions are written as NaN so output lengths never change.
// Once a continuation hits an absent prediction every later slot is NaN.
package extend
