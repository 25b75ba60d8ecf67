// SPDX-License-Identifier: MIT
// Package: seqlath/dtw
//
// doc.go — package overview.

// Package dtw computes Dynamic Time Warping (DTW) distances between numeric
// sequences.
//
// 🚀 Why is it here?
//
//	A continuation produced by an extrapolation strategy may track the true
//	sequence with a lag of a step or two. Pointwise error punishes such a lag
//	heavily; DTW lets the two sequences stretch against each other and
//	reports how far apart their shapes are. The extend package uses it to
//	score every continuation against the real sequence.
//
// ✨ Key features:
//   - two-row dynamic programme: O(min(N,M)) memory
//   - optional Sakoe–Chiba window (|i−j| ≤ w)
//   - slope penalty to discourage excessive stretching
//   - NaN-tolerant: a NaN cell is treated as +Inf cost (unreachable)
//
// ⚙️ Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 2
//	dist, err := dtw.Distance(a, b, opts)
//
// Performance:
//
//   - Time:   O(N·M), or O(N·w) with a window
//   - Memory: O(M)
package dtw
