// SPDX-License-Identifier: MIT
// Package: seqlath/dtw
//
// dtw.go — two-row DTW distance.

package dtw

import (
	"math"
)

// Distance returns the DTW distance between a and b.
//
// Recurrence (1-based, D[0][0] = 0, borders +∞):
//
//	D[i][j] = |a[i-1] − b[j-1]| + min(D[i-1][j] + p, D[i][j-1] + p, D[i-1][j-1])
//
// Only two rows of D are kept. Cells outside the window stay +∞, so a
// window narrower than |len(a) − len(b)| yields +Inf.
//
// Errors: ErrEmptyInput, ErrBadWindow, ErrBadPenalty.
func Distance(a, b []float64, opts Options) (float64, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, ErrEmptyInput
	}
	if opts.Window < NoWindow {
		return 0, ErrBadWindow
	}
	if opts.SlopePenalty < 0 || math.IsNaN(opts.SlopePenalty) || math.IsInf(opts.SlopePenalty, 0) {
		return 0, ErrBadPenalty
	}

	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	p := opts.SlopePenalty
	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if opts.Window != NoWindow && abs(i-j) > opts.Window {
				curr[j] = inf
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			if math.IsNaN(cost) {
				curr[j] = inf
				continue
			}
			curr[j] = cost + min(prev[j]+p, curr[j-1]+p, prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m], nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
