// SPDX-License-Identifier: MIT
// Package: seqlath/dtw
//
// types.go — Options, defaults and sentinel errors.

package dtw

import "errors"

// NoWindow disables the Sakoe–Chiba constraint.
const NoWindow = -1

var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadWindow indicates Window < NoWindow.
	ErrBadWindow = errors.New("dtw: window must be >= -1")

	// ErrBadPenalty indicates a negative or non-finite slope penalty.
	ErrBadPenalty = errors.New("dtw: slope penalty must be finite and >= 0")
)

// Options configures Distance.
//
// Fields:
//   - Window       — maximum deviation |i-j| allowed (Sakoe–Chiba band).
//     NoWindow means unconstrained; 0 forces a strict diagonal.
//   - SlopePenalty — cost added to every insertion/deletion step.
type Options struct {
	Window       int
	SlopePenalty float64
}

// DefaultOptions returns an unconstrained, penalty-free configuration.
func DefaultOptions() Options {
	return Options{Window: NoWindow}
}
