// SPDX-License-Identifier: MIT
// Package: seqlath/predictors
//
// errors.go — sentinel errors. Match with errors.Is.

package predictors

import "errors"

// ErrUnknownPredictor indicates that Lookup was given a name outside Names().
var ErrUnknownPredictor = errors.New("predictors: unknown predictor")

// ErrBadPrecision indicates a truncation precision below NoTruncation.
var ErrBadPrecision = errors.New("predictors: truncation precision must be >= -1")
