// SPDX-License-Identifier: MIT
// Package: seqlath/predictors
//
// registry.go — name → configuration lookup for tooling.

package predictors

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/seqlath/numeric"
)

// DefaultTruncation is the precision used by the truncated presets when the
// caller has no preference.
const DefaultTruncation = 6

// presets maps a stable, lowercase name to a constructor. The precision
// argument is only read by truncated presets.
var presets = map[string]func(precision int) Predictor{
	"division":                    func(int) Predictor { return NewDivision() },
	"division-frac":               func(int) Predictor { return NewDivisionFrac() },
	"improved-division":           func(int) Predictor { return NewImprovedDivision() },
	"improved-division-frac":      func(int) Predictor { return NewImprovedDivisionFrac() },
	"division-zero":               func(int) Predictor { return NewDivisionCanDealWithZero() },
	"division-frac-zero":          func(int) Predictor { return NewDivisionFracCanDealWithZero() },
	"improved-division-zero":      func(int) Predictor { return NewImprovedDivisionCanDealWithZero() },
	"improved-division-frac-zero": func(int) Predictor { return NewImprovedDivisionFracCanDealWithZero() },
	"subtraction":                 func(int) Predictor { return NewSubtraction() },
	"subtraction-frac":            func(int) Predictor { return NewSubtractionFrac() },
	"division-truncated":          NewDivisionWithTruncation,
	"improved-division-truncated": NewImprovedDivisionWithTruncation,
	"slope-and-bias":              func(int) Predictor { return NewSlopeAndBias() },
	"slope-and-bias-subtraction": func(int) Predictor {
		return NewSlopeAndBias(WithBiasPredictor(NewSubtractionOf[float64](numeric.Float{})))
	},
}

// Names returns every registered name in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Lookup builds a fresh predictor by name. Matching ignores case and
// surrounding space. precision feeds the truncated presets and must be
// NoTruncation or greater.
func Lookup(name string, precision int) (Predictor, error) {
	if precision < NoTruncation {
		return nil, fmt.Errorf("Lookup(%q, %d): %w", name, precision, ErrBadPrecision)
	}
	ctor, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownPredictor)
	}

	return ctor(precision), nil
}

// Known reports whether name is registered.
func Known(name string) bool {
	_, ok := presets[strings.ToLower(strings.TrimSpace(name))]

	return ok
}
