// SPDX-License-Identifier: MIT
// Package: seqlath/numeric
//
// float.go — Arith over float64.

package numeric

import (
	"math"

	"github.com/shopspring/decimal"
)

// Float implements Arith[float64]. Overflow and rounding noise are accepted;
// callers that need exactness use Rat.
type Float struct{}

var _ Arith[float64] = Float{}

func (Float) Zero() float64 { return 0 }
func (Float) One() float64 { return 1 }
func (Float) FromFloat(f float64) float64 { return f }
func (Float) Float(x float64) float64 { return x }
func (Float) Add(a, b float64) float64 { return a + b }
func (Float) Sub(a, b float64) float64 { return a - b }
func (Float) Mul(a, b float64) float64 { return a * b }
func (Float) Quo(a, b float64) float64 { return a / b }
func (Float) Abs(x float64) float64 { return math.Abs(x) }
func (Float) Less(a, b float64) bool { return a < b }
func (Float) IsZero(x float64) bool { return x == 0 }
func (Float) Floor(x float64) float64 { return math.Floor(x) }

// Round rounds x to places decimal digits through a decimal representation,
// so 0.1+0.2 rounded to 1 place is exactly 0.3. NaN and ±Inf have no decimal
// form and are returned unchanged.
func (Float) Round(x float64, places int32) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r, _ := decimal.NewFromFloat(x).Round(places).Float64()

	return r
}
