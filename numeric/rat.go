// SPDX-License-Identifier: MIT
// Package: seqlath/numeric
//
// rat.go — Arith over exact fractions.

package numeric

import (
	"math/big"
)

// Rat implements Arith[*big.Rat]. Every method allocates its result, so
// values may be shared freely between sequences.
type Rat struct{}

var _ Arith[*big.Rat] = Rat{}

func (Rat) Zero() *big.Rat { return new(big.Rat) }
func (Rat) One() *big.Rat { return big.NewRat(1, 1) }

// FromFloat converts f exactly. Non-finite inputs have no rational value and
// map to nil; see Finite.
func (Rat) FromFloat(f float64) *big.Rat { return new(big.Rat).SetFloat64(f) }

// Float returns the nearest float64 to x.
func (Rat) Float(x *big.Rat) float64 {
	f, _ := x.Float64()

	return f
}

func (Rat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (Rat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (Rat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (Rat) Quo(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }
func (Rat) Abs(x *big.Rat) *big.Rat { return new(big.Rat).Abs(x) }
func (Rat) Less(a, b *big.Rat) bool { return a.Cmp(b) < 0 }
func (Rat) IsZero(x *big.Rat) bool { return x.Sign() == 0 }

// Floor returns the greatest integer not above x. big.Rat keeps a positive
// denominator, so Euclidean division of num by denom is the floor.
func (Rat) Floor(x *big.Rat) *big.Rat {
	q := new(big.Int).Div(x.Num(), x.Denom())

	return new(big.Rat).SetInt(q)
}

// Round rounds x to places decimal digits, halves away from zero.
func (Rat) Round(x *big.Rat, places int32) *big.Rat {
	if places < 0 {
		return new(big.Rat).Set(x)
	}
	r, ok := new(big.Rat).SetString(x.FloatString(int(places)))
	if !ok {
		return new(big.Rat).Set(x)
	}

	return r
}

// Finite reports whether every value in xs can be represented as a Rat.
func Finite(xs []float64) bool {
	var ar Rat
	for _, x := range xs {
		if ar.FromFloat(x) == nil {
			return false
		}
	}

	return true
}
