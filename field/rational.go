// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"math"
	"math/big"
)

// Rational is the arbitrary-precision backend. Equals and Smaller are exact;
// Sqrt and Acos bridge through float64 like the floating backend. Values are
// never mutated in place so results may be shared freely
type Rational struct{}

// NewRational returns the exact rational backend
func NewRational() Rational {
	return Rational{}
}

// FromFloat converts a float64 into a coordinate
func (o Rational) FromFloat(v float64) *big.Rat {
	return new(big.Rat).SetFloat64(v)
}

// Float converts a coordinate into a float64
func (o Rational) Float(a *big.Rat) float64 {
	f, _ := a.Float64()
	return f
}

// Zero returns the zero coordinate
func (o Rational) Zero() *big.Rat { return new(big.Rat) }

// Add returns a + b
func (o Rational) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

// Sub returns a - b
func (o Rational) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

// Mul returns a * b
func (o Rational) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// Div returns a / b
func (o Rational) Div(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }

// Neg returns -a
func (o Rational) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

// Equals tells whether a == b exactly
func (o Rational) Equals(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

// Smaller tells whether a < b exactly
func (o Rational) Smaller(a, b *big.Rat) bool { return a.Cmp(b) < 0 }

// Larger tells whether a > b exactly
func (o Rational) Larger(a, b *big.Rat) bool { return a.Cmp(b) > 0 }

// Sqrt returns the square root of a, bridged through float64
func (o Rational) Sqrt(a *big.Rat) *big.Rat {
	return o.FromFloat(math.Sqrt(o.Float(a)))
}

// Acos returns the arc cosine of a, bridged through float64
func (o Rational) Acos(a *big.Rat) float64 {
	return math.Acos(clamp1(o.Float(a)))
}

// EqAngle compares two bridged angle values under the default tolerance.
// Angle comparisons stay on the floating bridge even under the exact backend
// because the engine depends on a total order of acos values
func (o Rational) EqAngle(a, b float64) bool {
	return Float{Eps: DefaultEps}.Equals(a, b)
}
