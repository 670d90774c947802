// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "math"

// Float is the floating-point backend. Equality is absolute-plus-relative
// under Eps, following boost::geometry::math::equals
type Float struct {
	Eps float64 // tolerance; DefaultEps if zero
}

// NewFloat returns a floating backend with the default tolerance
func NewFloat() Float {
	return Float{Eps: DefaultEps}
}

// eps returns the effective tolerance
func (o Float) eps() float64 {
	if o.Eps > 0 {
		return o.Eps
	}
	return DefaultEps
}

// FromFloat converts a float64 into a coordinate
func (o Float) FromFloat(v float64) float64 { return v }

// Float converts a coordinate into a float64
func (o Float) Float(a float64) float64 { return a }

// Zero returns the zero coordinate
func (o Float) Zero() float64 { return 0 }

// Add returns a + b
func (o Float) Add(a, b float64) float64 { return a + b }

// Sub returns a - b
func (o Float) Sub(a, b float64) float64 { return a - b }

// Mul returns a * b
func (o Float) Mul(a, b float64) float64 { return a * b }

// Div returns a / b
func (o Float) Div(a, b float64) float64 { return a / b }

// Neg returns -a
func (o Float) Neg(a float64) float64 { return -a }

// Equals tells whether |a-b| <= Eps * max(|a|, |b|, 1)
func (o Float) Equals(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= o.eps()*math.Max(math.Max(math.Abs(a), math.Abs(b)), 1)
}

// Smaller tells whether a < b and not Equals(a, b)
func (o Float) Smaller(a, b float64) bool {
	if o.Equals(a, b) {
		return false
	}
	return a < b
}

// Larger tells whether b < a and not Equals(a, b)
func (o Float) Larger(a, b float64) bool {
	return o.Smaller(b, a)
}

// Sqrt returns the square root of a
func (o Float) Sqrt(a float64) float64 { return math.Sqrt(a) }

// Acos returns the arc cosine of a, clamped to [-1, 1]
func (o Float) Acos(a float64) float64 { return math.Acos(clamp1(a)) }

// EqAngle compares two angle values under tolerance
func (o Float) EqAngle(a, b float64) bool { return o.Equals(a, b) }

// clamp1 clamps v to [-1, 1] to guard Acos against rounding overshoot
func clamp1(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
