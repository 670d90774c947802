// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements the ordered field of coordinates used by the
// orbiting engine. All comparisons of coordinates go through a Kernel;
// raw == on floating values is forbidden outside this package.
package field

// DefaultEps is the absolute-plus-relative tolerance of the floating backend
const DefaultEps = 1e-8

// Kernel defines the operations of an ordered coordinate field. Sqrt and Acos
// bridge to a floating approximation; their results are never compared for
// equality without tolerance
type Kernel[T any] interface {

	// FromFloat converts a float64 into a coordinate
	FromFloat(v float64) T

	// Float converts a coordinate into a float64
	Float(a T) float64

	// Zero returns the zero coordinate
	Zero() T

	// Add returns a + b
	Add(a, b T) T

	// Sub returns a - b
	Sub(a, b T) T

	// Mul returns a * b
	Mul(a, b T) T

	// Div returns a / b
	Div(a, b T) T

	// Neg returns -a
	Neg(a T) T

	// Equals tells whether a == b under the backend's notion of equality
	Equals(a, b T) bool

	// Smaller tells whether a < b and not Equals(a, b)
	Smaller(a, b T) bool

	// Larger tells whether b < a and not Equals(a, b)
	Larger(a, b T) bool

	// Sqrt returns the square root of a, bridged through float64
	Sqrt(a T) T

	// Acos returns the arc cosine of a in radians, bridged through float64.
	// The argument is clamped to [-1, 1] first
	Acos(a T) float64

	// EqAngle compares two bridged angle values under tolerance
	EqAngle(a, b float64) bool
}
