// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the planar primitives of the orbiting engine:
// points, segments, rings and polygons over an abstract coordinate field,
// plus the predicates the slide algorithm is built on
package geom

import (
	"github.com/cpmech/gosl/io"

	"github.com/kallaballa/nfporb/field"
)

// Point holds a pair of coordinates. Marked is scratch state used by the
// start-translation search and does not take part in equality
type Point[T any] struct {
	X, Y   T
	Marked bool
}

// Pt returns a new point
func Pt[T any](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// PtF returns a new point from float64 coordinates
func PtF[T any](k field.Kernel[T], x, y float64) Point[T] {
	return Point[T]{X: k.FromFloat(x), Y: k.FromFloat(y)}
}

// Add returns a + b
func Add[T any](k field.Kernel[T], a, b Point[T]) Point[T] {
	return Point[T]{X: k.Add(a.X, b.X), Y: k.Add(a.Y, b.Y)}
}

// Sub returns a - b
func Sub[T any](k field.Kernel[T], a, b Point[T]) Point[T] {
	return Point[T]{X: k.Sub(a.X, b.X), Y: k.Sub(a.Y, b.Y)}
}

// PointsEqual compares two points under tolerance
func PointsEqual[T any](k field.Kernel[T], a, b Point[T]) bool {
	return k.Equals(a.X, b.X) && k.Equals(a.Y, b.Y)
}

// PointSmaller implements the lexicographic order on points under tolerance
func PointSmaller[T any](k field.Kernel[T], a, b Point[T]) bool {
	return k.Smaller(a.X, b.X) || (k.Equals(a.X, b.X) && k.Smaller(a.Y, b.Y))
}

// Flip returns the vector scaled by -1
func Flip[T any](k field.Kernel[T], v Point[T]) Point[T] {
	return Point[T]{X: k.Neg(v.X), Y: k.Neg(v.Y)}
}

// Normalize returns the unit vector of v, or the zero vector if v has zero
// length. The length goes through the kernel's square-root bridge
func Normalize[T any](k field.Kernel[T], v Point[T]) Point[T] {
	len2 := k.Add(k.Mul(v.X, v.X), k.Mul(v.Y, v.Y))
	l := k.Sqrt(len2)
	if k.Equals(l, k.Zero()) {
		return Point[T]{X: k.Zero(), Y: k.Zero()}
	}
	return Point[T]{X: k.Div(v.X, l), Y: k.Div(v.Y, l)}
}

// PointString formats a point for debugging
func PointString[T any](k field.Kernel[T], p Point[T]) string {
	return io.Sf("{%g,%g}", k.Float(p.X), k.Float(p.Y))
}
