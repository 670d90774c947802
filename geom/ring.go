// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/kallaballa/nfporb/field"

// Ring is a closed sequence of points with first == last. The winding is
// fixed: outer rings counter-clockwise, holes clockwise
type Ring[T any] []Point[T]

// Polygon is an outer ring plus zero or more holes
type Polygon[T any] struct {
	Outer Ring[T]
	Holes []Ring[T]
}

// CloneRing returns a deep copy of r
func CloneRing[T any](r Ring[T]) Ring[T] {
	c := make(Ring[T], len(r))
	copy(c, r)
	return c
}

// ClonePolygon returns a deep copy of p
func ClonePolygon[T any](p Polygon[T]) Polygon[T] {
	c := Polygon[T]{Outer: CloneRing(p.Outer)}
	for _, h := range p.Holes {
		c.Holes = append(c.Holes, CloneRing(h))
	}
	return c
}

// TranslateRing returns r moved by vector t
func TranslateRing[T any](k field.Kernel[T], r Ring[T], t Point[T]) Ring[T] {
	out := make(Ring[T], len(r))
	for i, p := range r {
		out[i] = Add(k, p, t)
		out[i].Marked = p.Marked
	}
	return out
}

// TranslatePolygon returns p moved by vector t
func TranslatePolygon[T any](k field.Kernel[T], p Polygon[T], t Point[T]) Polygon[T] {
	out := Polygon[T]{Outer: TranslateRing(k, p.Outer, t)}
	for _, h := range p.Holes {
		out.Holes = append(out.Holes, TranslateRing(k, h, t))
	}
	return out
}

// SignedArea returns twice the signed area of r; positive for
// counter-clockwise winding
func SignedArea[T any](k field.Kernel[T], r Ring[T]) T {
	sum := k.Zero()
	for i := 0; i+1 < len(r); i++ {
		cross := k.Sub(k.Mul(r[i].X, r[i+1].Y), k.Mul(r[i+1].X, r[i].Y))
		sum = k.Add(sum, cross)
	}
	return sum
}

// reverse flips the orientation of r in place
func reverse[T any](r Ring[T]) {
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}

// CorrectRing closes r if needed and enforces the given winding
// (ccw true for outer rings, false for holes)
func CorrectRing[T any](k field.Kernel[T], r Ring[T], ccw bool) Ring[T] {
	if len(r) == 0 {
		return r
	}
	if !PointsEqual(k, r[0], r[len(r)-1]) {
		r = append(r, r[0])
	}
	a := SignedArea(k, r)
	if ccw && k.Smaller(a, k.Zero()) {
		reverse(r)
	}
	if !ccw && k.Larger(a, k.Zero()) {
		reverse(r)
	}
	return r
}

// Correct closes all rings of p and enforces the winding convention
func Correct[T any](k field.Kernel[T], p *Polygon[T]) {
	p.Outer = CorrectRing(k, p.Outer, true)
	for i := range p.Holes {
		p.Holes[i] = CorrectRing(k, p.Holes[i], false)
	}
}

// FindPoint returns the index of pt in ring, or -1 if absent
func FindPoint[T any](k field.Kernel[T], ring Ring[T], pt Point[T]) int {
	for i := range ring {
		if PointsEqual(k, ring[i], pt) {
			return i
		}
	}
	return -1
}
