// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/cpmech/gosl/io"

	"github.com/kallaballa/nfporb/field"
)

// Segment holds a directed pair of points
type Segment[T any] struct {
	First, Second Point[T]
}

// Seg returns a new segment
func Seg[T any](a, b Point[T]) Segment[T] {
	return Segment[T]{First: a, Second: b}
}

// SegmentsEqual compares two segments, insensitive to orientation:
// {p,q} equals {q,p}
func SegmentsEqual[T any](k field.Kernel[T], a, b Segment[T]) bool {
	if PointsEqual(k, a.First, b.First) && PointsEqual(k, a.Second, b.Second) {
		return true
	}
	return PointsEqual(k, a.First, b.Second) && PointsEqual(k, a.Second, b.First)
}

// SegmentSmaller implements the strict lexicographic order on segments
func SegmentSmaller[T any](k field.Kernel[T], a, b Segment[T]) bool {
	return PointSmaller(k, a.First, b.First) ||
		(PointsEqual(k, a.First, b.First) && PointSmaller(k, a.Second, b.Second))
}

// Direction returns Second - First
func Direction[T any](k field.Kernel[T], s Segment[T]) Point[T] {
	return Sub(k, s.Second, s.First)
}

// Length returns the Euclidean length of s through the square-root bridge
func Length[T any](k field.Kernel[T], s Segment[T]) T {
	dx := k.Sub(s.Second.X, s.First.X)
	dy := k.Sub(s.Second.Y, s.First.Y)
	return k.Sqrt(k.Add(k.Mul(dx, dx), k.Mul(dy, dy)))
}

// VecLength returns the length of the vector from the origin to v
func VecLength[T any](k field.Kernel[T], v Point[T]) T {
	return k.Sqrt(k.Add(k.Mul(v.X, v.X), k.Mul(v.Y, v.Y)))
}

// SegmentString formats a segment for debugging
func SegmentString[T any](k field.Kernel[T], s Segment[T]) string {
	return io.Sf("{%v,%v}", PointString(k, s.First), PointString(k, s.Second))
}
