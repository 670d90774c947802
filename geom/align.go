// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/kallaballa/nfporb/field"

// Alignment classifies a point against an oriented segment
type Alignment int

const (
	// LEFT means the point lies left of the segment direction
	LEFT Alignment = iota
	// RIGHT means the point lies right of the segment direction
	RIGHT
	// ON means the point is co-linear with the segment
	ON
)

// String returns the name of the alignment
func (o Alignment) String() string {
	switch o {
	case LEFT:
		return "LEFT"
	case RIGHT:
		return "RIGHT"
	}
	return "ON"
}

// GetAlignment returns the side of seg the point pt lies on, by the sign of
// the cross product of seg's direction with (pt - seg.First)
func GetAlignment[T any](k field.Kernel[T], seg Segment[T], pt Point[T]) Alignment {
	res := k.Sub(
		k.Mul(k.Sub(seg.Second.X, seg.First.X), k.Sub(pt.Y, seg.First.Y)),
		k.Mul(k.Sub(seg.Second.Y, seg.First.Y), k.Sub(pt.X, seg.First.X)),
	)
	if k.Equals(res, k.Zero()) {
		return ON
	}
	if k.Larger(res, k.Zero()) {
		return LEFT
	}
	return RIGHT
}

// InnerAngle returns the angle at joint between the rays towards end1 and
// end2, in radians through the arc-cosine bridge. Zero-length rays yield 0
func InnerAngle[T any](k field.Kernel[T], joint, end1, end2 Point[T]) float64 {
	dx21 := k.Sub(end1.X, joint.X)
	dx31 := k.Sub(end2.X, joint.X)
	dy21 := k.Sub(end1.Y, joint.Y)
	dy31 := k.Sub(end2.Y, joint.Y)
	m12 := k.Sqrt(k.Add(k.Mul(dx21, dx21), k.Mul(dy21, dy21)))
	m13 := k.Sqrt(k.Add(k.Mul(dx31, dx31), k.Mul(dy31, dy31)))
	if k.Equals(m12, k.Zero()) || k.Equals(m13, k.Zero()) {
		return 0
	}
	dot := k.Add(k.Mul(dx21, dx31), k.Mul(dy21, dy31))
	return k.Acos(k.Div(dot, k.Mul(m12, m13)))
}
