// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfp

import (
	"github.com/cpmech/gosl/io"

	"github.com/kallaballa/nfporb/field"
	"github.com/kallaballa/nfporb/geom"
)

// TransVector is a candidate translation of B. V is the translation to apply;
// Edge is the directed edge it originates from; FromA distinguishes sliding
// against an edge of A from sliding along an edge of B. Invalid flags the
// sentinel returned when no translation is possible
type TransVector[T any] struct {
	V       geom.Point[T]
	Edge    geom.Segment[T]
	FromA   bool
	Invalid bool
}

// TvEqual compares two vectors structurally on (V, Edge)
func TvEqual[T any](k field.Kernel[T], a, b TransVector[T]) bool {
	return geom.PointsEqual(k, a.V, b.V) && geom.SegmentsEqual(k, a.Edge, b.Edge)
}

// TvString formats a vector for debugging
func TvString[T any](k field.Kernel[T], tv TransVector[T]) string {
	if tv.Invalid {
		return "{invalid}"
	}
	return io.Sf("{%v -> %v fromA=%v}", geom.SegmentString(k, tv.Edge), geom.PointString(k, tv.V), tv.FromA)
}

// invalidVector returns the sentinel
func invalidVector[T any]() TransVector[T] {
	return TransVector[T]{Invalid: true}
}
