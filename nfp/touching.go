// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfp

import (
	"github.com/kallaballa/nfporb/field"
	"github.com/kallaballa/nfporb/geom"
)

// TouchKind tags the contact flavour of a touching point
type TouchKind int

const (
	// Vertex marks a vertex of A coinciding with a vertex of B
	Vertex TouchKind = iota
	// AOnB marks a vertex of A lying on an edge of B
	AOnB
	// BOnA marks a vertex of B lying on an edge of A
	BOnA
)

// TouchingPoint records one contact between the boundaries of A and B.
// A indexes the ringA vertex involved; B the ringB vertex. For AOnB the
// touching edge of B is (ringB[B-1], ringB[B]); for BOnA the touching edge
// of A is (ringA[A-1], ringA[A])
type TouchingPoint struct {
	Kind TouchKind
	A, B int
}

// FindTouchingPoints enumerates the contacts between ringA and ringB:
// vertex-vertex, vertex of B on an edge of A, and vertex of A on an edge
// of B. One entry is emitted per contact; callers must not rely on the order
func FindTouchingPoints[T any](k field.Kernel[T], ringA, ringB geom.Ring[T]) (touchers []TouchingPoint) {
	for i := 0; i+1 < len(ringA); i++ {
		nextI := i + 1
		for j := 0; j+1 < len(ringB); j++ {
			nextJ := j + 1
			if geom.PointsEqual(k, ringA[i], ringB[j]) {
				touchers = append(touchers, TouchingPoint{Vertex, i, j})
			} else if !geom.PointsEqual(k, ringA[nextI], ringB[j]) &&
				geom.OnSegment(k, geom.Seg(ringA[i], ringA[nextI]), ringB[j]) {
				touchers = append(touchers, TouchingPoint{BOnA, nextI, j})
			} else if !geom.PointsEqual(k, ringB[nextJ], ringA[i]) &&
				geom.OnSegment(k, geom.Seg(ringB[j], ringB[nextJ]), ringA[i]) {
				touchers = append(touchers, TouchingPoint{AOnB, i, nextJ})
			}
		}
	}
	return
}
