// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfp

import (
	"github.com/kallaballa/nfporb/geom"
)

// touchEdgePair holds two half-open edges incident to a touch point; A is an
// edge emanating along A's boundary, B along B's boundary. The first point of
// each edge is the touch point itself
type touchEdgePair[T any] struct {
	A, B geom.Segment[T]
}

// insertVector adds tv unless an equal vector is present
func (o *proc[T]) insertVector(tvs []TransVector[T], tv TransVector[T]) []TransVector[T] {
	for _, t := range tvs {
		if TvEqual(o.k, t, tv) {
			return tvs
		}
	}
	return append(tvs, tv)
}

// findFeasible derives the feasible translation vectors for the given touch
// configuration. Each touching point contributes candidate vectors and
// touch-edge pairs; the pairs then filter out candidates that would
// immediately drive B into A
func (o *proc[T]) findFeasible(ringA, ringB geom.Ring[T], touchers []TouchingPoint, inside bool) []TransVector[T] {
	k := o.k
	var potential []TransVector[T]
	var touchEdges []touchEdgePair[T]

	for i := range touchers {
		ringA[touchers[i].A].Marked = true
		vertexA := ringA[touchers[i].A]

		prevAindex := touchers[i].A - 1
		nextAindex := touchers[i].A + 1
		if prevAindex < 0 {
			prevAindex = len(ringA) - 2 // loop
		}
		if nextAindex >= len(ringA) {
			nextAindex = 1 // loop
		}
		prevA := ringA[prevAindex]
		nextA := ringA[nextAindex]

		vertexB := ringB[touchers[i].B]

		prevBindex := touchers[i].B - 1
		nextBindex := touchers[i].B + 1
		if prevBindex < 0 {
			prevBindex = len(ringB) - 2 // loop
		}
		if nextBindex >= len(ringB) {
			nextBindex = 1 // loop
		}
		prevB := ringB[prevBindex]
		nextB := ringB[nextBindex]

		switch touchers[i].Kind {
		case Vertex:
			a1 := geom.Seg(vertexA, nextA)
			a2 := geom.Seg(vertexA, prevA)
			b1 := geom.Seg(vertexB, nextB)
			b2 := geom.Seg(vertexB, prevB)

			touchEdges = append(touchEdges,
				touchEdgePair[T]{a1, b1},
				touchEdgePair[T]{a1, b2},
				touchEdgePair[T]{a2, b1},
				touchEdgePair[T]{a2, b2},
			)

			// b1's far end against a1: left means B can retreat along b1;
			// otherwise slide forwards along a1
			switch geom.GetAlignment(k, a1, b1.Second) {
			case geom.LEFT:
				potential = o.insertVector(potential, TransVector[T]{
					V: geom.Sub(k, b1.First, b1.Second), Edge: b1, FromA: false})
			default:
				potential = o.insertVector(potential, TransVector[T]{
					V: geom.Sub(k, a1.Second, a1.First), Edge: a1, FromA: true})
			}

			// b2's far end against a1: left of a1 leaves no feasible slide
			switch geom.GetAlignment(k, a1, b2.Second) {
			case geom.LEFT:
				// not feasible
			default:
				potential = o.insertVector(potential, TransVector[T]{
					V: geom.Sub(k, a1.Second, a1.First), Edge: a1, FromA: true})
			}

			// b1's far end against a2: retreat along b1 on either side
			potential = o.insertVector(potential, TransVector[T]{
				V: geom.Sub(k, b1.First, b1.Second), Edge: b1, FromA: false})

		case BOnA:
			// vertexB lies on A's edge (prevA, vertexA)
			ea1 := geom.Seg(vertexB, vertexA)
			ea2 := geom.Seg(vertexB, prevA)
			eb1 := geom.Seg(vertexB, prevB)
			eb2 := geom.Seg(vertexB, nextB)

			touchEdges = append(touchEdges,
				touchEdgePair[T]{ea1, eb1},
				touchEdgePair[T]{ea1, eb2},
				touchEdgePair[T]{ea2, eb1},
				touchEdgePair[T]{ea2, eb2},
			)

			potential = o.insertVector(potential, TransVector[T]{
				V: geom.Sub(k, vertexA, vertexB), Edge: geom.Seg(vertexB, vertexA), FromA: true})

		case AOnB:
			// vertexA lies on B's edge (prevB, vertexB)
			ea1 := geom.Seg(vertexA, prevA)
			ea2 := geom.Seg(vertexA, nextA)
			eb1 := geom.Seg(vertexA, vertexB)
			eb2 := geom.Seg(vertexA, prevB)

			touchEdges = append(touchEdges,
				touchEdgePair[T]{ea1, eb1},
				touchEdgePair[T]{ea2, eb1},
				touchEdgePair[T]{ea1, eb2},
				touchEdgePair[T]{ea2, eb2},
			)

			potential = o.insertVector(potential, TransVector[T]{
				V: geom.Sub(k, vertexA, vertexB), Edge: geom.Seg(vertexA, vertexB), FromA: false})
		}
	}

	// discard immediately intersecting translations
	var vectors []TransVector[T]
	origin := geom.Pt(k.Zero(), k.Zero())
	for _, v := range potential {
		discarded := false
		nE := geom.Normalize(k, geom.Direction(k, v.Edge))
		nV := geom.Normalize(k, v.V)
		alongEdge := geom.PointsEqual(k, nE, nV)
		for _, sp := range touchEdges {
			nF := geom.Normalize(k, geom.Direction(k, sp.A))
			nS := geom.Normalize(k, geom.Direction(k, sp.B))
			al1 := geom.GetAlignment(k, geom.Seg(origin, nE), nF)
			al2 := geom.GetAlignment(k, geom.Seg(origin, nE), nS)
			if al1 != al2 || al1 == geom.ON {
				continue
			}

			// both neighbour edges lie on the same side of the translation
			df := geom.InnerAngle(k, origin, nE, nF)
			ds := geom.InnerAngle(k, origin, nE, nS)

			if k.EqAngle(df, ds) {
				// co-linear neighbours: probe the trimmed slide and keep the
				// vector only if it lands in a legal touching configuration
				trimmed := o.trim(ringA, ringB, v)
				moved := geom.TranslateRing(k, ringB, trimmed.V)
				legal := geom.RingsIntersect(k, ringA, moved) &&
					!geom.RingsOverlap(k, ringA, moved) &&
					(inside || !geom.RingCoveredBy(k, moved, ringA)) &&
					!geom.RingCoveredBy(k, ringA, moved)
				if !legal {
					discarded = true
					break
				}
			} else if alongEdge {
				// sliding into the touch
				if ds > df && !k.EqAngle(df, 0) {
					discarded = true
					break
				}
			} else {
				// sliding out of the touch
				if ds < df && !k.EqAngle(ds, 0) {
					discarded = true
					break
				}
			}
		}
		if !discarded {
			vectors = append(vectors, v)
		}
	}
	return vectors
}
