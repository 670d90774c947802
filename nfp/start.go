// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfp

import (
	"github.com/kallaballa/nfporb/geom"
)

// SearchStartResult reports the outcome of a start-translation search
type SearchStartResult int

const (
	// Fit means translated B coincides vertex-for-vertex with part of rA
	Fit SearchStartResult = iota
	// Found means a legal new starting configuration exists
	Found
	// NotFound means no start remains
	NotFound
)

// String returns the name of the result
func (o SearchStartResult) String() string {
	switch o {
	case Fit:
		return "FIT"
	case Found:
		return "FOUND"
	}
	return "NOT_FOUND"
}

// fitsInto tells whether every vertex of translated lies on a vertex of rA
func (o *proc[T]) fitsInto(translated, rA geom.Ring[T]) bool {
	for i := range translated {
		if geom.FindPoint(o.k, rA, translated[i]) < 0 {
			return false
		}
	}
	return true
}

// classifyInside tells whether translated sits inside rA: a vertex strictly
// within decides inside, a vertex neither within nor touching decides outside
func (o *proc[T]) classifyInside(translated, rA geom.Ring[T]) bool {
	for i := range translated {
		switch geom.PointInRing(o.k, rA, translated[i]) {
		case geom.Inside:
			return true
		case geom.Outside:
			return false
		}
	}
	return false
}

// legalStart tells whether translated is a valid starting configuration for
// the requested side of rA that the NFP does not already represent
func (o *proc[T]) legalStart(translated, rA geom.Ring[T], nfp NFP[T], inside bool) bool {
	k := o.k
	if o.classifyInside(translated, rA) != inside {
		return false
	}
	if geom.RingsOverlap(k, translated, rA) {
		return false
	}
	// a hole search expects B inside the hole ring, so only the reverse
	// containment disqualifies there
	if !inside && geom.RingCoveredBy(k, translated, rA) {
		return false
	}
	if geom.RingCoveredBy(k, rA, translated) {
		return false
	}
	return !InNFP(k, translated[0], nfp)
}

// searchStart finds a translation that places B into a legal starting
// configuration against rA that is not already represented in the NFP.
// Vertices of rA are marked as they are visited so subsequent calls resume
// where the previous ones left off. Whenever a direct vertex-to-vertex
// placement fails, a one-step probe slide along A's next edge is tried before
// moving on
func (o *proc[T]) searchStart(rA geom.Ring[T], rB geom.Ring[T], nfp NFP[T], inside bool) (SearchStartResult, geom.Point[T]) {
	k := o.k
	for i := 0; i+1 < len(rA); i++ {
		if rA[i].Marked {
			continue
		}
		rA[i].Marked = true
		ptA := rA[i]

		for j := range rB {
			testTranslation := geom.Sub(k, ptA, rB[j])
			translated := geom.TranslateRing(k, rB, testTranslation)

			if o.fitsInto(translated, rA) {
				return Fit, testTranslation
			}
			if o.legalStart(translated, rA, nfp, inside) {
				return Found, testTranslation
			}

			// probe: one sub-step along A's next edge before touching in the
			// required manner
			nextPtA := rA[i+1]
			slideVector := TransVector[T]{
				V:     geom.Sub(k, nextPtA, ptA),
				Edge:  geom.Seg(ptA, nextPtA),
				FromA: true,
			}
			trimmed := o.trim(rA, translated, slideVector)
			translated2 := geom.TranslateRing(k, translated, trimmed.V)

			if o.fitsInto(translated2, rA) {
				return Fit, geom.Add(k, trimmed.V, testTranslation)
			}
			if o.legalStart(translated2, rA, nfp, inside) {
				return Found, geom.Add(k, trimmed.V, testTranslation)
			}
		}
	}
	return NotFound, geom.Pt(k.Zero(), k.Zero())
}
