// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfp

import (
	"github.com/kallaballa/nfporb/geom"
)

// SlideResult reports how a slide ended
type SlideResult int

const (
	// Loop means the ring closed back onto its starting reference
	Loop SlideResult = iota
	// NoLoop means no feasible translation remained before closing
	NoLoop
	// NoTranslation means the selector found no usable vector
	NoTranslation
)

// String returns the name of the result
func (o SlideResult) String() string {
	switch o {
	case Loop:
		return "LOOP"
	case NoLoop:
		return "NO_LOOP"
	}
	return "NO_TRANSLATION"
}

// slide drives one closed NFP ring. B is first translated by transB into its
// initial touching configuration; each iteration appends B's reference point
// (its first vertex) to the last NFP ring, finds the touching points, derives
// and selects a feasible translation, trims it to the next contact and moves
// B. The loop ends when the reference returns to its start or, inside a
// concavity or hole, when it reaches the outer NFP ring
func (o *proc[T]) slide(pA geom.Polygon[T], rA geom.Ring[T], rB *geom.Ring[T], nfp *NFP[T], transB geom.Point[T], inside bool) (SlideResult, error) {
	k := o.k
	*rB = geom.TranslateRing(k, *rB, transB)

	referenceStart := (*rB)[0]
	var history History[T]
	cnt := 0

	for {
		o.debugf("#### iteration: %d ####\n", cnt)

		ring := &(*nfp)[len(*nfp)-1]
		*ring = append(*ring, (*rB)[0])

		touchers := FindTouchingPoints(k, rA, *rB)
		o.debugf("touchers: %d\n", len(touchers))
		if len(touchers) == 0 {
			return NoLoop, newErr(ErrNoTouch, "no touching points found during slide (iteration %d)", cnt)
		}

		cands := o.findFeasible(rA, *rB, touchers, inside)
		o.debugf("collected vectors: %d\n", len(cands))
		if len(cands) == 0 {
			return NoLoop, nil
		}

		next := o.selectNext(cands, history)
		if next.Invalid {
			return NoTranslation, nil
		}
		o.debugf("next: %v\n", TvString(k, next))

		trimmed := o.trim(rA, *rB, next)
		o.debugf("trimmed: %v\n", TvString(k, trimmed))
		history = append(history, next)

		*rB = geom.TranslateRing(k, *rB, trimmed.V)

		if geom.PolygonOverlapsRing(k, pA, *rB) {
			return NoLoop, newErr(ErrSlideOverlap, "slide resulted in overlap (iteration %d)", cnt)
		}

		cnt++
		if o.cfg.MaxIterations > 0 && cnt >= o.cfg.MaxIterations {
			return NoLoop, newErr(ErrNumericInstability, "slide exceeded %d iterations", o.cfg.MaxIterations)
		}

		if geom.PointsEqual(k, referenceStart, (*rB)[0]) {
			break
		}
		if inside && geom.TouchesRing(k, (*rB)[0], (*nfp)[0]) {
			break
		}
	}
	return Loop, nil
}
