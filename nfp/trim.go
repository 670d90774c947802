// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfp

import "github.com/kallaballa/nfporb/geom"

// trim shortens tv so that applying it brings A and B into new boundary
// contact without penetration. Each vertex of A is projected backwards along
// tv against B's boundary, and each vertex of B forwards against A's
// boundary; the shortest projection that is longer than epsilon wins.
// Projections that merely touch the opposite ring at the current contact are
// skipped, and intersection points coincident with ring vertices are excluded
// so the current contact is not mistaken for a future one
func (o *proc[T]) trim(rA, rB geom.Ring[T], tv TransVector[T]) TransVector[T] {
	k := o.k
	shortest := geom.Length(k, tv.Edge)
	trimmed := tv

	for _, ptA := range rA {
		proj := geom.Seg(ptA, geom.Sub(k, ptA, tv.V))
		inters := geom.IntersectRingSegment(k, rB, proj)
		if len(inters) < 2 {
			if geom.FindPoint(k, rB, ptA) >= 0 {
				continue
			}
		}
		for _, pi := range inters {
			if geom.FindPoint(k, rB, pi) >= 0 {
				continue
			}
			segi := geom.Seg(ptA, pi)
			l := geom.Length(k, segi)
			if k.Smaller(o.epsT, l) && k.Smaller(l, shortest) {
				trimmed.V = geom.Sub(k, ptA, pi)
				trimmed.Edge = segi
				shortest = l
			}
		}
	}

	for _, ptB := range rB {
		proj := geom.Seg(ptB, geom.Add(k, ptB, tv.V))
		inters := geom.IntersectRingSegment(k, rA, proj)
		if len(inters) < 2 {
			if geom.FindPoint(k, rA, ptB) >= 0 {
				continue
			}
		}
		for _, pi := range inters {
			if geom.FindPoint(k, rA, pi) >= 0 {
				continue
			}
			segi := geom.Seg(ptB, pi)
			l := geom.Length(k, segi)
			if k.Smaller(o.epsT, l) && k.Smaller(l, shortest) {
				trimmed.V = geom.Sub(k, pi, ptB)
				trimmed.Edge = segi
				shortest = l
			}
		}
	}
	return trimmed
}
