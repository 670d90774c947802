// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/kallaballa/nfporb/field"

// Location classifies a point against a ring
type Location int

const (
	// Outside means the point is strictly outside the ring
	Outside Location = iota
	// Boundary means the point lies on the ring boundary
	Boundary
	// Inside means the point is strictly inside the ring
	Inside
)

// cross returns the z component of (a x b)
func cross[T any](k field.Kernel[T], a, b Point[T]) T {
	return k.Sub(k.Mul(a.X, b.Y), k.Mul(a.Y, b.X))
}

// dot returns the scalar product of a and b
func dot[T any](k field.Kernel[T], a, b Point[T]) T {
	return k.Add(k.Mul(a.X, b.X), k.Mul(a.Y, b.Y))
}

// minT and maxT select under the kernel order
func minT[T any](k field.Kernel[T], a, b T) T {
	if k.Smaller(b, a) {
		return b
	}
	return a
}

func maxT[T any](k field.Kernel[T], a, b T) T {
	if k.Larger(b, a) {
		return b
	}
	return a
}

// OnSegment tells whether p lies on s, endpoints included
func OnSegment[T any](k field.Kernel[T], s Segment[T], p Point[T]) bool {
	if GetAlignment(k, s, p) != ON {
		return false
	}
	lox, hix := minT(k, s.First.X, s.Second.X), maxT(k, s.First.X, s.Second.X)
	loy, hiy := minT(k, s.First.Y, s.Second.Y), maxT(k, s.First.Y, s.Second.Y)
	if k.Smaller(p.X, lox) || k.Larger(p.X, hix) {
		return false
	}
	if k.Smaller(p.Y, loy) || k.Larger(p.Y, hiy) {
		return false
	}
	return true
}

// PointInRing locates p against ring r. The boundary is detected first with
// tolerance; interior membership uses even-odd ray crossing, so the result
// does not depend on the ring winding
func PointInRing[T any](k field.Kernel[T], r Ring[T], p Point[T]) Location {
	for i := 0; i+1 < len(r); i++ {
		if OnSegment(k, Seg(r[i], r[i+1]), p) {
			return Boundary
		}
	}
	inside := false
	for i := 0; i+1 < len(r); i++ {
		p1, p2 := r[i], r[i+1]
		if k.Larger(p1.Y, p.Y) == k.Larger(p2.Y, p.Y) {
			continue
		}
		// x coordinate where the edge crosses the horizontal through p
		t := k.Div(k.Sub(p.Y, p1.Y), k.Sub(p2.Y, p1.Y))
		x := k.Add(p1.X, k.Mul(t, k.Sub(p2.X, p1.X)))
		if k.Smaller(p.X, x) {
			inside = !inside
		}
	}
	if inside {
		return Inside
	}
	return Outside
}

// TouchesRing tells whether pt lies on the boundary of r
func TouchesRing[T any](k field.Kernel[T], pt Point[T], r Ring[T]) bool {
	if len(r) == 1 {
		return PointsEqual(k, pt, r[0])
	}
	for i := 0; i+1 < len(r); i++ {
		if OnSegment(k, Seg(r[i], r[i+1]), pt) {
			return true
		}
	}
	return false
}

// WithinRing tells whether pt is strictly inside r
func WithinRing[T any](k field.Kernel[T], pt Point[T], r Ring[T]) bool {
	return PointInRing(k, r, pt) == Inside
}

// appendUnique adds p to pts unless an equal point is present
func appendUnique[T any](k field.Kernel[T], pts []Point[T], p Point[T]) []Point[T] {
	for _, q := range pts {
		if PointsEqual(k, q, p) {
			return pts
		}
	}
	return append(pts, p)
}

// SegSegIntersections returns the intersection points of a and b, endpoints
// included. Collinear overlaps contribute the endpoints of the shared part
func SegSegIntersections[T any](k field.Kernel[T], a, b Segment[T]) (pts []Point[T]) {
	d1 := Direction(k, a)
	d2 := Direction(k, b)
	zero := k.Zero()

	// degenerate segments reduce to point-on-segment tests
	if k.Equals(dot(k, d1, d1), zero) {
		if OnSegment(k, b, a.First) {
			pts = append(pts, a.First)
		}
		return
	}
	if k.Equals(dot(k, d2, d2), zero) {
		if OnSegment(k, a, b.First) {
			pts = append(pts, b.First)
		}
		return
	}

	w := Sub(k, b.First, a.First)
	denom := cross(k, d1, d2)
	if !k.Equals(denom, zero) {
		t := k.Div(cross(k, w, d2), denom)
		u := k.Div(cross(k, w, d1), denom)
		one := k.FromFloat(1)
		if !k.Smaller(t, zero) && !k.Larger(t, one) && !k.Smaller(u, zero) && !k.Larger(u, one) {
			pi := Add(k, a.First, Point[T]{X: k.Mul(t, d1.X), Y: k.Mul(t, d1.Y)})
			pts = append(pts, pi)
		}
		return
	}

	// parallel: only collinear segments can share points
	if !k.Equals(cross(k, w, d1), zero) {
		return
	}
	den := dot(k, d1, d1)
	t0 := k.Div(dot(k, w, d1), den)
	t1 := k.Div(dot(k, Sub(k, b.Second, a.First), d1), den)
	lo, hi := minT(k, t0, t1), maxT(k, t0, t1)
	lo = maxT(k, lo, zero)
	hi = minT(k, hi, k.FromFloat(1))
	if k.Larger(lo, hi) {
		return
	}
	pl := Add(k, a.First, Point[T]{X: k.Mul(lo, d1.X), Y: k.Mul(lo, d1.Y)})
	ph := Add(k, a.First, Point[T]{X: k.Mul(hi, d1.X), Y: k.Mul(hi, d1.Y)})
	pts = appendUnique(k, pts, pl)
	pts = appendUnique(k, pts, ph)
	return
}

// properCrossing tells whether a and b cross at a point strictly interior to
// both segments
func properCrossing[T any](k field.Kernel[T], a, b Segment[T]) bool {
	d1 := Direction(k, a)
	d2 := Direction(k, b)
	zero := k.Zero()
	denom := cross(k, d1, d2)
	if k.Equals(denom, zero) {
		return false
	}
	w := Sub(k, b.First, a.First)
	t := k.Div(cross(k, w, d2), denom)
	u := k.Div(cross(k, w, d1), denom)
	one := k.FromFloat(1)
	return k.Smaller(zero, t) && k.Smaller(t, one) && k.Smaller(zero, u) && k.Smaller(u, one)
}

// IntersectRingSegment returns all intersection points of segment s with the
// edges of r, duplicates removed
func IntersectRingSegment[T any](k field.Kernel[T], r Ring[T], s Segment[T]) (pts []Point[T]) {
	for i := 0; i+1 < len(r); i++ {
		for _, p := range SegSegIntersections(k, Seg(r[i], r[i+1]), s) {
			pts = appendUnique(k, pts, p)
		}
	}
	return
}

// RingsIntersect tells whether the boundaries of a and b share any point
func RingsIntersect[T any](k field.Kernel[T], a, b Ring[T]) bool {
	for i := 0; i+1 < len(a); i++ {
		sa := Seg(a[i], a[i+1])
		for j := 0; j+1 < len(b); j++ {
			if len(SegSegIntersections(k, sa, Seg(b[j], b[j+1]))) > 0 {
				return true
			}
		}
	}
	return false
}

// midpoints yields the edge midpoints of r
func midpoints[T any](k field.Kernel[T], r Ring[T]) (mids []Point[T]) {
	half := k.FromFloat(0.5)
	for i := 0; i+1 < len(r); i++ {
		mids = append(mids, Point[T]{
			X: k.Mul(k.Add(r[i].X, r[i+1].X), half),
			Y: k.Mul(k.Add(r[i].Y, r[i+1].Y), half),
		})
	}
	return
}

// anyStrictlyInside tells whether any vertex or edge midpoint of probe lies
// strictly inside ring
func anyStrictlyInside[T any](k field.Kernel[T], probe, ring Ring[T]) bool {
	for i := 0; i+1 < len(probe); i++ {
		if PointInRing(k, ring, probe[i]) == Inside {
			return true
		}
	}
	for _, m := range midpoints(k, probe) {
		if PointInRing(k, ring, m) == Inside {
			return true
		}
	}
	return false
}

// RingsOverlap tells whether the interiors of a and b intersect while
// neither ring covers the other
func RingsOverlap[T any](k field.Kernel[T], a, b Ring[T]) bool {
	for i := 0; i+1 < len(a); i++ {
		sa := Seg(a[i], a[i+1])
		for j := 0; j+1 < len(b); j++ {
			if properCrossing(k, sa, Seg(b[j], b[j+1])) {
				return true
			}
		}
	}
	// without boundary crossings the interiors can only intersect when one
	// ring reaches inside the other; full containment is coverage, not overlap
	return anyStrictlyInside(k, a, b) && anyStrictlyInside(k, b, a)
}

// RingCoveredBy tells whether every point of inner lies inside or on outer
func RingCoveredBy[T any](k field.Kernel[T], inner, outer Ring[T]) bool {
	for i := 0; i+1 < len(inner); i++ {
		sa := Seg(inner[i], inner[i+1])
		for j := 0; j+1 < len(outer); j++ {
			if properCrossing(k, sa, Seg(outer[j], outer[j+1])) {
				return false
			}
		}
	}
	for i := 0; i+1 < len(inner); i++ {
		if PointInRing(k, outer, inner[i]) == Outside {
			return false
		}
	}
	for _, m := range midpoints(k, inner) {
		if PointInRing(k, outer, m) == Outside {
			return false
		}
	}
	return true
}

// WithinPolygon tells whether pt is strictly inside p: inside the outer ring,
// outside every hole and on no boundary
func WithinPolygon[T any](k field.Kernel[T], pt Point[T], p Polygon[T]) bool {
	if PointInRing(k, p.Outer, pt) != Inside {
		return false
	}
	for _, h := range p.Holes {
		if PointInRing(k, h, pt) != Outside {
			return false
		}
	}
	return true
}

// PolygonOverlapsRing tells whether the interior of polygon p intersects the
// interior of ring r. Used to detect penetration after a slide step
func PolygonOverlapsRing[T any](k field.Kernel[T], p Polygon[T], r Ring[T]) bool {
	rings := append([]Ring[T]{p.Outer}, p.Holes...)
	for _, pr := range rings {
		for i := 0; i+1 < len(pr); i++ {
			sa := Seg(pr[i], pr[i+1])
			for j := 0; j+1 < len(r); j++ {
				if properCrossing(k, sa, Seg(r[j], r[j+1])) {
					return true
				}
			}
		}
	}
	for i := 0; i+1 < len(r); i++ {
		if WithinPolygon(k, r[i], p) {
			return true
		}
	}
	for _, m := range midpoints(k, r) {
		if WithinPolygon(k, m, p) {
			return true
		}
	}
	for i := 0; i+1 < len(p.Outer); i++ {
		if PointInRing(k, r, p.Outer[i]) == Inside {
			return true
		}
	}
	return false
}
