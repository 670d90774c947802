// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/kallaballa/nfporb/field"
)

// validateRing checks closure, vertex count and self-intersection of r
func validateRing[T any](k field.Kernel[T], r Ring[T], name string) error {
	if len(r) < 4 {
		return chk.Err("%s is degenerate: %d vertices", name, len(r))
	}
	if !PointsEqual(k, r[0], r[len(r)-1]) {
		return chk.Err("%s is not closed", name)
	}
	n := len(r) - 1
	for i := 0; i < n; i++ {
		if PointsEqual(k, r[i], r[(i+1)%n]) {
			return chk.Err("%s has a zero-length edge at vertex %d", name, i)
		}
	}
	for i := 0; i < n; i++ {
		si := Seg(r[i], r[i+1])
		for j := i + 1; j < n; j++ {
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue // adjacent edges share a vertex
			}
			if properCrossing(k, si, Seg(r[j], r[j+1])) {
				return chk.Err("%s self-intersects between edges %d and %d", name, i, j)
			}
		}
	}
	return nil
}

// ValidatePolygon checks that p is a simple polygon: rings closed with at
// least three distinct vertices, no self-intersections, and every hole
// contained in the outer ring
func ValidatePolygon[T any](k field.Kernel[T], p Polygon[T]) error {
	if err := validateRing(k, p.Outer, "outer ring"); err != nil {
		return err
	}
	for i, h := range p.Holes {
		if err := validateRing(k, h, io.Sf("hole %d", i)); err != nil {
			return err
		}
		if !RingCoveredBy(k, h, p.Outer) {
			return chk.Err("hole %d is not contained in the outer ring", i)
		}
	}
	return nil
}
