// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfp

import (
	"github.com/kallaballa/nfporb/field"
	"github.com/kallaballa/nfporb/geom"
)

// collapsePatterns removes consecutive repetitions of period-i point patterns
// from ring, for every window size up to half the ring. Numerical jitter
// produces short forward-back oscillations that do not correspond to NFP
// structure. Reports whether the ring changed
func collapsePatterns[T any](k field.Kernel[T], ring geom.Ring[T]) (geom.Ring[T], bool) {
	startLen := len(ring)
	r := ring
	for i := 1; i <= len(r)/2; i++ {
		length := len(r)
		counter := 0
		j := i
		for ; j < length; j++ {
			if geom.PointsEqual(k, r[j], r[j-i]) {
				counter++
			} else {
				counter = 0
			}
			if counter == i {
				// a full extra occurrence of the period-i pattern: drop it
				counter = 0
				copy(r[j-i:], r[j:length])
				j -= i
				length -= i
			}
		}
		r = r[:j]
	}
	return r, len(r) != startLen
}

// collapseBacktracks removes forward-back excursions p,q,p, keeping a single
// p. Reports whether the ring changed
func collapseBacktracks[T any](k field.Kernel[T], ring geom.Ring[T]) (geom.Ring[T], bool) {
	startLen := len(ring)
	r := ring
	for j := 0; j+2 < len(r); {
		if geom.PointsEqual(k, r[j], r[j+2]) {
			r = append(r[:j+1], r[j+3:]...)
			if j > 0 {
				j--
			}
		} else {
			j++
		}
	}
	return r, len(r) != startLen
}

// compactDuplicates deletes runs of equal consecutive points, keeping one
// representative each
func compactDuplicates[T any](k field.Kernel[T], ring geom.Ring[T]) geom.Ring[T] {
	if len(ring) == 0 {
		return ring
	}
	out := ring[:1]
	for i := 1; i < len(ring); i++ {
		if !geom.PointsEqual(k, ring[i], out[len(out)-1]) {
			out = append(out, ring[i])
		}
	}
	return out
}

// CleanRing removes oscillation patterns and consecutive duplicates from an
// output ring. The pattern passes are iterated until they report no change
func CleanRing[T any](k field.Kernel[T], ring geom.Ring[T]) geom.Ring[T] {
	r := ring
	for {
		var c1, c2 bool
		r, c1 = collapsePatterns(k, r)
		r, c2 = collapseBacktracks(k, r)
		if !c1 && !c2 {
			break
		}
	}
	return compactDuplicates(k, r)
}
