// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/cpmech/gosl/chk"

	"github.com/kallaballa/nfporb/field"
)

// RemoveColinearRing drops vertices of r that are co-linear with their two
// neighbours, whether or not they lie between them. The result is re-closed
func RemoveColinearRing[T any](k field.Kernel[T], r Ring[T]) Ring[T] {
	if len(r) < 3 {
		chk.Panic("cannot remove co-linear points of degenerate ring with %d vertices", len(r))
	}

	// vertex indices without the repeated closing vertex
	n := len(r) - 1
	out := make(Ring[T], 0, len(r))
	for i := 0; i < n; i++ {
		prev := r[(i+n-1)%n]
		next := r[(i+1)%n]
		if GetAlignment(k, Seg(prev, next), r[i]) != ON {
			out = append(out, r[i])
		}
	}
	if len(out) > 0 {
		out = append(out, out[0])
	}
	return out
}

// RemoveColinear drops co-linear vertices from all rings of p and restores
// the winding convention
func RemoveColinear[T any](k field.Kernel[T], p *Polygon[T]) {
	p.Outer = RemoveColinearRing(k, p.Outer)
	for i := range p.Holes {
		p.Holes[i] = RemoveColinearRing(k, p.Holes[i])
	}
	Correct(k, p)
}
