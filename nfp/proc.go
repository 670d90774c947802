// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfp

import (
	"github.com/cpmech/gosl/io"

	"github.com/kallaballa/nfporb/field"
	"github.com/kallaballa/nfporb/geom"
)

// NFP is the computed no-fit polygon: the outer loop first, then interior
// loops (interlocks and hole loops); degenerate single-point loops mark
// perfect fits and jigsaw placements
type NFP[T any] []geom.Ring[T]

// proc carries the per-call state of one Generate invocation
type proc[T any] struct {
	k    field.Kernel[T]
	cfg  Config
	epsT T // epsilon lifted into the coordinate field; floor for trimmed slides
}

// newProc allocates the engine state
func newProc[T any](k field.Kernel[T], cfg Config) *proc[T] {
	eps := cfg.Epsilon
	if eps <= 0 {
		eps = field.DefaultEps
	}
	return &proc[T]{k: k, cfg: cfg, epsT: k.FromFloat(eps)}
}

// debugf prints a trace line when verbose tracing is on
func (o *proc[T]) debugf(msg string, prm ...interface{}) {
	if o.cfg.Verbose {
		io.Pforan(msg, prm...)
	}
}

// InNFP tells whether pt touches any ring of the NFP generated so far
func InNFP[T any](k field.Kernel[T], pt geom.Point[T], n NFP[T]) bool {
	for _, r := range n {
		if geom.TouchesRing(k, pt, r) {
			return true
		}
	}
	return false
}
