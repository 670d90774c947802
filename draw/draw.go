// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package draw dumps polygons, NFP rings and touch edges as SVG files for
// debugging. All writers are no-ops unless the NFP_DEBUG environment
// variable is set
package draw

import (
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/cpmech/gosl/io"

	"github.com/kallaballa/nfporb/field"
	"github.com/kallaballa/nfporb/geom"
	"github.com/kallaballa/nfporb/nfp"
)

// canvas size in pixels
const (
	width  = 800
	height = 800
	margin = 20
)

// Enabled tells whether debug dumps are switched on
func Enabled() bool {
	return os.Getenv("NFP_DEBUG") != ""
}

// bounds accumulates the extent of all drawn coordinates
type bounds struct {
	minx, miny, maxx, maxy float64
	any                    bool
}

func (o *bounds) add(x, y float64) {
	if !o.any {
		o.minx, o.maxx, o.miny, o.maxy = x, x, y, y
		o.any = true
		return
	}
	if x < o.minx {
		o.minx = x
	}
	if x > o.maxx {
		o.maxx = x
	}
	if y < o.miny {
		o.miny = y
	}
	if y > o.maxy {
		o.maxy = y
	}
}

// scale maps world coordinates to SVG pixels, flipping y
func (o *bounds) scale(x, y float64) (int, int) {
	dx := o.maxx - o.minx
	dy := o.maxy - o.miny
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	sx := float64(width-2*margin) / dx
	sy := float64(height-2*margin) / dy
	if sy < sx {
		sx = sy
	}
	px := margin + int((x-o.minx)*sx)
	py := height - margin - int((y-o.miny)*sx)
	return px, py
}

// ringPath collects the pixel coordinates of a ring
func ringPath[T any](k field.Kernel[T], b *bounds, r geom.Ring[T]) (xs, ys []int) {
	for _, p := range r {
		x, y := b.scale(k.Float(p.X), k.Float(p.Y))
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return
}

// Polygons writes polys and the NFP rings into one SVG file
func Polygons[T any](k field.Kernel[T], fnamepath string, polys []geom.Polygon[T], n nfp.NFP[T]) {
	if !Enabled() {
		return
	}
	f, err := os.Create(fnamepath)
	if err != nil {
		io.PfRed("cannot write debug svg %q: %v\n", fnamepath, err)
		return
	}
	defer f.Close()

	var b bounds
	for _, p := range polys {
		for _, r := range append([]geom.Ring[T]{p.Outer}, p.Holes...) {
			for _, pt := range r {
				b.add(k.Float(pt.X), k.Float(pt.Y))
			}
		}
	}
	for _, r := range n {
		for _, pt := range r {
			b.add(k.Float(pt.X), k.Float(pt.Y))
		}
	}

	c := svg.New(f)
	c.Start(width, height)
	styles := []string{
		"fill:none;stroke:steelblue;stroke-width:2",
		"fill:none;stroke:darkorange;stroke-width:2",
	}
	for i, p := range polys {
		style := styles[i%len(styles)]
		for _, r := range append([]geom.Ring[T]{p.Outer}, p.Holes...) {
			xs, ys := ringPath(k, &b, r)
			c.Polygon(xs, ys, style)
		}
	}
	for _, r := range n {
		xs, ys := ringPath(k, &b, r)
		if len(r) == 1 {
			c.Circle(xs[0], ys[0], 3, "fill:crimson")
			continue
		}
		c.Polygon(xs, ys, "fill:none;stroke:crimson;stroke-width:1;stroke-dasharray:4 2")
	}
	c.End()
}

// Segments writes a set of segments into one SVG file, for touch-edge dumps
func Segments[T any](k field.Kernel[T], fnamepath string, segs []geom.Segment[T]) {
	if !Enabled() {
		return
	}
	f, err := os.Create(fnamepath)
	if err != nil {
		io.PfRed("cannot write debug svg %q: %v\n", fnamepath, err)
		return
	}
	defer f.Close()

	var b bounds
	for _, s := range segs {
		b.add(k.Float(s.First.X), k.Float(s.First.Y))
		b.add(k.Float(s.Second.X), k.Float(s.Second.Y))
	}

	c := svg.New(f)
	c.Start(width, height)
	for _, s := range segs {
		x1, y1 := b.scale(k.Float(s.First.X), k.Float(s.First.Y))
		x2, y2 := b.scale(k.Float(s.Second.X), k.Float(s.Second.Y))
		c.Line(x1, y1, x2, y2, "stroke:seagreen;stroke-width:2")
	}
	c.End()
}
