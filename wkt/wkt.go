// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wkt reads and writes polygons and NFP rings in Well-Known Text
package wkt

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/kallaballa/nfporb/field"
	"github.com/kallaballa/nfporb/geom"
	"github.com/kallaballa/nfporb/nfp"
)

// parseCoords parses "x y, x y, ..." into points
func parseCoords[T any](k field.Kernel[T], body string) (r geom.Ring[T], err error) {
	for _, pair := range strings.Split(body, ",") {
		fields := strings.Fields(strings.TrimSpace(pair))
		if len(fields) != 2 {
			return nil, chk.Err("malformed coordinate pair %q", pair)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, chk.Err("malformed x coordinate %q", fields[0])
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, chk.Err("malformed y coordinate %q", fields[1])
		}
		r = append(r, geom.PtF(k, x, y))
	}
	return
}

// splitRings splits "(...),(...)" into the ring bodies
func splitRings(body string) (rings []string, err error) {
	depth := 0
	start := -1
	for i, c := range body {
		switch c {
		case '(':
			depth++
			if depth == 1 {
				start = i + 1
			}
		case ')':
			depth--
			if depth < 0 {
				return nil, chk.Err("unbalanced parentheses in %q", body)
			}
			if depth == 0 {
				rings = append(rings, body[start:i])
			}
		}
	}
	if depth != 0 {
		return nil, chk.Err("unbalanced parentheses in %q", body)
	}
	return
}

// ParsePolygon parses POLYGON((...),(...)) text. Open rings are closed by
// repeating their first point; the winding is corrected to outer
// counter-clockwise and holes clockwise
func ParsePolygon[T any](k field.Kernel[T], text string) (p geom.Polygon[T], err error) {
	s := strings.TrimSpace(text)
	upper := strings.ToUpper(s)
	if !strings.HasPrefix(upper, "POLYGON") {
		err = chk.Err("expected POLYGON geometry, got %q", firstToken(s))
		return
	}
	body := strings.TrimSpace(s[len("POLYGON"):])
	if !strings.HasPrefix(body, "(") || !strings.HasSuffix(body, ")") {
		err = chk.Err("malformed POLYGON body")
		return
	}
	rings, err := splitRings(body[1 : len(body)-1])
	if err != nil {
		return
	}
	if len(rings) == 0 {
		err = chk.Err("POLYGON has no rings")
		return
	}
	for i, rb := range rings {
		var r geom.Ring[T]
		r, err = parseCoords(k, rb)
		if err != nil {
			return
		}
		if i == 0 {
			p.Outer = r
		} else {
			p.Holes = append(p.Holes, r)
		}
	}
	geom.Correct(k, &p)
	return
}

// ParseRing parses one NFP ring line: POLYGON((...)) or POINT(x y)
func ParseRing[T any](k field.Kernel[T], text string) (geom.Ring[T], error) {
	s := strings.TrimSpace(text)
	upper := strings.ToUpper(s)
	if strings.HasPrefix(upper, "POINT") {
		body := strings.TrimSpace(s[len("POINT"):])
		if !strings.HasPrefix(body, "(") || !strings.HasSuffix(body, ")") {
			return nil, chk.Err("malformed POINT body")
		}
		return parseCoords(k, body[1:len(body)-1])
	}
	p, err := ParsePolygon(k, s)
	if err != nil {
		return nil, err
	}
	if len(p.Holes) > 0 {
		return nil, chk.Err("NFP ring line cannot carry holes")
	}
	return p.Outer, nil
}

// firstToken returns the leading word of s for error messages
func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ReadPolygon reads a WKT polygon from a file
func ReadPolygon[T any](k field.Kernel[T], fnamepath string) (geom.Polygon[T], error) {
	buf := io.ReadFile(fnamepath)
	return ParsePolygon(k, string(buf))
}

// ReadNFP reads golden NFP data: one ring per line
func ReadNFP[T any](k field.Kernel[T], fnamepath string) (n nfp.NFP[T], err error) {
	buf := io.ReadFile(fnamepath)
	for _, line := range strings.Split(string(buf), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := ParseRing(k, line)
		if err != nil {
			return nil, err
		}
		n = append(n, r)
	}
	return
}

// FormatRing formats one NFP ring: POINT for degenerate single-point loops,
// POLYGON otherwise, with 12 significant digits
func FormatRing[T any](k field.Kernel[T], r geom.Ring[T]) string {
	if len(r) == 1 {
		return io.Sf("POINT(%.12g %.12g)", k.Float(r[0].X), k.Float(r[0].Y))
	}
	var sb strings.Builder
	sb.WriteString("POLYGON((")
	for i, p := range r {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(io.Sf("%.12g %.12g", k.Float(p.X), k.Float(p.Y)))
	}
	sb.WriteString("))")
	return sb.String()
}

// FormatPolygon formats a polygon with all of its rings
func FormatPolygon[T any](k field.Kernel[T], p geom.Polygon[T]) string {
	var sb strings.Builder
	sb.WriteString("POLYGON(")
	rings := append([]geom.Ring[T]{p.Outer}, p.Holes...)
	for i, r := range rings {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString("(")
		for j, pt := range r {
			if j > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(io.Sf("%.12g %.12g", k.Float(pt.X), k.Float(pt.Y)))
		}
		sb.WriteString(")")
	}
	sb.WriteString(")")
	return sb.String()
}

// WriteNFP writes an NFP, one ring per line, in discovery order
func WriteNFP[T any](k field.Kernel[T], fnamepath string, n nfp.NFP[T]) {
	var buf bytes.Buffer
	for _, r := range n {
		buf.WriteString(FormatRing(k, r))
		buf.WriteString("\n")
	}
	io.WriteFile(fnamepath, &buf)
}
