// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wkt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kallaballa/nfporb/field"
	"github.com/kallaballa/nfporb/geom"
	"github.com/kallaballa/nfporb/nfp"
)

var kf = field.NewFloat()

func TestParsePolygon(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		wantErr bool
		nOuter  int
		nHoles  int
	}{
		{
			name:   "square",
			text:   "POLYGON((0 0,10 0,10 10,0 10,0 0))",
			nOuter: 5,
		},
		{
			name:   "with hole",
			text:   "POLYGON((0 0,10 0,10 10,0 10,0 0),(3 3,7 3,7 7,3 7,3 3))",
			nOuter: 5,
			nHoles: 1,
		},
		{
			name:   "whitespace and lowercase",
			text:   "  polygon(( 0 0, 1 0 , 1 1, 0 1, 0 0 ))  ",
			nOuter: 5,
		},
		{
			name:    "not a polygon",
			text:    "LINESTRING(0 0,1 1)",
			wantErr: true,
		},
		{
			name:    "bad coordinate",
			text:    "POLYGON((0 zero,1 0,1 1,0 0))",
			wantErr: true,
		},
		{
			name:    "unbalanced",
			text:    "POLYGON((0 0,1 0,1 1,0 0)",
			wantErr: true,
		},
		{
			name:    "empty",
			text:    "POLYGON()",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePolygon(kf, tc.text)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, p.Outer, tc.nOuter)
			require.Len(t, p.Holes, tc.nHoles)
		})
	}
}

func TestWindingCorrection(t *testing.T) {
	// clockwise outer ring input must come out counter-clockwise, holes the
	// other way around
	p, err := ParsePolygon(kf, "POLYGON((0 0,0 10,10 10,10 0,0 0),(3 3,7 3,7 7,3 7,3 3))")
	require.NoError(t, err)
	require.True(t, kf.Larger(geom.SignedArea(kf, p.Outer), 0), "outer must be ccw")
	require.True(t, kf.Smaller(geom.SignedArea(kf, p.Holes[0]), 0), "hole must be cw")
}

func TestParseRing(t *testing.T) {
	r, err := ParseRing(kf, "POLYGON((0 0,2 0,2 2,0 2,0 0))")
	require.NoError(t, err)
	require.Len(t, r, 5)

	pt, err := ParseRing(kf, "POINT(1.5 -2.25)")
	require.NoError(t, err)
	require.Len(t, pt, 1)
	require.True(t, geom.PointsEqual(kf, pt[0], geom.PtF(kf, 1.5, -2.25)))
}

func TestFormatRing(t *testing.T) {
	r := geom.Ring[float64]{
		geom.PtF(kf, 0, 0), geom.PtF(kf, 2, 0), geom.PtF(kf, 2, 2), geom.PtF(kf, 0, 0),
	}
	require.Equal(t, "POLYGON((0 0,2 0,2 2,0 0))", FormatRing(kf, r))

	single := geom.Ring[float64]{geom.PtF(kf, 1, 3)}
	require.Equal(t, "POINT(1 3)", FormatRing(kf, single))

	// 12 significant digits survive the round trip
	frac := geom.Ring[float64]{geom.PtF(kf, 1.0/3.0, 2.0/3.0)}
	back, err := ParseRing(kf, FormatRing(kf, frac))
	require.NoError(t, err)
	require.True(t, kf.Equals(back[0].X, 1.0/3.0))
	require.True(t, kf.Equals(back[0].Y, 2.0/3.0))
}

func TestNFPRoundTrip(t *testing.T) {
	n := nfp.NFP[float64]{
		geom.Ring[float64]{
			geom.PtF(kf, 10, -5), geom.PtF(kf, 10, 10), geom.PtF(kf, -5, 10),
			geom.PtF(kf, -5, -5), geom.PtF(kf, 10, -5),
		},
		geom.Ring[float64]{geom.PtF(kf, 0, 3)},
	}
	lines := ""
	for _, r := range n {
		lines += FormatRing(kf, r) + "\n"
	}
	require.Contains(t, lines, "POINT(0 3)")

	// parse back line by line
	r0, err := ParseRing(kf, FormatRing(kf, n[0]))
	require.NoError(t, err)
	require.Len(t, r0, len(n[0]))
}
