// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kallaballa/nfporb/geom"
)

// pts builds a ring from coordinate pairs
func pts(coords ...float64) geom.Ring[float64] {
	var r geom.Ring[float64]
	for i := 0; i+1 < len(coords); i += 2 {
		r = append(r, geom.PtF(kf, coords[i], coords[i+1]))
	}
	return r
}

func TestCleanRing(t *testing.T) {
	cases := []struct {
		name string
		in   geom.Ring[float64]
		want geom.Ring[float64]
	}{
		{
			name: "empty",
			in:   pts(),
			want: pts(),
		},
		{
			name: "no change",
			in:   pts(0, 0, 1, 0, 1, 1, 0, 1),
			want: pts(0, 0, 1, 0, 1, 1, 0, 1),
		},
		{
			name: "consecutive duplicates",
			in:   pts(0, 0, 0, 0, 1, 0, 1, 0, 1, 0, 1, 1),
			want: pts(0, 0, 1, 0, 1, 1),
		},
		{
			name: "period one oscillation",
			in:   pts(0, 0, 1, 0, 1, 0, 1, 0, 2, 0),
			want: pts(0, 0, 1, 0, 2, 0),
		},
		{
			name: "period two oscillation",
			in:   pts(0, 0, 1, 0, 2, 0, 1, 0, 2, 0, 3, 3),
			want: pts(0, 0, 1, 0, 2, 0, 3, 3),
		},
		{
			name: "forward back excursion",
			in:   pts(0, 0, 1, 0, 5, 5, 1, 0, 2, 0),
			want: pts(0, 0, 1, 0, 2, 0),
		},
		{
			name: "period three repetition",
			in:   pts(0, 0, 1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 0, 9, 9),
			want: pts(0, 0, 1, 0, 1, 1, 0, 0, 9, 9),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CleanRing(kf, tc.in)
			require.Len(t, got, len(tc.want))
			for i := range got {
				require.True(t, geom.PointsEqual(kf, got[i], tc.want[i]),
					"point %d: got %v want %v", i, got[i], tc.want[i])
			}
		})
	}
}
