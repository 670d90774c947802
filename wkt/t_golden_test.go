// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wkt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kallaballa/nfporb/geom"
	"github.com/kallaballa/nfporb/nfp"
)

// TestGolden regenerates the NFP for every case directory under ../data and
// compares it against the recorded golden rings
func TestGolden(t *testing.T) {
	entries, err := os.ReadDir("../data")
	if err != nil {
		t.Skipf("no golden data: %v", err)
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join("../data", e.Name())
		if _, err := os.Stat(filepath.Join(dir, "golden.wkt")); err != nil {
			continue
		}

		t.Run(e.Name(), func(t *testing.T) {
			pA, err := ReadPolygon(kf, filepath.Join(dir, "A.wkt"))
			require.NoError(t, err)
			pB, err := ReadPolygon(kf, filepath.Join(dir, "B.wkt"))
			require.NoError(t, err)
			golden, err := ReadNFP(kf, filepath.Join(dir, "golden.wkt"))
			require.NoError(t, err)

			res, err := nfp.GenerateFloat(&pA, &pB, true)
			require.NoError(t, err)
			require.Len(t, res, len(golden))

			for i := range golden {
				require.Len(t, res[i], len(golden[i]))
				for _, p := range golden[i] {
					require.GreaterOrEqual(t, geom.FindPoint(kf, res[i], p), 0,
						"ring %d: golden point %s missing", i, geom.PointString(kf, p))
				}
			}
		})
	}
}
