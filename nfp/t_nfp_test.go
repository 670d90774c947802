// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfp

import (
	"math"
	"math/big"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"

	"github.com/kallaballa/nfporb/field"
	"github.com/kallaballa/nfporb/geom"
)

// poly wraps a ring into a polygon
func poly(outer geom.Ring[float64], holes ...geom.Ring[float64]) geom.Polygon[float64] {
	return geom.Polygon[float64]{Outer: outer, Holes: holes}
}

// ringPts builds a closed ring from coordinate pairs
func ringPts(coords ...float64) geom.Ring[float64] {
	r := pts(coords...)
	return append(r, r[0])
}

// checkRing verifies closure, corner count and corner membership
func checkRing(tst *testing.T, lab string, r geom.Ring[float64], corners ...[2]float64) {
	if len(r) < 2 {
		tst.Errorf("%s: ring too short: %d points\n", lab, len(r))
		return
	}
	if !geom.PointsEqual(kf, r[0], r[len(r)-1]) {
		tst.Errorf("%s: ring is not closed\n", lab)
	}
	chk.IntAssert(len(r), len(corners)+1)
	for _, c := range corners {
		if geom.FindPoint(kf, r, geom.PtF(kf, c[0], c[1])) < 0 {
			tst.Errorf("%s: corner (%g,%g) missing\n", lab, c[0], c[1])
		}
	}
}

// plotNfp draws the polygons and NFP rings (debugging only)
func plotNfp(pA, pB geom.Polygon[float64], res NFP[float64], fnkey string) {
	if !chk.Verbose {
		return
	}
	plt.Reset(false, nil)
	for _, r := range append([]geom.Ring[float64]{pA.Outer, pB.Outer}, res...) {
		var xs, ys []float64
		for _, p := range r {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
		plt.Plot(xs, ys, nil)
	}
	plt.Equal()
	plt.Save("/tmp/nfporb", fnkey)
}

func Test_nfp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nfp01. two squares")

	pA := poly(square(0, 0, 10))
	pB := poly(square(0, 0, 5))

	res, err := GenerateFloat(&pA, &pB, true)
	if err != nil {
		tst.Errorf("generate failed: %v\n", err)
		return
	}
	plotNfp(pA, pB, res, "nfp01")

	chk.IntAssert(len(res), 1)
	checkRing(tst, "outer", res[0],
		[2]float64{10, -5}, [2]float64{10, 10}, [2]float64{-5, 10}, [2]float64{-5, -5})
}

func Test_nfp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nfp02. rectangles")

	pA := poly(ringPts(0, 0, 8, 0, 8, 3, 0, 3))
	pB := poly(ringPts(0, 0, 2, 0, 2, 6, 0, 6))

	res, err := GenerateFloat(&pA, &pB, true)
	if err != nil {
		tst.Errorf("generate failed: %v\n", err)
		return
	}

	// the result is a single (8+2) x (3+6) rectangle
	chk.IntAssert(len(res), 1)
	checkRing(tst, "outer", res[0],
		[2]float64{8, -6}, [2]float64{8, 3}, [2]float64{-2, 3}, [2]float64{-2, -6})
}

func Test_nfp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nfp03. holed square")

	hole := geom.CorrectRing(kf, square(3, 3, 4), false)
	pA := poly(square(0, 0, 10), hole)
	pB := poly(square(0, 0, 2))

	res, err := GenerateFloat(&pA, &pB, true)
	if err != nil {
		tst.Errorf("generate failed: %v\n", err)
		return
	}
	plotNfp(pA, pB, res, "nfp03")

	chk.IntAssert(len(res), 2)
	checkRing(tst, "outer", res[0],
		[2]float64{10, -2}, [2]float64{10, 10}, [2]float64{-2, 10}, [2]float64{-2, -2})
	checkRing(tst, "hole loop", res[1],
		[2]float64{3, 3}, [2]float64{5, 3}, [2]float64{5, 5}, [2]float64{3, 5})
}

func Test_nfp04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nfp04. interlock inside a pocket")

	// 12x10 block with a 5x4 pocket reachable only through a 1-wide neck;
	// the 3x3 orbiter cannot pass the neck but can slide inside the pocket
	pA := poly(ringPts(
		0, 0, 12, 0, 12, 10, 5, 10, 5, 8, 7, 8, 7, 4, 2, 4, 2, 8, 4, 8, 4, 10, 0, 10))
	pB := poly(square(0, 0, 3))

	res, err := GenerateFloat(&pA, &pB, true)
	if err != nil {
		tst.Errorf("generate failed: %v\n", err)
		return
	}
	plotNfp(pA, pB, res, "nfp04")

	chk.IntAssert(len(res), 2)
	checkRing(tst, "interlock", res[1],
		[2]float64{2, 4}, [2]float64{4, 4}, [2]float64{4, 5}, [2]float64{2, 5})
}

func Test_nfp05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nfp05. perfect fit into a pocket")

	// the pocket is exactly the size of the orbiter: a single degenerate
	// loop marks the fit
	pA := poly(ringPts(
		0, 0, 12, 0, 12, 10, 4, 10, 4, 7, 5, 7, 5, 4, 2, 4, 2, 7, 3, 7, 3, 10, 0, 10))
	pB := poly(square(0, 0, 3))

	res, err := GenerateFloat(&pA, &pB, true)
	if err != nil {
		tst.Errorf("generate failed: %v\n", err)
		return
	}
	plotNfp(pA, pB, res, "nfp05")

	chk.IntAssert(len(res), 2)
	chk.IntAssert(len(res[1]), 1)
	if !geom.PointsEqual(kf, res[1][0], geom.PtF(kf, 2, 4)) {
		tst.Errorf("fit point must be (2,4), got %v\n", geom.PointString(kf, res[1][0]))
	}
}

func Test_nfp06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nfp06. congruent hexagons")

	h := math.Sqrt(3) / 2
	hexagon := ringPts(1, 0, 0.5, h, -0.5, h, -1, 0, -0.5, -h, 0.5, -h)
	pA := poly(hexagon)
	pB := poly(geom.CloneRing(hexagon))

	res, err := GenerateFloat(&pA, &pB, true)
	if err != nil {
		tst.Errorf("generate failed: %v\n", err)
		return
	}
	plotNfp(pA, pB, res, "nfp06")

	chk.IntAssert(len(res), 1)
	if !geom.PointsEqual(kf, res[0][0], res[0][len(res[0])-1]) {
		tst.Errorf("outer ring must close\n")
	}

	// the locus outlines a hexagon of edge 2
	area := geom.SignedArea(kf, res[0]) / 2
	chk.Float64(tst, "area", 1e-6, area, 6*math.Sqrt(3))
}

func Test_nfp07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nfp07. translation invariance")

	pA1 := poly(square(0, 0, 10))
	pB1 := poly(square(0, 0, 5))
	base, err := GenerateFloat(&pA1, &pB1, true)
	if err != nil {
		tst.Errorf("generate failed: %v\n", err)
		return
	}

	dA := geom.PtF(kf, 13, -7)
	dB := geom.PtF(kf, -4, 9)
	pA2 := poly(geom.TranslateRing(kf, square(0, 0, 10), dA))
	pB2 := poly(geom.TranslateRing(kf, square(0, 0, 5), dB))
	moved, err := GenerateFloat(&pA2, &pB2, true)
	if err != nil {
		tst.Errorf("generate failed: %v\n", err)
		return
	}

	// in the absolute reference locus B's own pre-displacement cancels:
	// displacements shift by dA-dB while reference positions shift by dA
	chk.IntAssert(len(moved), len(base))
	shift := dA
	for i := range base {
		chk.IntAssert(len(moved[i]), len(base[i]))
		for _, p := range base[i] {
			q := geom.Add(kf, p, shift)
			if geom.FindPoint(kf, moved[i], q) < 0 {
				tst.Errorf("point %v missing from translated result\n", geom.PointString(kf, q))
			}
		}
	}
}

func Test_nfp08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nfp08. rational backend agrees with float")

	kr := field.NewRational()
	toRat := func(r geom.Ring[float64]) geom.Ring[*big.Rat] {
		out := make(geom.Ring[*big.Rat], len(r))
		for i, p := range r {
			out[i] = geom.PtF(kr, p.X, p.Y)
		}
		return out
	}

	pA := geom.Polygon[*big.Rat]{Outer: toRat(square(0, 0, 10))}
	pB := geom.Polygon[*big.Rat]{Outer: toRat(square(0, 0, 5))}

	res, err := Generate[*big.Rat](kr, DefaultConfig(), &pA, &pB)
	if err != nil {
		tst.Errorf("generate failed: %v\n", err)
		return
	}

	chk.IntAssert(len(res), 1)
	want := [][2]float64{{10, -5}, {10, 10}, {-5, 10}, {-5, -5}}
	chk.IntAssert(len(res[0]), len(want)+1)
	for _, w := range want {
		found := false
		for _, p := range res[0] {
			if kf.Equals(kr.Float(p.X), w[0]) && kf.Equals(kr.Float(p.Y), w[1]) {
				found = true
				break
			}
		}
		if !found {
			tst.Errorf("corner (%g,%g) missing under the rational backend\n", w[0], w[1])
		}
	}
}

func Test_nfp09(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nfp09. invalid input is rejected")

	bad := poly(ringPts(0, 0, 10, 10, 10, 0, 0, 10)) // bow-tie
	pB := poly(square(0, 0, 5))
	_, err := GenerateFloat(&bad, &pB, true)
	if err == nil {
		tst.Errorf("self-intersecting input must be rejected\n")
		return
	}
	chk.IntAssert(int(KindOf(err)), int(ErrInvalidInput))
}
