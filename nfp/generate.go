// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfp

import (
	"github.com/kallaballa/nfporb/field"
	"github.com/kallaballa/nfporb/geom"
)

// preTranslation computes the shift that moves both polygons into the
// non-negative quadrant. The shifts of A and B accumulate so either one
// alone already clears the axes
func preTranslation[T any](k field.Kernel[T], pA, pB geom.Polygon[T]) geom.Point[T] {
	pre := geom.Pt(k.Zero(), k.Zero())
	zero := k.Zero()

	for _, p := range []geom.Polygon[T]{pA, pB} {
		left := p.Outer[geom.FindMinimumX(k, p)[0]].X
		if k.Smaller(left, zero) {
			pre.X = k.Add(pre.X, k.Neg(left))
		}

		bottom := p.Outer[geom.FindMinimumY(k, p)[0]].Y
		if k.Smaller(bottom, zero) {
			pre.Y = k.Add(pre.Y, k.Neg(bottom))
		}
	}
	return pre
}

// startPair picks the initial touching vertices: A's minimum-y vertex and
// B's maximum-y vertex. On ties the right-most of A's set and the left-most
// of B's set win, preventing a degenerate immediate re-traversal at the start
func startPair[T any](k field.Kernel[T], pA, pB geom.Polygon[T]) (pAstart, pBstart geom.Point[T]) {
	yAminI := geom.FindMinimumY(k, pA)
	yBmaxI := geom.FindMaximumY(k, pB)

	if len(yAminI) > 1 || len(yBmaxI) > 1 {
		iRightMost := yAminI[0]
		for _, ia := range yAminI {
			if k.Larger(pA.Outer[ia].X, pA.Outer[iRightMost].X) {
				iRightMost = ia
			}
		}
		iLeftMost := yBmaxI[0]
		for _, ib := range yBmaxI {
			if k.Smaller(pB.Outer[ib].X, pB.Outer[iLeftMost].X) {
				iLeftMost = ib
			}
		}
		return pA.Outer[iRightMost], pB.Outer[iLeftMost]
	}
	return pA.Outer[yAminI[0]], pB.Outer[yBmaxI[0]]
}

// Generate computes the NFP of pA (stationary) and pB (orbiting) under the
// given kernel and options. Both polygons are mutated: co-linear vertices are
// removed, both are pre-translated into the positive quadrant, and B ends up
// wherever the last slide left it. Callers that need the inputs intact must
// pass copies
func Generate[T any](k field.Kernel[T], cfg Config, pA, pB *geom.Polygon[T]) (NFP[T], error) {
	o := newProc(k, cfg)

	geom.RemoveColinear(k, pA)
	geom.RemoveColinear(k, pB)

	if cfg.CheckValidity {
		if err := geom.ValidatePolygon(k, *pA); err != nil {
			return nil, newErr(ErrInvalidInput, "polygon A is invalid: %v", err)
		}
		if err := geom.ValidatePolygon(k, *pB); err != nil {
			return nil, newErr(ErrInvalidInput, "polygon B is invalid: %v", err)
		}
	}

	preTrans := preTranslation(k, *pA, *pB)
	*pA = geom.TranslatePolygon(k, *pA, preTrans)
	*pB = geom.TranslatePolygon(k, *pB, preTrans)

	pAstart, pBstart := startPair(k, *pA, *pB)

	var nfp NFP[T]
	nfp = append(nfp, geom.Ring[T]{})
	res, err := o.slide(*pA, pA.Outer, &pB.Outer, &nfp, geom.Sub(k, pAstart, pBstart), false)
	if err != nil {
		return nil, err
	}
	if res != Loop {
		return nil, newErr(ErrUnclosable, "unable to complete outer nfp loop: %v", res)
	}
	o.debugf("##### outer done #####\n")

	// interlock phase: B nested into concavities of A's outer ring
	for {
		sres, startTrans := o.searchStart(pA.Outer, pB.Outer, nfp, false)
		if sres == Found {
			rifs := geom.TranslateRing(k, pB.Outer, startTrans)
			if InNFP(k, rifs[0], nfp) {
				continue
			}
			nfp = append(nfp, geom.Ring[T]{})
			o.debugf("##### interlock start #####\n")
			slres, err := o.slide(*pA, pA.Outer, &pB.Outer, &nfp, startTrans, true)
			if err != nil {
				return nil, err
			}
			if slres == NoTranslation {
				// no continuous slide from here: a jigsaw placement
				if !InNFP(k, pB.Outer[0], nfp) {
					nfp = append(nfp, geom.Ring[T]{pB.Outer[0]})
				}
			}
			o.debugf("##### interlock end #####\n")
		} else if sres == Fit {
			o.debugf("##### perfect fit #####\n")
			translated := geom.Add(k, pB.Outer[0], startTrans)
			if !InNFP(k, translated, nfp) {
				nfp = append(nfp, geom.Ring[T]{translated})
			}
			break
		} else {
			break
		}
	}

	// hole phase: B orbiting each hole of A from the inside
	for hi := range pA.Holes {
		for {
			sres, startTrans := o.searchStart(pA.Holes[hi], pB.Outer, nfp, true)
			if sres == Found {
				nfp = append(nfp, geom.Ring[T]{})
				o.debugf("##### hole start #####\n")
				if _, err := o.slide(*pA, pA.Holes[hi], &pB.Outer, &nfp, startTrans, true); err != nil {
					return nil, err
				}
				o.debugf("##### hole end #####\n")
			} else if sres == Fit {
				translated := geom.Add(k, pB.Outer[0], startTrans)
				if !InNFP(k, translated, nfp) {
					nfp = append(nfp, geom.Ring[T]{translated})
				}
				break
			} else {
				break
			}
		}
	}

	// post-clean and restore the original frame. Trimming stops slides at
	// every vertex event, so output rings carry co-linear stopover points;
	// they are dropped together with the oscillation artifacts
	backTrans := geom.Flip(k, preTrans)
	for i := range nfp {
		nfp[i] = CleanRing(k, nfp[i])
		if len(nfp[i]) > 2 {
			nfp[i] = geom.CorrectRing(k, nfp[i], true)
		}
		if len(nfp[i]) > 4 {
			nfp[i] = geom.RemoveColinearRing(k, nfp[i])
		}
		nfp[i] = geom.TranslateRing(k, nfp[i], backTrans)
	}
	return nfp, nil
}

// GenerateFloat computes the NFP under the floating backend with default
// options; checkValidity toggles input validation
func GenerateFloat(pA, pB *geom.Polygon[float64], checkValidity bool) (NFP[float64], error) {
	cfg := DefaultConfig()
	cfg.CheckValidity = checkValidity
	return Generate[float64](field.NewFloat(), cfg, pA, pB)
}
