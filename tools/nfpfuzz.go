// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

package main

import (
	"flag"
	"math/rand"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/kallaballa/nfporb/field"
	"github.com/kallaballa/nfporb/geom"
	"github.com/kallaballa/nfporb/nfp"
	"github.com/kallaballa/nfporb/wkt"
)

// jitterRing perturbs every vertex of r by at most amp in each direction and
// re-closes the ring
func jitterRing(rnd *rand.Rand, r geom.Ring[float64], amp float64) {
	for i := range r {
		r[i].X += (rnd.Float64()*2 - 1) * amp
		r[i].Y += (rnd.Float64()*2 - 1) * amp
	}
	r[len(r)-1] = r[0]
}

func main() {

	rounds := flag.Int("rounds", 100, "number of jittered runs")
	amp := flag.Float64("amp", 1.0, "jitter amplitude")
	seed := flag.Int64("seed", 0, "random seed; 0 uses the clock")
	flag.Parse()
	if flag.NArg() < 2 {
		chk.Panic("usage: nfpfuzz [options] A.wkt B.wkt")
	}

	k := field.NewFloat()
	orgA, err := wkt.ReadPolygon(k, flag.Arg(0))
	if err != nil {
		chk.Panic("cannot load polygon A: %v", err)
	}
	orgB, err := wkt.ReadPolygon(k, flag.Arg(1))
	if err != nil {
		chk.Panic("cannot load polygon B: %v", err)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(s))
	io.Pf("fuzzing %d rounds with amplitude %g (seed %d)\n", *rounds, *amp, s)

	// sweep the amplitude from gentle to the requested maximum
	amps := utl.LinSpace(*amp/10.0, *amp, 5)

	failures := 0
	for round := 0; round < *rounds; round++ {
		a := amps[round%len(amps)]
		pA := geom.ClonePolygon(orgA)
		pB := geom.ClonePolygon(orgB)
		jitterRing(rnd, pA.Outer, a)
		for _, h := range pA.Holes {
			jitterRing(rnd, h, a)
		}
		jitterRing(rnd, pB.Outer, a)
		for _, h := range pB.Holes {
			jitterRing(rnd, h, a)
		}

		cfg := nfp.DefaultConfig()
		cfg.MaxIterations = 4 * (len(pA.Outer) + len(pB.Outer))
		_, err := nfp.Generate[float64](k, cfg, &pA, &pB)
		if err != nil {
			failures++
			io.Pfred("round %d (amp %g) failed: %v\n", round, a, err)
		}
	}
	if failures > 0 {
		io.PfRed("%d of %d rounds failed\n", failures, *rounds)
		return
	}
	io.Pfgreen("all %d rounds succeeded\n", *rounds)
}
