// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/io"

	"github.com/kallaballa/nfporb/draw"
	"github.com/kallaballa/nfporb/field"
	"github.com/kallaballa/nfporb/geom"
	"github.com/kallaballa/nfporb/nfp"
	"github.com/kallaballa/nfporb/wkt"
)

// exit codes
const (
	exitOK      = 0
	exitInvalid = 1
	exitEngine  = 2
)

func main() {

	// options
	rational := flag.Bool("rational", false, "use the exact rational backend")
	eps := flag.Float64("eps", field.DefaultEps, "tolerance of the floating backend")
	skipcheck := flag.Bool("skipcheck", false, "skip input validity checking")
	maxiter := flag.Int("maxiter", 0, "per-slide iteration ceiling; 0 means unbounded")
	verbose := flag.Bool("verbose", false, "trace slide iterations")
	check := flag.Bool("check", false, "only check the input polygons for validity")
	cfgfn := flag.String("config", "", "JSON configuration file")

	// catch errors
	status := exitOK
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(exitEngine)
		}
		os.Exit(status)
	}()

	flag.Parse()
	if flag.NArg() < 2 {
		io.Pf("usage: nfp [options] A.wkt B.wkt [out.wkt]\n\n")
		flag.PrintDefaults()
		status = exitInvalid
		return
	}
	fnA := flag.Arg(0)
	fnB := flag.Arg(1)

	cfg := nfp.DefaultConfig()
	if *cfgfn != "" {
		var err error
		cfg, err = nfp.ReadConfig(*cfgfn)
		if err != nil {
			io.PfRed("ERROR: %v\n", err)
			status = exitInvalid
			return
		}
	}
	if *rational {
		cfg.Backend = nfp.BackendRational
	}
	cfg.Epsilon = *eps
	cfg.CheckValidity = !*skipcheck
	cfg.MaxIterations = *maxiter
	cfg.Verbose = *verbose

	var out string
	if flag.NArg() > 2 {
		out = flag.Arg(2)
	}

	switch cfg.Backend {
	case nfp.BackendRational:
		status = run(field.NewRational(), cfg, fnA, fnB, out, *check)
	default:
		status = run(field.Float{Eps: cfg.Epsilon}, cfg, fnA, fnB, out, *check)
	}
}

// run loads the polygons, generates the NFP and writes the result
func run[T any](k field.Kernel[T], cfg nfp.Config, fnA, fnB, out string, checkOnly bool) int {

	pA, err := wkt.ReadPolygon(k, fnA)
	if err != nil {
		io.PfRed("cannot load polygon A: %v\n", err)
		return exitInvalid
	}
	pB, err := wkt.ReadPolygon(k, fnB)
	if err != nil {
		io.PfRed("cannot load polygon B: %v\n", err)
		return exitInvalid
	}

	if checkOnly {
		ok := true
		for _, item := range []struct {
			name string
			poly geom.Polygon[T]
		}{{"A", pA}, {"B", pB}} {
			if err := geom.ValidatePolygon(k, item.poly); err != nil {
				io.PfRed("polygon %s is invalid: %v\n", item.name, err)
				ok = false
				continue
			}
			io.Pfgreen("polygon %s is valid\n", item.name)
		}
		if !ok {
			return exitInvalid
		}
		return exitOK
	}

	draw.Polygons(k, "start.svg", []geom.Polygon[T]{pA, pB}, nil)

	res, err := nfp.Generate(k, cfg, &pA, &pB)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		if nfp.KindOf(err) == nfp.ErrInvalidInput {
			return exitInvalid
		}
		return exitEngine
	}

	draw.Polygons(k, "nfp.svg", []geom.Polygon[T]{pA, pB}, res)

	if out != "" {
		wkt.WriteNFP(k, out, res)
		io.Pf("written %q (%d rings)\n", out, len(res))
		return exitOK
	}
	for _, r := range res {
		io.Pf("%s\n", wkt.FormatRing(k, r))
	}
	return exitOK
}
