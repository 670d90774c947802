// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/kallaballa/nfporb/field"
)

// Backend names
const (
	BackendFloat    = "float"
	BackendRational = "rational"
)

// Config holds engine options
type Config struct {
	Backend       string  `json:"backend"`       // "float" or "rational"
	Epsilon       float64 `json:"epsilon"`       // tolerance of the floating backend
	CheckValidity bool    `json:"checkValidity"` // validate input polygons
	MaxIterations int     `json:"maxIterations"` // per-slide ceiling; 0 means unbounded
	Verbose       bool    `json:"verbose"`       // trace slide iterations
}

// DefaultConfig returns the default engine options
func DefaultConfig() Config {
	return Config{
		Backend:       BackendFloat,
		Epsilon:       field.DefaultEps,
		CheckValidity: true,
	}
}

// ReadConfig loads options from a JSON file, filling absent fields with the
// defaults
func ReadConfig(fnamepath string) (cfg Config, err error) {
	cfg = DefaultConfig()
	buf := io.ReadFile(fnamepath)
	err = json.Unmarshal(buf, &cfg)
	if err != nil {
		err = chk.Err("cannot parse configuration file %q:\n%v", fnamepath, err)
	}
	return
}
