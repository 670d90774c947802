// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nfp implements the orbiting-slide no-fit polygon engine: given a
// stationary polygon A and an orbiting polygon B, it computes the locus of
// B's reference point as B slides around A in touching, non-overlapping
// contact, including interior loops for concavities and holes
package nfp

import "github.com/cpmech/gosl/io"

// ErrKind classifies engine failures
type ErrKind int

const (
	// ErrInvalidInput marks non-simple polygons, degenerate rings and
	// self-intersections
	ErrInvalidInput ErrKind = iota + 1

	// ErrNoTouch marks a slide that silently detached from A
	ErrNoTouch

	// ErrNoFeasibleVector marks a touch configuration with no way to continue
	ErrNoFeasibleVector

	// ErrSlideOverlap marks interpenetration after a slide step
	ErrSlideOverlap

	// ErrUnclosable marks an outer loop that failed to return to its start
	ErrUnclosable

	// ErrNumericInstability marks tolerance breakdowns such as hitting the
	// iteration ceiling
	ErrNumericInstability
)

// String returns the name of the kind
func (o ErrKind) String() string {
	switch o {
	case ErrInvalidInput:
		return "InvalidInput"
	case ErrNoTouch:
		return "NoTouch"
	case ErrNoFeasibleVector:
		return "NoFeasibleVector"
	case ErrSlideOverlap:
		return "SlideOverlap"
	case ErrUnclosable:
		return "Unclosable"
	case ErrNumericInstability:
		return "NumericInstability"
	}
	return "Unknown"
}

// Error carries an engine failure with its kind
type Error struct {
	Kind ErrKind
	Msg  string
}

// Error returns the message
func (o *Error) Error() string {
	return io.Sf("%v: %s", o.Kind, o.Msg)
}

// newErr builds an engine error
func newErr(kind ErrKind, msg string, prm ...interface{}) *Error {
	return &Error{Kind: kind, Msg: io.Sf(msg, prm...)}
}

// KindOf extracts the kind of an engine error, or 0 for foreign errors
func KindOf(err error) ErrKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return 0
}
