// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfp

import (
	"github.com/kallaballa/nfporb/field"
)

// History is the sequence of translation vectors emitted during one slide
type History[T any] []TransVector[T]

// Find returns the index of the first occurrence of tv at or after offset,
// or -1
func (o History[T]) Find(k field.Kernel[T], tv TransVector[T], offset int) int {
	if offset < 0 {
		return -1
	}
	for i := offset; i < len(o); i++ {
		if TvEqual(k, o[i], tv) {
			return i
		}
	}
	return -1
}

// Count returns the number of occurrences of tv
func (o History[T]) Count(k field.Kernel[T], tv TransVector[T]) (cnt int) {
	for i := 0; i < len(o); i++ {
		if TvEqual(k, o[i], tv) {
			cnt++
		}
	}
	return
}

// LastIndex returns the index of the last occurrence of tv, or -1
func (o History[T]) LastIndex(k field.Kernel[T], tv TransVector[T]) int {
	for i := len(o) - 1; i >= 0; i-- {
		if TvEqual(k, o[i], tv) {
			return i
		}
	}
	return -1
}
