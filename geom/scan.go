// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/kallaballa/nfporb/field"

// extremum scans the outer ring of p (ignoring the repeated closing vertex)
// and collects the indices attaining the extreme value of sel
func extremum[T any](k field.Kernel[T], r Ring[T], sel func(Point[T]) T, better func(a, b T) bool) (result []int) {
	var best T
	for i := 0; i+1 < len(r); i++ {
		v := sel(r[i])
		if len(result) == 0 || better(v, best) {
			result = result[:0]
			best = v
			result = append(result, i)
		} else if k.Equals(v, best) {
			result = append(result, i)
		}
	}
	return
}

// FindMinimumX returns the indices of the left-most outer vertices of p
func FindMinimumX[T any](k field.Kernel[T], p Polygon[T]) []int {
	return extremum(k, p.Outer, func(pt Point[T]) T { return pt.X }, k.Smaller)
}

// FindMaximumX returns the indices of the right-most outer vertices of p
func FindMaximumX[T any](k field.Kernel[T], p Polygon[T]) []int {
	return extremum(k, p.Outer, func(pt Point[T]) T { return pt.X }, k.Larger)
}

// FindMinimumY returns the indices of the bottom-most outer vertices of p
func FindMinimumY[T any](k field.Kernel[T], p Polygon[T]) []int {
	return extremum(k, p.Outer, func(pt Point[T]) T { return pt.Y }, k.Smaller)
}

// FindMaximumY returns the indices of the top-most outer vertices of p
func FindMaximumY[T any](k field.Kernel[T], p Polygon[T]) []int {
	return extremum(k, p.Outer, func(pt Point[T]) T { return pt.Y }, k.Larger)
}
