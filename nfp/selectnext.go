// Copyright 2017 The Nfporb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfp

import (
	"sort"

	"github.com/kallaballa/nfporb/geom"
)

// longest returns the candidate with the greatest translation length
func (o *proc[T]) longest(tvs []TransVector[T]) TransVector[T] {
	k := o.k
	best := -1
	var maxLen T
	for i := range tvs {
		l := geom.VecLength(k, tvs[i].V)
		if best < 0 || k.Larger(l, maxLen) {
			maxLen = l
			best = i
		}
	}
	if best < 0 {
		return invalidVector[T]()
	}
	return tvs[best]
}

// selectNext picks the translation vector for the current iteration. A lone
// candidate wins outright and a short history falls back to the longest
// candidate. With more history the working set shrinks to candidates not yet
// traversed when any exist, and the longest candidate traversed fewer than
// two times wins; a vector legitimately appears at most twice on a loop (once
// per direction around a concavity), so a third traversal indicates a cycle.
// When every candidate has been traversed twice the least used one wins, ties
// broken towards the least recently used
func (o *proc[T]) selectNext(tvs []TransVector[T], history History[T]) TransVector[T] {
	k := o.k
	if len(tvs) == 0 {
		return invalidVector[T]()
	}
	if len(tvs) == 1 {
		return tvs[0]
	}
	if len(history) <= 1 {
		return o.longest(tvs)
	}

	work := make([]TransVector[T], 0, len(tvs))
	for _, tv := range tvs {
		if history.Count(k, tv) == 0 {
			work = append(work, tv)
		}
	}
	if len(work) == 0 {
		work = append(work, tvs...)
	}

	sort.SliceStable(work, func(i, j int) bool {
		return k.Smaller(geom.VecLength(k, work[i].V), geom.VecLength(k, work[j].V))
	})

	for i := len(work) - 1; i >= 0; i-- {
		if history.Count(k, work[i]) < 2 {
			return work[i]
		}
	}

	// all candidates traversed twice: pick the least used, preferring the
	// least recently traversed
	best := invalidVector[T]()
	minCnt := len(history) + 1
	bestAge := -1
	for _, tv := range work {
		cnt := history.Count(k, tv)
		age := len(history) - history.LastIndex(k, tv)
		if cnt < minCnt || (cnt == minCnt && age > bestAge) {
			minCnt = cnt
			bestAge = age
			best = tv
		}
	}
	return best
}
