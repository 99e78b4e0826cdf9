// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package reducer

import (
	"math/rand"

	"shrink/core"
	"shrink/oracle"
)

// Candidate is one test of a round: a chunk alone (subset test) or the
// active configuration without one chunk (complement test).
type Candidate struct {
	Cfg    core.Config
	Chunk  int
	Subset bool
}

// plan enumerates the candidates of one round in the order the acceptance
// decision is taken. It never mutates the active configuration. The
// complement family is rotated by offset so a run keeps removing chunks where
// the previous complement success left off.
func plan(st Strategy, rnd *rand.Rand, cache *Cache, active core.Config, chunks []core.Config, offset int) []Candidate {
	n := len(chunks)

	subsets := func() []Candidate {
		var cands []Candidate
		for _, i := range traverse(st.Iter, n, rnd) {
			c := Candidate{Cfg: chunks[i], Chunk: i, Subset: true}
			if st.Iter == Skip && provenUseless(cache, c.Cfg) {
				continue
			}
			cands = append(cands, c)
		}
		return cands
	}

	complements := func() []Candidate {
		var cands []Candidate
		for _, base := range traverse(st.Iter, n, rnd) {
			i := (base + offset) % n
			c := Candidate{Cfg: active.Without(chunks[i]), Chunk: i, Subset: false}
			if st.Iter == Skip && provenUseless(cache, c.Cfg) {
				continue
			}
			cands = append(cands, c)
		}
		return cands
	}

	if st.Order == ComplementFirst {
		return append(complements(), subsets()...)
	}
	return append(subsets(), complements()...)
}

// traverse yields the chunk indices of one family in the configured order.
func traverse(iter IterOrder, n int, rnd *rand.Rand) []int {
	if iter == Random {
		return rnd.Perm(n)
	}
	idx := make([]int, n)
	for i := range idx {
		if iter == Backward {
			idx[i] = n - 1 - i
		} else {
			idx[i] = i
		}
	}
	return idx
}

// provenUseless reports whether cfg is already memoized as non-reducing.
// Skip-eligibility is tracked per candidate configuration, so a chunk elided
// for one family stays eligible for the other. Cached FAILs are never elided;
// the scheduler answers them from the cache and the round result is unchanged.
func provenUseless(cache *Cache, cfg core.Config) bool {
	o, ok := cache.Lookup(cfg)
	return ok && o != oracle.Fail
}
