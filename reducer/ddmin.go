// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package reducer

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"shrink/core"
	"shrink/logger"
	"shrink/oracle"
)

var (
	// ErrNoRepro means the mandatory initial check did not FAIL.
	ErrNoRepro = errors.New("initial input does not reproduce the failure")
	// ErrEmptyInput means there is nothing to reduce.
	ErrEmptyInput = errors.New("empty initial configuration")
	// ErrOracleUnusable means every single oracle invocation of a run failed
	// to even start.
	ErrOracleUnusable = errors.New("oracle unusable: every invocation failed to start")
)

// DDMin is the sequential reduction state machine. It owns the active
// configuration and the granularity counter and drives rounds to convergence;
// rounds are strictly sequential, only candidate evaluation within a round is
// concurrent.
type DDMin struct {
	st    Strategy
	cache *Cache
	stats *Stats
	rnd   *rand.Rand
	sched *scheduler
}

// New returns a DDMin instance for one strategy. A nil cache or stats
// allocates a private one; passing a shared cache lets racing strategies
// reuse each other's oracle verdicts.
func New(st Strategy, tool oracle.Tool, cache *Cache, stats *Stats) *DDMin {
	if st.Workers < 1 {
		st.Workers = 1
	}
	if cache == nil {
		cache = NewCache()
	}
	if stats == nil {
		stats = NewStats()
	}
	seed := st.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DDMin{
		st:    st,
		cache: cache,
		stats: stats,
		rnd:   rand.New(rand.NewSource(seed)),
		sched: &scheduler{tool: tool, cache: cache, stats: stats, workers: st.Workers},
	}
}

// Stats returns the run statistics.
func (d *DDMin) Stats() *Stats {
	return d.stats
}

// Cache returns the outcome cache of the run.
func (d *DDMin) Cache() *Cache {
	return d.cache
}

// Run reduces initial to a 1-minimal configuration that still reproduces the
// failure. The result is always a subset of initial. Returns ErrNoRepro if
// initial itself does not FAIL.
func (d *DDMin) Run(ctx context.Context, initial core.Config) (core.Config, error) {
	if initial.Empty() {
		return initial, ErrEmptyInput
	}

	// mandatory reproduction check before any reduction
	out, err := d.sched.test(ctx, initial)
	if err != nil {
		return initial, err
	}
	if out != oracle.Fail {
		if d.sched.unusable() {
			return initial, ErrOracleUnusable
		}
		return initial, ErrNoRepro
	}

	var (
		active = initial
		n      = minGranularity
		offset = 0
	)
	for run := 0; ; run++ {
		if active.Len() < minGranularity {
			logger.Info("done: reduced to a single unit")
			break
		}
		if n > active.Len() {
			n = active.Len()
		}

		chunks, err := Split(d.st.Split, active, n)
		if err != nil {
			return active, err
		}
		logger.Infof("run #%d: %d units in %d chunks", run, active.Len(), n)

		cands := plan(d.st, d.rnd, d.cache, active, chunks, offset)
		idx, err := d.sched.round(ctx, cands)
		if err != nil {
			return active, err
		}

		if idx >= 0 {
			acc := cands[idx]
			active = acc.Cfg
			if acc.Subset {
				// shrunk to a single chunk, restart at the coarsest split
				n, offset = minGranularity, 0
			} else {
				// a chunk is proven irrelevant, decay granularity slowly and
				// continue removing after the eliminated chunk
				if n--; n < minGranularity {
					n = minGranularity
				}
				offset = acc.Chunk
			}
			logger.Infof("reduced to %d units", active.Len())
			continue
		}

		if d.sched.unusable() {
			return active, ErrOracleUnusable
		}

		if n < active.Len() {
			nn := n * 2
			if nn > active.Len() {
				nn = active.Len()
			}
			offset = offset * nn / n
			n = nn
			logger.Infof("increase granularity to %d", n)
			continue
		}

		// no reducing candidate at the finest split: 1-minimal
		logger.Info("done: 1-minimal")
		break
	}
	return active, nil
}
