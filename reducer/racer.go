// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package reducer

import (
	"context"
	"errors"
	"sync"

	"shrink/core"
	"shrink/logger"
	"shrink/oracle"
)

// Racer runs one DDMin instance per strategy concurrently and adopts the
// result of the first to converge, cancelling the rest. Cancellation is
// awaited: when Run returns, no sibling evaluation is still in flight.
type Racer struct {
	tool        oracle.Tool
	strategies  []Strategy
	sharedCache bool
	stats       []*Stats
}

// NewRacer returns a racer over the given strategies. With sharedCache the
// siblings reuse one outcome cache and never repeat each other's oracle
// invocations.
func NewRacer(tool oracle.Tool, sharedCache bool, strategies ...Strategy) (*Racer, error) {
	if len(strategies) == 0 {
		return nil, errors.New("no strategies configured")
	}
	return &Racer{
		tool:        tool,
		strategies:  strategies,
		sharedCache: sharedCache,
	}, nil
}

// Stats returns the statistics of strategy i. Valid after Run.
func (r *Racer) Stats(i int) *Stats {
	return r.stats[i]
}

type raceResult struct {
	index int
	cfg   core.Config
	err   error
}

// Run starts the race and returns the reduced configuration together with the
// index of the winning strategy. If two runs converge within the same
// observable instant, the strategy listed first wins, keeping reruns
// deterministic.
func (r *Racer) Run(ctx context.Context, initial core.Config) (core.Config, int, error) {
	r.stats = make([]*Stats, len(r.strategies))
	for i := range r.stats {
		r.stats[i] = NewStats()
	}

	var shared *Cache
	if r.sharedCache {
		shared = NewCache()
	}

	if len(r.strategies) == 1 {
		cfg, err := New(r.strategies[0], r.tool, shared, r.stats[0]).Run(ctx, initial)
		return cfg, 0, err
	}

	rctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg      sync.WaitGroup
		results = make(chan raceResult, len(r.strategies))
	)
	for i, st := range r.strategies {
		cache := shared
		if cache == nil {
			cache = NewCache()
		}
		d := New(st, r.tool, cache, r.stats[i])

		wg.Add(1)
		go func(i int, d *DDMin) {
			defer wg.Done()
			cfg, err := d.Run(rctx, initial)
			if err != nil && rctx.Err() != nil && ctx.Err() == nil {
				// loser cancelled by the racer itself, result discarded; a
				// parent cancellation is still reported below
				return
			}
			results <- raceResult{index: i, cfg: cfg, err: err}
		}(i, d)
	}

	var (
		winner   = raceResult{index: -1}
		firstErr = raceResult{index: -1}
	)
	for done := 0; done < len(r.strategies) && winner.index < 0; done++ {
		res := <-results
		if res.err != nil {
			if firstErr.index < 0 {
				firstErr = res
			}
			continue
		}
		winner = res
		// drain results that are already observable and prefer the strategy
		// listed first among them
	drain:
		for {
			select {
			case extra := <-results:
				if extra.err == nil && extra.index < winner.index {
					winner = extra
				}
			default:
				break drain
			}
		}
	}

	// stop the losers and wait for their in-flight evaluations to terminate
	cancel()
	wg.Wait()

	if winner.index < 0 {
		return firstErr.cfg, firstErr.index, firstErr.err
	}
	logger.Infof("strategy #%d won with %d units", winner.index, winner.cfg.Len())
	return winner.cfg, winner.index, winner.err
}
