// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package reducer

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"shrink/core"
	"shrink/logger"
	"shrink/oracle"
)

// scheduler evaluates one round of candidates with up to workers concurrent
// oracle invocations. The acceptance decision is always taken in enumeration
// order: the accepted candidate is the earliest-ordered FAIL whose
// predecessors are all known non-FAIL, never simply the first to finish, so
// results do not depend on machine load. With workers == 1 the evaluation
// degenerates to strictly sequential.
type scheduler struct {
	tool    oracle.Tool
	cache   *Cache
	stats   *Stats
	workers int

	invocations int64
	spawnErrs   int64
}

// test evaluates a single configuration through the cache. Per-candidate
// oracle problems are absorbed here and become Unresolved; only context
// cancellation is reported as an error, and a cancelled evaluation is never
// committed to the cache.
func (s *scheduler) test(ctx context.Context, cfg core.Config) (oracle.Outcome, error) {
	if o, ok := s.cache.Lookup(cfg); ok {
		logger.Debugf("cache %v = %v", cfg, o)
		s.stats.Inc(CacheHit)
		return o, nil
	}

	ts := time.Now()
	r, err := s.tool.Test(ctx, cfg)
	elapsed := time.Since(ts)

	if ctx.Err() != nil {
		return oracle.Undefined, ctx.Err()
	}
	atomic.AddInt64(&s.invocations, 1)
	s.stats.Inc(Total)

	if err != nil {
		// spawn failure: unresolved for this candidate only, and not
		// memoized since the condition may be transient
		logger.Warnf("oracle invocation failed: %v", err)
		atomic.AddInt64(&s.spawnErrs, 1)
		s.stats.Inc(SpawnError)
		return oracle.Unresolved, nil
	}

	o := r.Outcome
	if o == oracle.Undefined {
		o = oracle.Unresolved
	}
	switch o {
	case oracle.Fail:
		s.stats.Inc(Interesting)
		s.stats.AddTime("fail", elapsed)
	case oracle.Pass:
		s.stats.Inc(Uninteresting)
		s.stats.AddTime("pass", elapsed)
	default:
		s.stats.Inc(Undecided)
		s.stats.AddTime("unresolved", elapsed)
	}
	logger.Debugf("test %v = %v (%v)", cfg, o, elapsed)
	s.cache.Store(cfg, o)
	return o, nil
}

// unusable reports whether every oracle invocation so far failed to spawn.
func (s *scheduler) unusable() bool {
	errs := atomic.LoadInt64(&s.spawnErrs)
	return errs > 0 && errs == atomic.LoadInt64(&s.invocations)
}

// round evaluates cands and returns the index of the accepted candidate, or
// -1 if no candidate is FAIL. Once the earliest-ordered FAIL is final, all
// higher-ordered pending and in-flight evaluations are cancelled; their
// results are discarded uncommitted.
func (s *scheduler) round(ctx context.Context, cands []Candidate) (int, error) {
	s.stats.Inc(Rounds)
	if len(cands) == 0 {
		return -1, nil
	}

	if s.workers <= 1 {
		for i, c := range cands {
			o, err := s.test(ctx, c.Cfg)
			if err != nil {
				return -1, err
			}
			if o == oracle.Fail {
				return i, nil
			}
		}
		return -1, nil
	}

	type slot struct {
		outcome oracle.Outcome
		done    bool
	}
	var (
		mu       sync.Mutex
		next     int
		accepted = -1
		results  = make([]slot, len(cands))
	)

	g, gctx := errgroup.WithContext(ctx)
	rctx, cancel := context.WithCancel(gctx)
	defer cancel()

	workers := s.workers
	if workers > len(cands) {
		workers = len(cands)
	}
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				// claim the next candidate in enumeration order
				mu.Lock()
				if accepted >= 0 || next >= len(cands) {
					mu.Unlock()
					return nil
				}
				i := next
				next++
				mu.Unlock()

				o, err := s.test(rctx, cands[i].Cfg)
				if err != nil {
					if ctx.Err() != nil {
						return err
					}
					// speculative cancellation, not an error
					return nil
				}

				mu.Lock()
				results[i] = slot{outcome: o, done: true}
				if accepted < 0 {
					// commit the earliest FAIL whose prefix is final
					for j := range results {
						if !results[j].done {
							break
						}
						if results[j].outcome == oracle.Fail {
							accepted = j
							cancel()
							break
						}
					}
				}
				mu.Unlock()
			}
		})
	}
	if err := g.Wait(); err != nil {
		return -1, err
	}
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	return accepted, nil
}
