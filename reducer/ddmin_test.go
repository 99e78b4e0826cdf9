// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package reducer

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shrink/core"
	"shrink/oracle"
)

// failIfContains scripts an oracle that FAILs exactly when every one of the
// required units survived the reduction.
func failIfContains(required ...int) func(core.Config) oracle.Result {
	return func(cfg core.Config) oracle.Result {
		for _, r := range required {
			if !cfg.Contains(r) {
				return oracle.Result{Outcome: oracle.Pass}
			}
		}
		return oracle.Result{Outcome: oracle.Fail}
	}
}

func defaultWith(workers int) Strategy {
	st := DefaultStrategy()
	st.Workers = workers
	st.Seed = 1
	return st
}

func TestDDMinReducesToRequiredPair(t *testing.T) {
	mock := &oracle.Mock{Fn: failIfContains(3, 7)}
	d := New(defaultWith(1), mock, nil, nil)

	got, err := d.Run(context.Background(), core.FullConfig(10))
	assert.Nil(t, err)
	assert.Equal(t, []int{3, 7}, got.Indices())
	assert.True(t, mock.Calls() <= 30, "took %d oracle calls", mock.Calls())
}

func TestDDMinAllStrategiesConverge(t *testing.T) {
	for _, split := range []SplitMode{Zeller, Balanced} {
		for _, order := range []CheckOrder{SubsetFirst, ComplementFirst} {
			for _, iter := range []IterOrder{Forward, Backward, Random, Skip} {
				for _, workers := range []int{1, 4} {
					st := Strategy{Split: split, Order: order, Iter: iter, Workers: workers, Seed: 42}
					t.Run(fmt.Sprintf("%v", st), func(t *testing.T) {
						mock := &oracle.Mock{Fn: failIfContains(3, 7)}
						d := New(st, mock, nil, nil)
						got, err := d.Run(context.Background(), core.FullConfig(8))
						assert.Nil(t, err)
						// 1-minimality pins the result exactly
						assert.Equal(t, []int{3, 7}, got.Indices())
					})
				}
			}
		}
	}
}

func TestDDMinAlwaysFailingReducesToOneUnit(t *testing.T) {
	mock := &oracle.Mock{Fn: func(core.Config) oracle.Result {
		return oracle.Result{Outcome: oracle.Fail}
	}}
	d := New(defaultWith(1), mock, nil, nil)

	got, err := d.Run(context.Background(), core.FullConfig(10))
	assert.Nil(t, err)
	assert.Equal(t, []int{0}, got.Indices())
}

func TestDDMinUnresolvedCandidatesLeaveInputUntouched(t *testing.T) {
	full := core.FullConfig(8)
	mock := &oracle.Mock{Fn: func(cfg core.Config) oracle.Result {
		if cfg.Equals(full) {
			return oracle.Result{Outcome: oracle.Fail}
		}
		return oracle.Result{Outcome: oracle.Unresolved}
	}}
	d := New(defaultWith(1), mock, nil, nil)

	got, err := d.Run(context.Background(), full)
	assert.Nil(t, err)
	assert.True(t, got.Equals(full))
}

func TestDDMinNoRepro(t *testing.T) {
	mock := &oracle.Mock{Fn: func(core.Config) oracle.Result {
		return oracle.Result{Outcome: oracle.Pass}
	}}
	d := New(defaultWith(1), mock, nil, nil)

	_, err := d.Run(context.Background(), core.FullConfig(4))
	assert.ErrorIs(t, err, ErrNoRepro)
	assert.Equal(t, int64(1), mock.Calls())
}

func TestDDMinEmptyInput(t *testing.T) {
	d := New(defaultWith(1), &oracle.Mock{}, nil, nil)
	_, err := d.Run(context.Background(), core.NewConfig(nil))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestDDMinOracleUnusable(t *testing.T) {
	mock := &oracle.Mock{Err: assert.AnError}
	d := New(defaultWith(1), mock, nil, nil)

	_, err := d.Run(context.Background(), core.FullConfig(4))
	assert.ErrorIs(t, err, ErrOracleUnusable)
}

func TestDDMinResultIsOneMinimal(t *testing.T) {
	fn := failIfContains(1, 4, 6)
	mock := &oracle.Mock{Fn: fn}
	d := New(defaultWith(1), mock, nil, nil)

	got, err := d.Run(context.Background(), core.FullConfig(12))
	assert.Nil(t, err)
	assert.Equal(t, oracle.Fail, fn(got).Outcome)
	for _, i := range got.Indices() {
		smaller := got.Without(core.NewConfig([]int{i}))
		assert.NotEqual(t, oracle.Fail, fn(smaller).Outcome,
			"dropping unit %d should stop the failure", i)
	}
}

func TestDDMinIdempotent(t *testing.T) {
	mock := &oracle.Mock{Fn: failIfContains(3, 7)}
	first, err := New(defaultWith(1), mock, nil, nil).Run(context.Background(), core.FullConfig(8))
	assert.Nil(t, err)

	again, err := New(defaultWith(1), mock, nil, nil).Run(context.Background(), first)
	assert.Nil(t, err)
	assert.True(t, again.Equals(first))
}

func TestDDMinParallelMatchesSequential(t *testing.T) {
	// delays scramble the completion order, the acceptance order must not care
	delay := func(cfg core.Config) time.Duration {
		return time.Duration(cfg.Len()%3) * time.Millisecond
	}
	seq, err := New(defaultWith(1), &oracle.Mock{Fn: failIfContains(2, 9, 13)}, nil, nil).
		Run(context.Background(), core.FullConfig(16))
	assert.Nil(t, err)

	par, err := New(defaultWith(4), &oracle.Mock{Fn: failIfContains(2, 9, 13), Delay: delay}, nil, nil).
		Run(context.Background(), core.FullConfig(16))
	assert.Nil(t, err)
	assert.True(t, par.Equals(seq))
}

func TestDDMinNeverRepeatsAConfiguration(t *testing.T) {
	var (
		mu   sync.Mutex
		seen = map[string]int{}
	)
	fn := failIfContains(3, 7)
	mock := &oracle.Mock{Fn: func(cfg core.Config) oracle.Result {
		mu.Lock()
		seen[cfg.Key()]++
		mu.Unlock()
		return fn(cfg)
	}}
	d := New(defaultWith(1), mock, nil, nil)

	_, err := d.Run(context.Background(), core.FullConfig(8))
	assert.Nil(t, err)
	for key, n := range seen {
		assert.Equal(t, 1, n, "configuration {%s} was sent to the oracle %d times", key, n)
	}
}

func TestDDMinResultIsSubsetOfInput(t *testing.T) {
	initial := core.NewConfig([]int{2, 3, 5, 7, 11, 13, 17, 19})
	mock := &oracle.Mock{Fn: failIfContains(5, 17)}
	d := New(defaultWith(1), mock, nil, nil)

	got, err := d.Run(context.Background(), initial)
	assert.Nil(t, err)
	assert.True(t, got.SubsetOf(initial))
	assert.Equal(t, []int{5, 17}, got.Indices())
}

func TestDDMinStatsAccounting(t *testing.T) {
	mock := &oracle.Mock{Fn: failIfContains(3, 7)}
	d := New(defaultWith(1), mock, nil, nil)

	_, err := d.Run(context.Background(), core.FullConfig(8))
	assert.Nil(t, err)

	st := d.Stats()
	assert.Equal(t, int(mock.Calls()), st.Count(Total))
	assert.True(t, st.Count(Interesting) > 0)
	assert.True(t, st.Count(Rounds) > 0)
	assert.Equal(t, int(d.Cache().Hits()), st.Count(CacheHit))
}
