// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package reducer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shrink/core"
	"shrink/oracle"
)

func TestNewRacerNeedsStrategies(t *testing.T) {
	_, err := NewRacer(&oracle.Mock{}, false)
	assert.NotNil(t, err)
}

func TestRacerSingleStrategy(t *testing.T) {
	mock := &oracle.Mock{Fn: failIfContains(3, 7)}
	r, err := NewRacer(mock, false, defaultWith(1))
	assert.Nil(t, err)

	got, winner, err := r.Run(context.Background(), core.FullConfig(8))
	assert.Nil(t, err)
	assert.Equal(t, 0, winner)
	assert.Equal(t, []int{3, 7}, got.Indices())
	assert.True(t, r.Stats(0).Count(Total) > 0)
}

func TestRacerFasterStrategyWins(t *testing.T) {
	// the failure lives in the last chunk, so backward iteration needs fewer
	// oracle calls per round and converges first
	mock := &oracle.Mock{
		Fn:    failIfContains(7),
		Delay: func(core.Config) time.Duration { return 20 * time.Millisecond },
	}
	forward := Strategy{Split: Zeller, Order: SubsetFirst, Iter: Forward, Workers: 1, Seed: 1}
	backward := Strategy{Split: Zeller, Order: SubsetFirst, Iter: Backward, Workers: 1, Seed: 1}

	r, err := NewRacer(mock, false, forward, backward)
	assert.Nil(t, err)

	got, winner, err := r.Run(context.Background(), core.FullConfig(8))
	assert.Nil(t, err)
	assert.Equal(t, 1, winner)
	assert.Equal(t, []int{7}, got.Indices())

	// the loser was cancelled and awaited: nothing is still invoking the oracle
	calls := mock.Calls()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, mock.Calls())
}

func TestRacerSharedCache(t *testing.T) {
	mock := &oracle.Mock{Fn: failIfContains(3, 7)}
	r, err := NewRacer(mock, true, defaultWith(1), defaultWith(2))
	assert.Nil(t, err)

	got, winner, err := r.Run(context.Background(), core.FullConfig(8))
	assert.Nil(t, err)
	assert.True(t, winner == 0 || winner == 1)
	assert.Equal(t, []int{3, 7}, got.Indices())
}

func TestRacerAllStrategiesFail(t *testing.T) {
	mock := &oracle.Mock{Fn: func(core.Config) oracle.Result {
		return oracle.Result{Outcome: oracle.Pass}
	}}
	r, err := NewRacer(mock, false, defaultWith(1), defaultWith(2))
	assert.Nil(t, err)

	_, _, err = r.Run(context.Background(), core.FullConfig(4))
	assert.ErrorIs(t, err, ErrNoRepro)
}

func TestRacerContextCancellation(t *testing.T) {
	mock := &oracle.Mock{
		Fn:    failIfContains(3),
		Delay: func(core.Config) time.Duration { return 100 * time.Millisecond },
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	r, err := NewRacer(mock, false, defaultWith(1), defaultWith(1))
	assert.Nil(t, err)

	_, _, err = r.Run(ctx, core.FullConfig(8))
	assert.NotNil(t, err)
}
