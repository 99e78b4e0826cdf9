// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package oracle

import (
	"context"
	"sync/atomic"
	"time"

	"shrink/core"
)

// Mock is a scripted oracle for testing. Fn decides the outcome per
// configuration; Delay, if set, stalls the evaluation first, which lets tests
// force out-of-order completion in the parallel scheduler.
type Mock struct {
	Fn    func(cfg core.Config) Result
	Delay func(cfg core.Config) time.Duration
	Err   error

	calls int64
}

// Test returns the scripted result and error.
func (m *Mock) Test(ctx context.Context, cfg core.Config) (Result, error) {
	atomic.AddInt64(&m.calls, 1)
	if m.Delay != nil {
		select {
		case <-time.After(m.Delay(cfg)):
		case <-ctx.Done():
			return Result{Outcome: Unresolved}, ctx.Err()
		}
	}
	if ctx.Err() != nil {
		return Result{Outcome: Unresolved}, ctx.Err()
	}
	if m.Err != nil {
		return Result{Outcome: Unresolved}, m.Err
	}
	if m.Fn == nil {
		return Result{Outcome: Undefined}, nil
	}
	return m.Fn(cfg), nil
}

// Calls returns how often the oracle was invoked, cache hits excluded.
func (m *Mock) Calls() int64 {
	return atomic.LoadInt64(&m.calls)
}

var mock = &Mock{}

// GetMock returns the shared mock oracle instance.
func GetMock() *Mock {
	return mock
}
