// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package reducer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"shrink/core"
	"shrink/oracle"
)

func TestCacheLookupMiss(t *testing.T) {
	c := NewCache()
	_, ok := c.Lookup(core.FullConfig(3))
	assert.False(t, ok)
	assert.Equal(t, int64(0), c.Hits())
}

func TestCacheStoreLookup(t *testing.T) {
	c := NewCache()
	c.Store(core.NewConfig([]int{3, 7}), oracle.Fail)
	c.Store(core.NewConfig([]int{1}), oracle.Pass)

	o, ok := c.Lookup(core.NewConfig([]int{3, 7}))
	assert.True(t, ok)
	assert.Equal(t, oracle.Fail, o)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, int64(1), c.Hits())
}

func TestCacheKeyIsSetIdentity(t *testing.T) {
	c := NewCache()
	c.Store(core.NewConfig([]int{7, 3, 7}), oracle.Unresolved)

	o, ok := c.Lookup(core.NewConfig([]int{3, 7}))
	assert.True(t, ok)
	assert.Equal(t, oracle.Unresolved, o)
	assert.Equal(t, 1, c.Len())
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				cfg := core.NewConfig([]int{i})
				c.Store(cfg, oracle.Pass)
				c.Lookup(cfg)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, c.Len())
}
