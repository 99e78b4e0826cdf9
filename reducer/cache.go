// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package reducer

import (
	"sync"
	"sync/atomic"

	"shrink/core"
	"shrink/oracle"
)

// Cache memoizes configuration outcomes so no configuration is ever sent to
// the oracle twice within a run. Keys are the canonical index sets, so two
// configurations retaining the same units always collide. A Cache may be
// shared across racing strategies; all methods are safe for concurrent use.
// Duplicate stores for the same key are harmless since the oracle is assumed
// deterministic per configuration.
type Cache struct {
	mu   sync.RWMutex
	m    map[string]oracle.Outcome
	hits int64
}

// NewCache returns an empty outcome cache.
func NewCache() *Cache {
	return &Cache{m: make(map[string]oracle.Outcome)}
}

// Lookup returns the memoized outcome of cfg, if any.
func (c *Cache) Lookup(cfg core.Config) (oracle.Outcome, bool) {
	c.mu.RLock()
	o, ok := c.m[cfg.Key()]
	c.mu.RUnlock()
	if ok {
		atomic.AddInt64(&c.hits, 1)
	}
	return o, ok
}

// Store memoizes the outcome of cfg.
func (c *Cache) Store(cfg core.Config, o oracle.Outcome) {
	c.mu.Lock()
	c.m[cfg.Key()] = o
	c.mu.Unlock()
}

// Len returns the number of memoized configurations.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Hits returns how many lookups were answered from the cache.
func (c *Cache) Hits() int64 {
	return atomic.LoadInt64(&c.hits)
}
