// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package core contains the value types shared by the reduction engine:
// unit sequences and configurations of retained unit indices.
package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Config is an immutable set of indices into the input unit sequence that a
// candidate retains. Indices are kept sorted, so iterating a Config always
// preserves the original input order.
type Config struct {
	idx []int
	key string
}

// NewConfig returns a configuration retaining the given indices.
// The indices are copied, sorted and deduplicated.
func NewConfig(indices []int) Config {
	idx := make([]int, len(indices))
	copy(idx, indices)
	sort.Ints(idx)
	n := 0
	for i, v := range idx {
		if i > 0 && idx[n-1] == v {
			continue
		}
		idx[n] = v
		n++
	}
	idx = idx[:n]
	return Config{idx: idx, key: makeKey(idx)}
}

// FullConfig returns the configuration retaining all of 0..n-1.
func FullConfig(n int) Config {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return Config{idx: idx, key: makeKey(idx)}
}

func makeKey(idx []int) string {
	var b strings.Builder
	for i, v := range idx {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// Len returns the number of retained indices.
func (c Config) Len() int {
	return len(c.idx)
}

// Empty reports whether no index is retained.
func (c Config) Empty() bool {
	return len(c.idx) == 0
}

// Indices returns a copy of the retained indices in ascending order.
func (c Config) Indices() []int {
	idx := make([]int, len(c.idx))
	copy(idx, c.idx)
	return idx
}

// Key returns a canonical representation of the index set. Two configurations
// retaining the same indices have equal keys regardless of construction order.
func (c Config) Key() string {
	return c.key
}

// Contains reports whether index i is retained.
func (c Config) Contains(i int) bool {
	p := sort.SearchInts(c.idx, i)
	return p < len(c.idx) && c.idx[p] == i
}

// Equals reports whether both configurations retain the same index set.
func (c Config) Equals(o Config) bool {
	return c.key == o.key && len(c.idx) == len(o.idx)
}

// SubsetOf reports whether every retained index of c is also retained by o.
func (c Config) SubsetOf(o Config) bool {
	if len(c.idx) > len(o.idx) {
		return false
	}
	for _, v := range c.idx {
		if !o.Contains(v) {
			return false
		}
	}
	return true
}

// Without returns the configuration retaining the indices of c that are not
// retained by o.
func (c Config) Without(o Config) Config {
	var idx []int
	for _, v := range c.idx {
		if !o.Contains(v) {
			idx = append(idx, v)
		}
	}
	return Config{idx: idx, key: makeKey(idx)}
}

// Slice returns the configuration retaining c's indices in positions [from, to)
// of c's own ascending order. It is the building block of splitters.
func (c Config) Slice(from, to int) Config {
	idx := make([]int, to-from)
	copy(idx, c.idx[from:to])
	return Config{idx: idx, key: makeKey(idx)}
}

// String implements fmt.Stringer.
func (c Config) String() string {
	return fmt.Sprintf("{%s}", c.key)
}

// Units is the ordered sequence of atomic input units. It is read once before
// reduction starts and never mutated.
type Units []string

// Pick returns the units retained by cfg, in input order.
func (u Units) Pick(cfg Config) Units {
	picked := make(Units, 0, cfg.Len())
	for _, i := range cfg.Indices() {
		picked = append(picked, u[i])
	}
	return picked
}

// Concat materializes the units retained by cfg as a single artifact. Units
// carry their own separators (e.g. trailing newlines for line atoms), so they
// are joined without a delimiter.
func (u Units) Concat(cfg Config) string {
	var b strings.Builder
	for _, i := range cfg.Indices() {
		b.WriteString(u[i])
	}
	return b.String()
}
