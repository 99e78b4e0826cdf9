// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package reducer

import (
	"errors"
	"fmt"

	"shrink/core"
)

const minGranularity = 2

// ErrGranularity is returned by Split for granularities outside [2, len].
var ErrGranularity = errors.New("invalid granularity")

// Split partitions cfg into exactly n chunks: disjoint, covering, and in the
// original relative order of the retained indices. Callers must cap n at
// cfg.Len() before calling.
func Split(mode SplitMode, cfg core.Config, n int) ([]core.Config, error) {
	if n < minGranularity || n > cfg.Len() {
		return nil, fmt.Errorf("%w: n=%d, len=%d", ErrGranularity, n, cfg.Len())
	}
	switch mode {
	case Zeller:
		return zellerSplit(cfg, n), nil
	case Balanced:
		return balancedSplit(cfg, n), nil
	default:
		return nil, fmt.Errorf("unknown split mode %d", mode)
	}
}

// zellerSplit slices off 1/n of the configuration, then 1/(n-1) of the
// remainder, and so on; the len%n leftover units end up one per chunk in the
// trailing chunks, as in Zeller's reference implementation.
func zellerSplit(cfg core.Config, n int) []core.Config {
	var (
		chunks = make([]core.Config, 0, n)
		length = cfg.Len()
		start  = 0
	)
	for i := 0; i < n; i++ {
		stop := start + (length-start)/(n-i)
		chunks = append(chunks, cfg.Slice(start, stop))
		start = stop
	}
	return chunks
}

// balancedSplit gives every chunk len/n units and hands the len%n leftover
// units one per chunk to the leading chunks, so sizes differ by at most one.
func balancedSplit(cfg core.Config, n int) []core.Config {
	var (
		chunks = make([]core.Config, 0, n)
		size   = cfg.Len() / n
		rem    = cfg.Len() % n
		start  = 0
	)
	for i := 0; i < n; i++ {
		stop := start + size
		if i < rem {
			stop++
		}
		chunks = append(chunks, cfg.Slice(start, stop))
		start = stop
	}
	return chunks
}
