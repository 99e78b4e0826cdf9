// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package reducer contains the delta-debugging (ddmin) reduction engine.
// Given an oracle, a DDMin instance shrinks a failure-inducing unit sequence
// to a 1-minimal subset that still reproduces the failure; a Racer runs
// several independently configured instances against each other and adopts
// the first to converge.
package reducer

//go:generate go run golang.org/x/tools/cmd/stringer -type=SplitMode

// SplitMode selects how the active configuration is partitioned into chunks.
type SplitMode int

const (
	// UnknownSplit is an unknown split mode
	UnknownSplit SplitMode = iota
	// Zeller reproduces the split of the original ddmin reference
	// implementation, biased towards larger trailing chunks
	Zeller
	// Balanced keeps chunk sizes within one unit of each other
	Balanced
)

// ParseSplitMode maps a split mode name to its value.
func ParseSplitMode(s string) SplitMode {
	switch s {
	case "zeller":
		return Zeller
	case "balanced":
		return Balanced
	default:
		return UnknownSplit
	}
}

//go:generate go run golang.org/x/tools/cmd/stringer -type=CheckOrder

// CheckOrder decides which candidate family a round attempts first.
type CheckOrder int

const (
	// UnknownOrder is an unknown check order
	UnknownOrder CheckOrder = iota
	// SubsetFirst tries the chunks themselves before the complements
	SubsetFirst
	// ComplementFirst tries the complements before the chunks
	ComplementFirst
)

// ParseCheckOrder maps a check order name to its value.
func ParseCheckOrder(s string) CheckOrder {
	switch s {
	case "subset-first", "subset":
		return SubsetFirst
	case "complement-first", "complement":
		return ComplementFirst
	default:
		return UnknownOrder
	}
}

//go:generate go run golang.org/x/tools/cmd/stringer -type=IterOrder

// IterOrder decides the traversal order over chunk indices within a family.
type IterOrder int

const (
	// UnknownIter is an unknown iteration order
	UnknownIter IterOrder = iota
	// Forward traverses chunks 0..N-1
	Forward
	// Backward traverses chunks N-1..0
	Backward
	// Random traverses chunks in a seeded uniform shuffle
	Random
	// Skip traverses forward but elides candidates already known from the
	// cache to be non-reducing
	Skip
)

// ParseIterOrder maps an iteration order name to its value.
func ParseIterOrder(s string) IterOrder {
	switch s {
	case "forward":
		return Forward
	case "backward":
		return Backward
	case "random":
		return Random
	case "skip":
		return Skip
	default:
		return UnknownIter
	}
}

// Strategy is one complete reduction configuration. A Racer runs one DDMin
// instance per strategy.
type Strategy struct {
	Split   SplitMode
	Order   CheckOrder
	Iter    IterOrder
	Workers int
	Seed    int64
}

// DefaultStrategy mirrors the defaults of the original ddmin formulation:
// Zeller split, subsets before complements, forward traversal, sequential.
func DefaultStrategy() Strategy {
	return Strategy{
		Split:   Zeller,
		Order:   SubsetFirst,
		Iter:    Forward,
		Workers: 1,
	}
}
