// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package reducer

import (
	"fmt"
	"math"
	"sync"
	"time"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Type

// Type represents the measurement type, eg, Interesting or CacheHit.
type Type int

const (
	// Interesting counts FAIL verdicts (the candidate reproduces the failure)
	Interesting Type = iota
	// Uninteresting counts PASS verdicts
	Uninteresting
	// Undecided counts UNRESOLVED verdicts
	Undecided
	// SpawnError counts invocations that could not even start
	SpawnError
	// CacheHit counts evaluations answered without an oracle invocation
	CacheHit
	// Rounds counts granularity rounds
	Rounds
	// Total number of oracle invocations
	Total
)

type timeStats struct {
	sum  float64
	sum2 float64
	cnt  int
}

// Stats keeps track of count stats and timing measurements of one reduction
// run. It is updated concurrently by scheduler workers.
type Stats struct {
	mu     sync.Mutex
	counts map[Type]int
	start  time.Time
	time   map[string]timeStats
}

// NewStats returns a new Stats object
func NewStats() *Stats {
	return &Stats{
		counts: make(map[Type]int),
		start:  time.Now(),
		time:   make(map[string]timeStats),
	}
}

// Inc increments the stats count of type t
func (s *Stats) Inc(t Type) {
	s.mu.Lock()
	s.counts[t]++
	s.mu.Unlock()
}

// Count returns the stats count of type t
func (s *Stats) Count(t Type) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[t]
}

// AddTime adds a time duration to a tag
func (s *Stats) AddTime(tag string, d time.Duration) {
	s.mu.Lock()
	t := s.time[tag]
	t.sum += float64(d)
	t.sum2 += float64(d) * float64(d)
	t.cnt++
	s.time[tag] = t
	s.mu.Unlock()
}

func (ts timeStats) mean() time.Duration {
	return time.Duration(ts.sum / float64(ts.cnt))
}

func (ts timeStats) sd() time.Duration {
	cnt := float64(ts.cnt)
	return time.Duration(math.Sqrt(ts.sum2/cnt - math.Pow(ts.sum/cnt, 2)))
}

// String is the string representation of the stats object.
func (s *Stats) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var str string
	for t := Interesting; t <= Total; t++ {
		if v, has := s.counts[t]; has {
			str += fmt.Sprintf("%13v: %d\n", t, v)
		}
	}

	elapsed := time.Since(s.start)
	str += fmt.Sprintf("\nTotal time: %v (%v)\n", elapsed.Seconds(), elapsed)

	for tag, tstats := range s.time {
		str += fmt.Sprintf("Mean time %s: %v (sd=%v cnt=%v)\n", tag, tstats.mean(), tstats.sd(), tstats.cnt)
	}
	return str
}
