// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"shrink/core"
	"shrink/reducer"
)

func TestTokenizeLines(t *testing.T) {
	testCases := []struct {
		content string
		units   core.Units
	}{
		{content: "a\nb\nc\n", units: core.Units{"a\n", "b\n", "c\n"}},
		{content: "a\nb", units: core.Units{"a\n", "b"}},
		{content: "\n\n", units: core.Units{"\n", "\n"}},
		{content: "", units: nil},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%q", tc.content), func(t *testing.T) {
			units, err := tokenize(tc.content, "line")
			assert.Nil(t, err)
			if tc.units == nil {
				assert.Empty(t, units)
				return
			}
			assert.Equal(t, tc.units, units)
		})
	}
}

func TestTokenizeChars(t *testing.T) {
	units, err := tokenize("ab\nä", "char")
	assert.Nil(t, err)
	assert.Equal(t, core.Units{"a", "b", "\n", "ä"}, units)
}

func TestTokenizeUnknownAtom(t *testing.T) {
	_, err := tokenize("a", "word")
	assert.NotNil(t, err)
}

func TestTokenizeRoundTrip(t *testing.T) {
	content := "a\nBUG\nc"
	for _, atom := range []string{"line", "char"} {
		units, err := tokenize(content, atom)
		assert.Nil(t, err)
		assert.Equal(t, content, units.Concat(core.FullConfig(len(units))))
	}
}

func TestArtifactString(t *testing.T) {
	a := artifact{
		units: core.Units{"a\n", "b\n", "c\n"},
		cfg:   core.NewConfig([]int{0, 2}),
	}
	assert.Equal(t, "a\nc\n", a.String())
}

func TestParseStrategy(t *testing.T) {
	base := reducer.Strategy{
		Split:   reducer.Zeller,
		Order:   reducer.SubsetFirst,
		Iter:    reducer.Forward,
		Workers: 1,
		Seed:    7,
	}
	testCases := []struct {
		spec string
		want reducer.Strategy
		fail bool
	}{
		{spec: "", want: base},
		{spec: "balanced", want: reducer.Strategy{
			Split: reducer.Balanced, Order: reducer.SubsetFirst, Iter: reducer.Forward, Workers: 1, Seed: 7}},
		{spec: "::skip:4", want: reducer.Strategy{
			Split: reducer.Zeller, Order: reducer.SubsetFirst, Iter: reducer.Skip, Workers: 4, Seed: 7}},
		{spec: "balanced:complement:backward:2", want: reducer.Strategy{
			Split: reducer.Balanced, Order: reducer.ComplementFirst, Iter: reducer.Backward, Workers: 2, Seed: 7}},
		{spec: "bogus", fail: true},
		{spec: ":bogus", fail: true},
		{spec: "::bogus", fail: true},
		{spec: ":::zero", fail: true},
		{spec: ":::0", fail: true},
		{spec: "a:b:c:d:e", fail: true},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc.spec), func(t *testing.T) {
			st, err := parseStrategy(base, tc.spec)
			if tc.fail {
				assert.NotNil(t, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.want, st)
		})
	}
}

func TestIsArgsn(t *testing.T) {
	assert.NotNil(t, IsArgsn(nil, nil))
	assert.Nil(t, IsArgsn(nil, []string{"input"}))
}
