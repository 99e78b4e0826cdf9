// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package oracle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shrink/core"
)

var lines = core.Units{"a\n", "BUG\n", "c\n"}

func sh(script string) []string {
	return []string{"sh", "-c", script}
}

func TestCommandEmptyArgv(t *testing.T) {
	_, err := NewCommand(nil, lines)
	assert.NotNil(t, err)
}

func TestCommandExitCodeMapping(t *testing.T) {
	testCases := []struct {
		script string
		opts   []CommandOption
		want   Outcome
	}{
		{script: "true", want: Pass},
		{script: "exit 1", want: Fail},
		{script: "exit 1", opts: []CommandOption{WithInvertedExitCode()}, want: Pass},
		{script: "true", opts: []CommandOption{WithInvertedExitCode()}, want: Fail},
		{script: "exit 42", opts: []CommandOption{WithUnresolvedExitCode(42)}, want: Unresolved},
		{script: "exit 42", want: Fail},
		{script: "kill -KILL $$", want: Unresolved},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			c, err := NewCommand(sh(tc.script), lines, tc.opts...)
			assert.Nil(t, err)
			r, err := c.Test(context.Background(), core.FullConfig(len(lines)))
			assert.Nil(t, err)
			assert.Equal(t, tc.want, r.Outcome)
		})
	}
}

func TestCommandMaterializesRetainedUnits(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "copy")
	c, err := NewCommand(sh("cp {} "+dest), lines)
	assert.Nil(t, err)

	cfg := core.NewConfig([]int{0, 2})
	r, err := c.Test(context.Background(), cfg)
	assert.Nil(t, err)
	assert.Equal(t, Pass, r.Outcome)

	data, err := os.ReadFile(dest)
	assert.Nil(t, err)
	assert.Equal(t, "a\nc\n", string(data))
}

func TestCommandExportsTestCaseEnv(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "copy")
	c, err := NewCommand([]string{"sh", "-c", `cp "$SHRINKER_TEST_CASE" ` + dest, "shrink"}, lines)
	assert.Nil(t, err)

	_, err = c.Test(context.Background(), core.NewConfig([]int{1}))
	assert.Nil(t, err)

	data, err := os.ReadFile(dest)
	assert.Nil(t, err)
	assert.Equal(t, "BUG\n", string(data))
}

func TestCommandGrepOracle(t *testing.T) {
	c, err := NewCommand(sh("grep -q BUG {}"), lines, WithInvertedExitCode())
	assert.Nil(t, err)

	r, err := c.Test(context.Background(), core.FullConfig(len(lines)))
	assert.Nil(t, err)
	assert.Equal(t, Fail, r.Outcome)

	r, err = c.Test(context.Background(), core.NewConfig([]int{0, 2}))
	assert.Nil(t, err)
	assert.Equal(t, Pass, r.Outcome)
}

func TestCommandTimeout(t *testing.T) {
	c, err := NewCommand(sh("sleep 2"), lines, WithTimeout(50*time.Millisecond))
	assert.Nil(t, err)

	ts := time.Now()
	r, err := c.Test(context.Background(), core.FullConfig(len(lines)))
	assert.Nil(t, err)
	assert.Equal(t, Unresolved, r.Outcome)
	assert.True(t, time.Since(ts) < time.Second)
}

func TestCommandSpawnError(t *testing.T) {
	c, err := NewCommand([]string{"/does/not/exist/oracle"}, lines)
	assert.Nil(t, err)

	r, err := c.Test(context.Background(), core.FullConfig(len(lines)))
	assert.NotNil(t, err)
	assert.Equal(t, Unresolved, r.Outcome)
}

func TestCommandParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := NewCommand(sh("true"), lines)
	assert.Nil(t, err)

	r, err := c.Test(ctx, core.FullConfig(len(lines)))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Unresolved, r.Outcome)
}

func TestCommandAppendsArtifactPath(t *testing.T) {
	c, err := NewCommand([]string{"cat"}, lines, WithFileName("case.txt"))
	assert.Nil(t, err)

	r, err := c.Test(context.Background(), core.FullConfig(len(lines)))
	assert.Nil(t, err)
	assert.Equal(t, Pass, r.Outcome)
	assert.Equal(t, "a\nBUG\nc\n", r.Output)
}

func TestSubstitute(t *testing.T) {
	assert.Equal(t, []string{"-f", "/tmp/x"}, substitute([]string{"-f", "{}"}, "/tmp/x"))
	assert.Equal(t, []string{"-f", "/tmp/x"}, substitute([]string{"-f"}, "/tmp/x"))
	assert.Equal(t, []string{"--in=/tmp/x"}, substitute([]string{"--in={}"}, "/tmp/x"))
}
