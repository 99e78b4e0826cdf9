// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package oracle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shrink/core"
	"shrink/logger"
	"shrink/tools"
)

const fileMode = 0600

// Command evaluates configurations by materializing the retained units as a
// file and invoking an external test command on it. Each invocation gets a
// fresh work directory, so concurrent evaluations never share scratch space.
type Command struct {
	argv     []string
	units    core.Units
	fileName string
	dir      string
	timeout  time.Duration
	invert   bool
	unexit   int
}

// CommandOption configures a Command oracle.
type CommandOption func(*Command)

// WithTimeout bounds each invocation; on expiry the process is terminated and
// the outcome is Unresolved. Zero disables the bound.
func WithTimeout(d time.Duration) CommandOption {
	return func(c *Command) { c.timeout = d }
}

// WithInvertedExitCode flips the polarity: exit code 0 becomes Fail
// (interesting) and any other non-distinguished code becomes Pass.
func WithInvertedExitCode() CommandOption {
	return func(c *Command) { c.invert = true }
}

// WithUnresolvedExitCode declares a distinguished exit code that maps to
// Unresolved. Zero disables the mapping.
func WithUnresolvedExitCode(code int) CommandOption {
	return func(c *Command) { c.unexit = code }
}

// WithWorkDir sets the parent directory for the per-invocation work
// directories. Empty means the system temp directory.
func WithWorkDir(dir string) CommandOption {
	return func(c *Command) { c.dir = dir }
}

// WithFileName sets the name of the materialized artifact inside the work
// directory. Defaults to the base name of the original input.
func WithFileName(fn string) CommandOption {
	return func(c *Command) { c.fileName = fn }
}

// NewCommand returns a Command oracle running argv. Occurrences of "{}" in
// argv are replaced with the artifact path; if argv contains no placeholder
// the path is appended as the last argument.
func NewCommand(argv []string, units core.Units, opts ...CommandOption) (*Command, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty test command")
	}
	c := &Command{
		argv:     argv,
		units:    units,
		fileName: "input",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Test implements Tool. Per-candidate problems (spawn failures, timeouts,
// oracle crashes) are reported as Unresolved; the error return is non-nil only
// for spawn failures so the caller can escalate a fully unusable oracle.
func (c *Command) Test(ctx context.Context, cfg core.Config) (Result, error) {
	dir, err := os.MkdirTemp(c.dir, "shrinker-*")
	if err != nil {
		return Result{Outcome: Unresolved}, err
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			logger.Warnf("could not remove work directory: %v", err)
		}
	}()

	fn := filepath.Join(dir, c.fileName)
	if err := os.WriteFile(fn, []byte(c.units.Concat(cfg)), fileMode); err != nil {
		return Result{Outcome: Unresolved}, err
	}

	tctx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		tctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd, args := c.argv[0], substitute(c.argv[1:], fn)
	out, code, err := tools.RunTestContext(tctx, cmd, args,
		[]string{"SHRINKER_TEST_CASE=" + fn}, dir)

	switch {
	case ctx.Err() != nil:
		// cancelled from above; the result must never be committed
		return Result{Outcome: Unresolved, Output: out}, ctx.Err()
	case tctx.Err() == context.DeadlineExceeded:
		logger.Debugf("test timed out after %v", c.timeout)
		return Result{Outcome: Unresolved, Output: out}, nil
	case err != nil:
		return Result{Outcome: Unresolved, Output: out}, err
	}
	return Result{Outcome: c.mapExitCode(code), Output: out}, nil
}

func (c *Command) mapExitCode(code int) Outcome {
	switch {
	case c.unexit != 0 && code == c.unexit:
		return Unresolved
	case code < 0:
		// terminated by a signal, the oracle itself crashed
		return Unresolved
	case (code == 0) != c.invert:
		return Pass
	default:
		return Fail
	}
}

func substitute(args []string, fn string) []string {
	out := make([]string, 0, len(args)+1)
	found := false
	for _, a := range args {
		if strings.Contains(a, "{}") {
			a = strings.ReplaceAll(a, "{}", fn)
			found = true
		}
		out = append(out, a)
	}
	if !found {
		out = append(out, fn)
	}
	return out
}
