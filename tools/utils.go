// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tools contains helpers to run external commands and to move files
// around, shared by the oracle adapters and the CLI.
package tools

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"shrink/logger"
)

const fileMode = 0600

// RunCmd runs a command line with arguments and environment variable assignments
func RunCmd(cmdl string, args, env []string) (string, error) {
	return RunCmdContext(context.Background(), cmdl, args, env)
}

// RunCmdContext runs a command line with arguments and environment variable assignments and a context
func RunCmdContext(ctx context.Context, cmdl string, args, env []string) (string, error) {
	logger.Debug(append(append(env, cmdl), args...))
	cmd := exec.CommandContext(ctx, cmdl, args...)
	cmd.Env = append(os.Environ(), env...)
	out, err := cmd.CombinedOutput()

	sout := string(out)
	if err == nil {
		return sout, nil
	}
	if ctx.Err() == context.Canceled || ctx.Err() == context.DeadlineExceeded {
		return sout, nil
	}
	if err, ok := err.(*exec.Error); ok {
		return sout, err
	}
	if err, ok := err.(*exec.ExitError); ok {
		// remove newline of output
		if end := len(sout); end > 0 && sout[end-1] == '\n' {
			sout = sout[:len(sout)-1]
		}
		switch {
		case sout != "" && fmt.Sprintf("%v", err) != "exit status 1":
			return sout, err
		case sout != "":
			return sout, fmt.Errorf("%v", sout)
		default:
		}
		return sout, err
	}
	return sout, fmt.Errorf("unknown error: %v", err)
}

// RunTestContext runs a test command in dir and returns its combined output
// and exit code. Unlike RunCmdContext it never folds the exit code into the
// error: oracles classify candidates by exit code, so the code must survive
// even when the command also printed output. A negative code means the
// process was terminated by a signal or by context cancellation; a non-nil
// error means the process could not be started at all.
func RunTestContext(ctx context.Context, cmdl string, args, env []string, dir string) (string, int, error) {
	logger.Debug(append(append(env, cmdl), args...))
	cmd := exec.CommandContext(ctx, cmdl, args...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()

	sout := string(out)
	if err == nil {
		return sout, 0, nil
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return sout, ee.ExitCode(), nil
	}
	return sout, -1, err
}

// MockFileExistsErr is a mock error returned by FileExists in tests
var MockFileExistsErr error

// FileExists returns nil if a file exists otherwise an error
func FileExists(fn string) error {
	if MockFileExistsErr != nil {
		return MockFileExistsErr
	}
	if _, err := os.Stat(fn); os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", fn)
	}
	return nil
}

// Dump writes the string representation of m to a file.
func Dump(m fmt.Stringer, fn string) error {
	logger.Debugf("Dump file '%s'", fn)
	out, err := os.OpenFile(fn,
		os.O_TRUNC|os.O_WRONLY|os.O_CREATE, fileMode)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			logger.Warnf("error closing file: %v", err)
		}
	}()
	_, err = fmt.Fprint(out, m)
	return err
}
