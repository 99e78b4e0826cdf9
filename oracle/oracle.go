// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package oracle contains the test oracles that judge whether a candidate
// configuration still reproduces the target failure.
package oracle

import (
	"context"

	"shrink/core"
)

// Outcome represents the verdict of one oracle evaluation.
type Outcome int

//go:generate go run golang.org/x/tools/cmd/stringer -type=Outcome
const (
	// Undefined represents an evaluation without verdict
	Undefined Outcome = iota
	// Fail means the candidate reproduces the target failure (interesting)
	Fail
	// Pass means the candidate does not reproduce the failure
	Pass
	// Unresolved means the oracle was inconclusive (timeout, crash, spawn error)
	Unresolved
)

// Result is a pair of Outcome and the raw oracle output.
type Result struct {
	Outcome Outcome
	Output  string
}

// Tool interface consists of one function to evaluate a configuration and
// return a result. Implementations must be safe for concurrent use; every
// evaluation runs in its own work directory.
type Tool interface {
	Test(ctx context.Context, cfg core.Config) (Result, error)
}

//go:generate go run golang.org/x/tools/cmd/stringer -type=ID
type ID int

const (
	// UnknownID is an unknown oracle
	UnknownID ID = iota
	// CommandID is the external test-command oracle
	CommandID
	// MockID is the scripted oracle used in tests
	MockID
)

// ParseID maps an oracle name to its ID.
func ParseID(s string) ID {
	switch s {
	case "command":
		return CommandID
	case "mock":
		return MockID
	default:
		return UnknownID
	}
}
