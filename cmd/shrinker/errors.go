// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os/exec"

	"shrink/logger"
	"shrink/oracle"
)

type errorType int

const (
	noRepro       errorType = 2
	internalError errorType = 1
	oracleError   errorType = 1
	noError       errorType = 0
)

func (t errorType) String() string {
	switch t {
	case noRepro:
		return "noRepro"
	case internalError:
		return "internalError"
	default:
		return "noError"
	}
}

type vError struct {
	typ     errorType
	outcome oracle.Outcome
	err     error
}

func vfail(o oracle.Outcome, err error) *vError {
	return &vError{
		typ:     noRepro,
		outcome: o,
		err:     err,
	}
}

func (e *vError) Error() string {
	switch e.typ {
	case noRepro:
		logger.Debugf("%v: %v", e.typ, e.outcome)
		return ""
	default:
		return e.err.Error()
	}
}

func (e *vError) Code() int {
	return int(e.typ)
}

func verror(typ errorType, err error) *vError {
	return &vError{
		typ: typ,
		err: err,
	}
}

func getErrorType(err error) string {
	if err == nil {
		return "none"
	}
	switch e := err.(type) {
	case *vError:
		return fmt.Sprintf("%v", e.typ)
	default:
		return "internalError"
	}
}

func getErrorCode(err error) int {
	if err == nil {
		return 0
	}
	switch e := err.(type) {
	case *vError:
		return e.Code()
	case *exec.ExitError:
		return e.ExitCode()
	default:
		return -1
	}
}

func getErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
