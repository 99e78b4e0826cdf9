// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"shrink/oracle"
)

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, 0, getErrorCode(nil))
	assert.Equal(t, 2, getErrorCode(vfail(oracle.Pass, errors.New("pass"))))
	assert.Equal(t, 1, getErrorCode(verror(internalError, errors.New("boom"))))
	assert.Equal(t, -1, getErrorCode(errors.New("plain")))
}

func TestErrorTypes(t *testing.T) {
	assert.Equal(t, "none", getErrorType(nil))
	assert.Equal(t, "noRepro", getErrorType(vfail(oracle.Pass, errors.New("pass"))))
	assert.Equal(t, "internalError", getErrorType(verror(internalError, errors.New("boom"))))
	assert.Equal(t, "internalError", getErrorType(errors.New("plain")))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "", getErrorMessage(nil))
	// reduction failures carry their message in the exit code only
	assert.Equal(t, "", getErrorMessage(vfail(oracle.Pass, errors.New("pass"))))
	assert.Equal(t, "boom", getErrorMessage(verror(internalError, errors.New("boom"))))
}
