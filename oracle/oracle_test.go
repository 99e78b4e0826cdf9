// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package oracle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	testCases := []struct {
		name string
		id   ID
	}{
		{name: "command", id: CommandID},
		{name: "mock", id: MockID},
		{name: "", id: UnknownID},
		{name: "bogus", id: UnknownID},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			assert.Equal(t, tc.id, ParseID(tc.name))
		})
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "Fail", Fail.String())
	assert.Equal(t, "Pass", Pass.String())
	assert.Equal(t, "Unresolved", Unresolved.String())
}
