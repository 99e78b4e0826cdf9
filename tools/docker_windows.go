// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package tools

import (
	"context"
	"fmt"
	"os/exec"
)

func dockerUserGroup(_ context.Context) ([]string, error) {
	return nil, fmt.Errorf("functionality not supported")
}

func dockerInteractive(_ *exec.Cmd) error {
	return fmt.Errorf("functionality not supported")
}
