// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"shrink/core"
	"shrink/logger"
)

var (
	keptColor    = color.New(color.FgGreen).SprintFunc()
	removedColor = color.New(color.FgRed).SprintFunc()
)

const previewLength = 60

// printReport prints which units of the input survived the reduction, kept
// units in green and removed ones in red, followed by a summary.
func printReport(units core.Units, initial, final core.Config) {
	logger.Println()
	for i, idx := range initial.Indices() {
		unit := preview(units[idx])
		if final.Contains(idx) {
			logger.Printf("[%d] %s %s\n", i, keptColor("+"), keptColor(unit))
		} else {
			logger.Printf("[%d] %s %s\n", i, removedColor("-"), removedColor(unit))
		}
	}
	logger.Println()

	logger.Printf("Units\n  %d -> %d (%d removed)\n\n",
		initial.Len(), final.Len(), initial.Len()-final.Len())
}

func preview(unit string) string {
	s := strconv.Quote(unit)
	if len(s) > previewLength {
		s = fmt.Sprintf("%s... (%d bytes)", s[:previewLength], len(unit))
	}
	return s
}
