// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"shrink/logger"
	"shrink/oracle"
)

const fileMode = 0600

type csvReport struct {
	name         string
	oracle       oracle.ID
	strategy     string
	duration     time.Duration
	initialUnits int
	finalUnits   int
	tests        int
	cacheHits    int
	err          error
}

const (
	dateTime = "2006-01-02 15:04:05"
)

func (csv csvReport) save(filename string) {
	if filename == "" {
		return
	}
	withHeader := false
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		withHeader = true
	}

	fp, err := os.OpenFile(filename,
		os.O_APPEND|os.O_WRONLY|os.O_CREATE, fileMode)
	if err != nil {
		logger.Fatalf("could not open file: %v", filename)
	}
	defer func() {
		if err := fp.Close(); err != nil {
			logger.Warnf("error closing file: %v", err)
		}
	}()

	if withHeader {
		fmt.Fprint(fp, "# date, filename, oracle, strategy, duration, initial_units, final_units, tests, cache_hits, error_type, exit_code")
		fmt.Fprintln(fp)
	}

	fmt.Fprintf(fp, "%s, %s, %v, %v, %v, %d, %d, %d, %d, %s, %d\n",
		time.Now().Format(dateTime),
		csv.name,
		csv.oracle,
		csv.strategy,
		csv.duration,
		csv.initialUnits,
		csv.finalUnits,
		csv.tests,
		csv.cacheHits,
		getErrorType(csv.err),
		getErrorCode(csv.err))
}
