// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"shrink/core"
	"shrink/logger"
	"shrink/oracle"
	"shrink/tools"
)

var testCmd = cobra.Command{
	Use:   "test [flags] <input>",
	Short: "Evaluates the test command once on the full input",
	Long: `Evaluates the test command once on the full, unreduced input and reports
the verdict. Use it to validate an oracle before starting a reduction:
a reduction only makes progress if the full input fails.`,
	Args: IsArgsn,
	RunE: testRun,

	DisableFlagsInUseLine: true,
}

func init() {
	flags := testCmd.PersistentFlags()
	flags.StringVar(&reduceFlags.csvFile, "csv-log", "", "CSV file to append the final result to")
	addOracleFlags(flags)
	rootCmd.AddCommand(&testCmd)
}

func testRun(_ *cobra.Command, args []string) (err error) {
	var (
		fn    = args[0]
		ts    = time.Now()
		units core.Units
	)
	defer func() {
		csvReport{
			name:         fn,
			oracle:       getOracleID(),
			duration:     time.Since(ts),
			initialUnits: len(units),
			finalUnits:   len(units),
			tests:        1,
			err:          err,
		}.save(reduceFlags.csvFile)
	}()

	if err = tools.FileExists(fn); err != nil {
		return verror(internalError, err)
	}
	data, rerr := os.ReadFile(fn)
	if rerr != nil {
		return verror(internalError, rerr)
	}

	units, err = tokenize(string(data), reduceFlags.atom)
	if err != nil {
		return verror(internalError, err)
	}

	tool, terr := newTool(getOracleID(), fn, units)
	if terr != nil {
		return terr
	}

	r, rerr2 := tool.Test(context.Background(), core.FullConfig(len(units)))
	if rerr2 != nil {
		return verror(oracleError, rerr2)
	}

	if r.Output != "" {
		logger.Println()
		logger.Println("== OUTPUT ====================================")
		logger.Println()
		logger.Println(r.Output)
	}
	logger.Printf("Verdict\n  %v\n\n", r.Outcome)
	logger.Printf("Elapsed time\n  %v\n", time.Since(ts))
	logger.Println()

	if r.Outcome != oracle.Fail {
		return vfail(r.Outcome, fmt.Errorf("input does not reproduce the failure"))
	}
	return nil
}
