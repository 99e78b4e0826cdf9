// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"shrink/core"
	"shrink/logger"
	"shrink/oracle"
	"shrink/reducer"
	"shrink/tools"
)

var reduceFlags = struct {
	test           string
	atom           string
	fileName       string
	timeout        time.Duration
	invert         bool
	unresolvedExit int

	split       string
	order       string
	iter        string
	parallelism int
	seed        int64
	strategies  []string
	sharedCache bool
	csvFile     string
}{}

var reduceCmd = cobra.Command{
	Use:   "reduce [flags] <input>",
	Short: "Reduces input to a 1-minimal version that still makes the test fail",
	Args:  IsArgsn,
	RunE:  reduceRun,

	DisableFlagsInUseLine: true,
}

func init() {
	tools.RegEnv("SHRINKER_DEFAULT_ATOM", "line", "Default input granularity (line|char)")
	tools.RegEnv("SHRINKER_DEFAULT_PARALLELISM", "1", "Default number of parallel test evaluations")

	flags := reduceCmd.PersistentFlags()
	flags.StringVar(&reduceFlags.csvFile, "csv-log", "", "CSV file to append the final result to")
	flags.StringVar(&reduceFlags.split, "split", "zeller", "split mode (zeller|balanced)")
	flags.StringVar(&reduceFlags.order, "check-order", "subset", "candidate family order (subset|complement)")
	flags.StringVar(&reduceFlags.iter, "iteration", "forward", "chunk traversal order (forward|backward|random|skip)")
	flags.IntVarP(&reduceFlags.parallelism, "parallelism", "j", 0, "number of parallel test evaluations; 0 uses SHRINKER_DEFAULT_PARALLELISM")
	flags.Int64Var(&reduceFlags.seed, "seed", 0, "seed for random iteration; 0 derives one from the clock")
	flags.StringArrayVar(&reduceFlags.strategies, "strategy", nil,
		"additional strategy to race as 'split:order:iter:workers', empty fields\ninherit the base flags; may be repeated")
	flags.BoolVar(&reduceFlags.sharedCache, "shared-cache", true, "share the outcome cache between racing strategies")
	addOracleFlags(flags)
	rootCmd.AddCommand(&reduceCmd)
}

func addOracleFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&reduceFlags.test, "test", "t", "", "test command; occurrences of {} are replaced with the\ncandidate file, otherwise the file is appended")
	flags.StringVar(&reduceFlags.atom, "atom", tools.GetEnv("SHRINKER_DEFAULT_ATOM"), "input granularity (line|char)")
	flags.StringVar(&reduceFlags.fileName, "test-file", "", "name of the candidate file inside the work directory\n(default: base name of the input)")
	flags.DurationVar(&reduceFlags.timeout, "timeout", 0, "timeout per test evaluation, e.g., 1s for 1 second.\nAn evaluation exceeding it counts as unresolved.\ntimeout 0 is equivalent to no timeout")
	flags.BoolVar(&reduceFlags.invert, "invert-exit-code", false, "treat exit code 0 as failing (interesting)")
	flags.IntVar(&reduceFlags.unresolvedExit, "unresolved-exit-code", 0, "exit code mapped to unresolved instead of failing")
	flags.SetInterspersed(false)
}

func reduceRun(_ *cobra.Command, args []string) (err error) {
	var (
		fn       = args[0]
		ts       = time.Now()
		oracleID = getOracleID()
		winner   = -1
		racer    *reducer.Racer
		initial  core.Config
		final    core.Config
	)
	defer func() {
		report := csvReport{
			name:     fn,
			oracle:   oracleID,
			duration: time.Since(ts),
			err:      err,
		}
		if !initial.Empty() {
			report.initialUnits = initial.Len()
		}
		if winner >= 0 {
			report.strategy = fmt.Sprintf("%v", strategyByIndex(winner))
			report.finalUnits = final.Len()
			report.tests = racer.Stats(winner).Count(reducer.Total)
			report.cacheHits = racer.Stats(winner).Count(reducer.CacheHit)
		}
		report.save(reduceFlags.csvFile)
	}()

	if err = tools.FileExists(fn); err != nil {
		return verror(internalError, err)
	}
	data, rerr := os.ReadFile(fn)
	if rerr != nil {
		return verror(internalError, rerr)
	}

	units, uerr := tokenize(string(data), reduceFlags.atom)
	if uerr != nil {
		return verror(internalError, uerr)
	}
	logger.Infof("input '%s': %d units", fn, len(units))

	tool, terr := newTool(oracleID, fn, units)
	if terr != nil {
		return terr
	}

	strategies, serr := buildStrategies()
	if serr != nil {
		return verror(internalError, serr)
	}

	racer, err = reducer.NewRacer(tool, reduceFlags.sharedCache, strategies...)
	if err != nil {
		return verror(internalError, err)
	}

	initial = core.FullConfig(len(units))
	final, winner, err = racer.Run(context.Background(), initial)
	switch {
	case errors.Is(err, reducer.ErrNoRepro):
		logger.Println("the input does not reproduce the failure, nothing to reduce")
		return vfail(oracle.Pass, err)
	case errors.Is(err, reducer.ErrOracleUnusable):
		winner = -1
		return verror(oracleError, err)
	case err != nil:
		winner = -1
		return verror(internalError, err)
	}

	printReport(units, initial, final)
	logger.Printf("Strategy\n  %v\n\n", strategyByIndex(winner))
	logger.Println(racer.Stats(winner))

	out := rootFlags.outputFn
	if out == "" {
		out = fn + ".reduced"
	}
	if err := tools.Dump(artifact{units: units, cfg: final}, out); err != nil {
		return verror(internalError, err)
	}
	logger.Printf("Output written to '%s'\n", out)
	return nil
}

// buildStrategies assembles the racing field: the base strategy from the
// command line flags plus one derived strategy per --strategy flag.
func buildStrategies() ([]reducer.Strategy, error) {
	base := reducer.Strategy{
		Split:   reducer.ParseSplitMode(reduceFlags.split),
		Order:   reducer.ParseCheckOrder(reduceFlags.order),
		Iter:    reducer.ParseIterOrder(reduceFlags.iter),
		Workers: reduceFlags.parallelism,
		Seed:    reduceFlags.seed,
	}
	if base.Split == reducer.UnknownSplit {
		return nil, fmt.Errorf("unknown split mode '%s'", reduceFlags.split)
	}
	if base.Order == reducer.UnknownOrder {
		return nil, fmt.Errorf("unknown check order '%s'", reduceFlags.order)
	}
	if base.Iter == reducer.UnknownIter {
		return nil, fmt.Errorf("unknown iteration order '%s'", reduceFlags.iter)
	}
	if base.Workers == 0 {
		w, err := strconv.Atoi(tools.GetEnv("SHRINKER_DEFAULT_PARALLELISM"))
		if err != nil || w < 1 {
			return nil, fmt.Errorf("invalid SHRINKER_DEFAULT_PARALLELISM")
		}
		base.Workers = w
	}

	strategies := []reducer.Strategy{base}
	for _, spec := range reduceFlags.strategies {
		st, err := parseStrategy(base, spec)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, st)
	}
	return strategies, nil
}

func strategyByIndex(i int) reducer.Strategy {
	strategies, err := buildStrategies()
	if err != nil || i < 0 || i >= len(strategies) {
		return reducer.Strategy{}
	}
	return strategies[i]
}

func newTool(oracleID oracle.ID, inputFn string, units core.Units) (oracle.Tool, error) {
	switch oracleID {
	case oracle.CommandID:
		argv := strings.Fields(reduceFlags.test)
		if len(argv) == 0 {
			return nil, verror(internalError, errors.New("error: no test command given, see --test"))
		}
		opts := []oracle.CommandOption{
			oracle.WithTimeout(reduceFlags.timeout),
			oracle.WithUnresolvedExitCode(reduceFlags.unresolvedExit),
		}
		if reduceFlags.invert {
			opts = append(opts, oracle.WithInvertedExitCode())
		}
		if fn := reduceFlags.fileName; fn != "" {
			opts = append(opts, oracle.WithFileName(fn))
		} else {
			opts = append(opts, oracle.WithFileName(filepath.Base(inputFn)))
		}
		c, err := oracle.NewCommand(argv, units, opts...)
		if err != nil {
			return nil, verror(internalError, err)
		}
		return c, nil
	case oracle.MockID:
		return oracle.GetMock(), nil
	default:
		return nil, verror(internalError, errors.New("error: unknown oracle"))
	}
}
