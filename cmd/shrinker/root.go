// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the main shrinker program of this project.
package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"

	"shrink/logger"
	"shrink/oracle"
	"shrink/tools"
)

var rootCmd = cobra.Command{
	Use:           "shrinker",
	Short:         "",
	Long:          "",
	SilenceUsage:  true,
	SilenceErrors: true,

	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("run 'shrinker -h' for help")
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch rootFlags.log {
		case "INFO":
			logger.SetLevel(logger.INFO)
		case "WARN":
			logger.SetLevel(logger.WARN)
		default:
			logger.SetLevel(logger.ERROR)
		}
		if rootFlags.debug {
			logger.SetLevel(logger.DEBUG)
		}
		if rootFlags.quiet {
			logger.SetWriter(nil)
		}
	},
}

func init() {
	tools.RegEnv("SHRINKER_DEFAULT_ORACLE", "command", "Default test oracle")

	helpMessage :=
		`shrinker -- Parallel minimization of failure-inducing test inputs`

	helpMessage += "\n\nEnvironment Variables:"
	for _, ev := range tools.GetEnvvars() {
		helpMessage += "\n  " + ev.Name + " " +
			"(default: \"" + ev.Defv + "\")\n\t" + ev.Desc
	}
	rootCmd.Long = helpMessage

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootFlags.log, "log", "ERROR", "log level (ERROR|INFO|WARN)")
	flags.StringVarP(&rootFlags.oracle, "oracle", "c", tools.GetEnv("SHRINKER_DEFAULT_ORACLE"), "test oracle (command|mock)")
	flags.StringVarP(&rootFlags.outputFn, "output", "o", "", "output file for the reduced input")
	flags.BoolVarP(&rootFlags.debug, "debug", "d", false, "set debug mode")
	flags.BoolVarP(&rootFlags.quiet, "quiet", "q", false, "do not produce output")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

var reExitStatus = regexp.MustCompile("^exit status [0-9]+$")

func getOracleID() oracle.ID {
	return oracle.ParseID(rootFlags.oracle)
}

var rootFlags struct {
	log      string
	debug    bool
	outputFn string
	oracle   string
	quiet    bool
}

type errCode struct {
	err  error
	code int
}

func handlePanic() {
	e := recover()
	if e == nil {
		return
	}
	exit, ok := e.(errCode)
	if !ok {
		panic(e)
	}
	if exit.err != nil {
		logger.Printf("panic: %v\n", exit.err)
	}
}

func main() {
	if !rootFlags.debug {
		defer handlePanic()
	}
	if err := rootCmd.Execute(); err != nil {
		var (
			code = getErrorCode(err)
			msg  = getErrorMessage(err)
		)

		if match := reExitStatus.MatchString(msg); !match && msg != "" {
			logger.Println(msg)
		}
		os.Exit(code)
	}
}
