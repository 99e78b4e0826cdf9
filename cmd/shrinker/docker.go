// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"shrink/tools"
)

const dockerDoc = `
Runs arguments in shrinker Docker container.
`

var dockerFlags = struct {
	volumes []string
	pull    bool
}{}

var dockerCmd = &cobra.Command{
	Use:   "shrinker docker [flags] -- <command> [args]",
	Short: "Runs command in shrinker Docker container. Pass no command to start the interactive shell.",
	Long:  dockerDoc,
	RunE:  dockerRun,

	DisableFlagsInUseLine: true,
	SilenceUsage:          true,
	SilenceErrors:         true,
}

var dockerEmptyCmd = &cobra.Command{
	Use:   "docker [flags] -- <command> [args]",
	Short: "Runs command in shrinker Docker container",
	RunE: func(cmd *cobra.Command, args []string) error {
		os.Args = os.Args[1:]
		return dockerCmd.Execute()
	},

	DisableFlagParsing:    true,
	DisableFlagsInUseLine: true,
}

func init() {
	dockerEmptyCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		cmd.InheritedFlags().VisitAll(func(f *pflag.Flag) {
			f.Hidden = true
		})
		cmd.Parent().HelpFunc()(cmd, args)
	})
	rootCmd.AddCommand(dockerEmptyCmd)
	flags := dockerCmd.Flags()
	flags.StringSliceVarP(&dockerFlags.volumes, "volume", "v", []string{}, "mount volumes")
	flags.BoolVar(&dockerFlags.pull, "pull", false, "Pull Docker image before running")
}

func dockerRun(_ *cobra.Command, args []string) error {
	if dockerFlags.pull {
		if err := tools.DockerPull(context.Background()); err != nil {
			return err
		}
	}
	return tools.DockerRun(context.Background(), args, dockerFlags.volumes)
}
