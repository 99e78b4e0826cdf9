// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package tools

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"shrink/logger"
)

var (
	dockerCmd   = "docker"
	dockerImage = "ghcr.io/shrink/shrinker"
	dockerTag   = "latest"
	useDocker   = "false"
)

func init() {
	RegEnv("SHRINKER_DOCKER", useDocker, "Run the test command inside a Docker container")
	RegEnv("SHRINKER_DOCKER_IMAGE", dockerImage, "Docker image with the test environment")
	RegEnv("SHRINKER_DOCKER_TAG", dockerTag, "Docker image tag")
	RegEnv("SHRINKER_DOCKER_VOLUMES", "", "Comma-separated list of additional volumes to mount")
}

// DockerPull pulls the configured test-environment image.
func DockerPull(ctx context.Context) error {
	out, err := RunCmdContext(ctx, dockerCmd, []string{"pull",
		fmt.Sprintf("%s:%s", GetEnv("SHRINKER_DOCKER_IMAGE"), GetEnv("SHRINKER_DOCKER_TAG")),
	}, nil)
	fmt.Println(out)
	return err
}

// DockerRun runs args in the test-environment container. With no args an
// interactive shell is started instead.
func DockerRun(ctx context.Context, args []string, volumes []string) error {
	var (
		cmd = []string{"run", "--rm"}
	)

	// are we running outside docker?
	if FileExists("/.dockerenv") == nil {
		return fmt.Errorf("running inside docker. Set SHRINKER_DOCKER=false")
	}

	// get user/group flags
	if u, err := dockerUserGroup(ctx); err != nil {
		return err
	} else if len(u) > 0 {
		cmd = append(cmd, u...)
	}

	// find out current directory
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	// mount current directory
	cmd = append(cmd, "-v", fmt.Sprintf("%s:%s", cwd, cwd))

	if v := GetEnv("SHRINKER_DOCKER_VOLUMES"); v != "" {
		volumes = append(volumes, strings.Split(v, ",")...)
	}

	for _, v := range volumes {
		if abs, err := filepath.Abs(v); err != nil {
			return fmt.Errorf("could not find volume path '%s': %v", v, err)
		} else {
			cmd = append(cmd, "-v", fmt.Sprintf("%s:%s", abs, abs))
		}
	}

	// better hostname
	cmd = append(cmd, "--hostname", "shrinker")

	// set working directory to be current directory
	cmd = append(cmd, "-w", cwd)

	// docker opts
	if len(args) == 0 {
		cmd = append(cmd, "-it")
	}

	// docker image
	cmd = append(cmd, fmt.Sprintf("%s:%s", GetEnv("SHRINKER_DOCKER_IMAGE"), GetEnv("SHRINKER_DOCKER_TAG")))

	// user arguments
	cmd = append(cmd, args...)

	// log complete command
	logger.Debugf("%v\n", append([]string{dockerCmd}, cmd...))

	// create command, start output readers and start
	if len(args) != 0 {
		c := exec.CommandContext(ctx, dockerCmd, cmd...)
		if err := startReaders(c); err != nil {
			return err
		}
		if err := c.Start(); err != nil {
			return err
		}
		return c.Wait()
	}
	// if no commands, use pty
	// first set a better prompt
	cmd = append(cmd, "/bin/sh", "-c", "echo \"export PS1='\\h:\\w % '\" > /tmp/bashrc && env PS1='' bash --rcfile /tmp/bashrc")

	// create command and start pty (OS-dependent code)
	return dockerInteractive(exec.CommandContext(ctx, dockerCmd, cmd...))
}

func startReader(r io.Reader, w io.Writer) {
	scanner := bufio.NewScanner(r)
	go func() {
		for scanner.Scan() {
			fmt.Fprintln(w, scanner.Text())
		}
	}()
}

func startReaders(c *exec.Cmd) error {
	inWriter, err := c.StdinPipe()
	if err != nil {
		return err
	}
	startReader(os.Stdin, inWriter)

	outReader, err := c.StdoutPipe()
	if err != nil {
		return err
	}
	startReader(outReader, os.Stdout)
	errReader, err := c.StderrPipe()
	if err != nil {
		return err
	}
	startReader(errReader, os.Stderr)
	return nil
}
