// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package tools

import (
	"os"
)

// EnvVar is an environment variable recognized by shrinker, with its default
// value and a description shown in the CLI help.
type EnvVar struct {
	Name string
	Defv string
	Desc string
}

var envvars []EnvVar

// RegEnv registers an environment variable with a default value and a
// description. Typically called from init functions.
func RegEnv(name, defv, desc string) {
	envvars = append(envvars, EnvVar{Name: name, Defv: defv, Desc: desc})
}

// GetEnv returns the value of an environment variable or, if unset, the
// default it was registered with.
func GetEnv(name string) string {
	if v, has := os.LookupEnv(name); has {
		return v
	}
	for _, ev := range envvars {
		if ev.Name == name {
			return ev.Defv
		}
	}
	return ""
}

// GetEnvvars returns the registered environment variables in registration
// order.
func GetEnvvars() []EnvVar {
	return envvars
}
