// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/spf13/cobra"

	"shrink/core"
	"shrink/reducer"
)

// IsArgsn ensures there are 1 or more arguments
func IsArgsn(_ *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("no input file specified")
	}
	return nil
}

// tokenize cuts the input into the units of reduction. Line units keep their
// newline so concatenating any subset reproduces a well-formed file.
func tokenize(content, atom string) (core.Units, error) {
	switch atom {
	case "line":
		units := strings.SplitAfter(content, "\n")
		if n := len(units); n > 0 && units[n-1] == "" {
			units = units[:n-1]
		}
		return units, nil
	case "char":
		var units core.Units
		for _, r := range content {
			units = append(units, string(r))
		}
		return units, nil
	default:
		return nil, fmt.Errorf("unknown atom '%s'", atom)
	}
}

// artifact renders the retained units of a configuration as the output file
// content.
type artifact struct {
	units core.Units
	cfg   core.Config
}

func (a artifact) String() string {
	return a.units.Concat(a.cfg)
}

// parseStrategy derives a strategy from base by overriding the fields named in
// spec, a colon-separated "split:order:iter:workers" tuple where empty fields
// keep the base value, eg "zeller::skip:4" or ":complement".
func parseStrategy(base reducer.Strategy, spec string) (reducer.Strategy, error) {
	var st reducer.Strategy
	if err := copier.Copy(&st, &base); err != nil {
		return st, err
	}

	parts := strings.Split(spec, ":")
	if len(parts) > 4 {
		return st, fmt.Errorf("invalid strategy '%s'", spec)
	}
	for i, p := range parts {
		if p == "" {
			continue
		}
		switch i {
		case 0:
			if st.Split = reducer.ParseSplitMode(p); st.Split == reducer.UnknownSplit {
				return st, fmt.Errorf("unknown split mode '%s'", p)
			}
		case 1:
			if st.Order = reducer.ParseCheckOrder(p); st.Order == reducer.UnknownOrder {
				return st, fmt.Errorf("unknown check order '%s'", p)
			}
		case 2:
			if st.Iter = reducer.ParseIterOrder(p); st.Iter == reducer.UnknownIter {
				return st, fmt.Errorf("unknown iteration order '%s'", p)
			}
		case 3:
			w, err := strconv.Atoi(p)
			if err != nil || w < 1 {
				return st, fmt.Errorf("invalid worker count '%s'", p)
			}
			st.Workers = w
		}
	}
	return st, nil
}
