// Copyright (C) 2025 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package logger implements a simple logger with a few error levels.
package logger

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
)

// Level represents the amount of detail in which the log is output.
type Level int

const (
	fatal Level = iota
	// ERROR only log errors
	ERROR
	// WARN only log warnings and errors
	WARN
	// INFO log information, warnings and errors
	INFO
	// DEBUG log as much as possible
	DEBUG
)

var (
	logger *bufio.Writer
	level  Level
)

func init() {
	logger = bufio.NewWriter(os.Stdout)
}

// SetWriter sets the writer to which the output is sent.
// If w is nil, no output is shown.
func SetWriter(w io.Writer) {
	if w == nil {
		logger = nil
		return
	}
	logger = bufio.NewWriter(w)
}

// SetLevel reconfigures the error level of the logger.
func SetLevel(l Level) {
	level = l
}

// Fatal works as Error, but aborts the program.
func Fatal(args ...any) {
	Println(args...)
	os.Exit(1)
}

// Fatalf works as Errorf, but aborts the program.
func Fatalf(format string, args ...any) {
	Printf(format, args...)
	Println()
	os.Exit(1)
}

// Error works as fmt.Print when error level is at least ERROR. It adds a newline at the end.
func Error(args ...any) {
	if logger == nil || level < ERROR {
		return
	}
	Println(args...)
}

// Errorf works as fmt.Printf when error level is at least ERROR. It adds a newline at the end.
func Errorf(format string, args ...any) {
	if logger == nil || level < ERROR {
		return
	}
	Printf(format, args...)
	Println()
}

// Warn works as fmt.Print when error level is WARN. It adds a newline at the end.
func Warn(args ...any) {
	if logger == nil || level < WARN {
		return
	}
	Println(args...)
}

// Warnf works as fmt.Printf when error level is WARN. It adds a newline at the end.
func Warnf(format string, args ...any) {
	if logger == nil || level < WARN {
		return
	}
	Printf(format, args...)
	Println()
}

// Info works as fmt.Print when error level is INFO. It adds a newline at the end.
func Info(args ...any) {
	if logger == nil || level < INFO {
		return
	}
	Println(args...)
}

// Infof works as fmt.Printf when error level is INFO. It adds a newline at the end.
func Infof(format string, args ...any) {
	if logger == nil || level < INFO {
		return
	}
	Printf(format, args...)
	Println()
}

// Debug works as fmt.Print when error level is DEBUG. It adds a newline at the end.
func Debug(args ...any) {
	if logger == nil || level < DEBUG {
		return
	}
	Println(args...)
}

// Debugf works as fmt.Printf when error level is DEBUG. It adds a newline at the end.
func Debugf(format string, args ...any) {
	if logger == nil || level < DEBUG {
		return
	}
	Printf(format, args...)
	Println()
}

// Print works as fmt.Print, but flushes the writer.
func Print(args ...any) {
	fprint(args...)
}

// Println works as fmt.Println, but flushes the writer.
func Println(args ...any) {
	fprintln(args...)
}

// Printf works as fmt.Printf, but flushes the writer.
func Printf(format string, args ...any) {
	fprintf(format, args...)
}

func fprint(args ...any) {
	if logger == nil {
		return
	}
	if _, err := fmt.Fprint(logger, args...); err != nil {
		fail()
	}
	flush()
}

func fprintln(args ...any) {
	if logger == nil {
		return
	}
	if _, err := fmt.Fprintln(logger, args...); err != nil {
		fail()
	}
	flush()
}

func fprintf(format string, args ...any) {
	fprint(fmt.Sprintf(format, args...))
}

func flush() {
	if logger.Flush() != nil {
		fail()
	}
}

func fail() {
	// use fatal instead of panic to make linter happy
	log.Fatal()
}
