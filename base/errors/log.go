// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"log/slog"
	"runtime"
	"strconv"
)

// Log takes the given error and logs it to [slog.Error] if it is non-nil,
// adding the caller's information. It returns the error so that it can be
// used in-line with return statements.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 takes the given value and error and logs the error to [slog.Error]
// if it is non-nil, returning the value either way. It is useful for
// in-line handling of functions that return a value and an error.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must panics if the given error is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns the given value and panics if the given error is non-nil.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Ignore does nothing with the given error. It exists to explicitly mark
// an error as deliberately ignored.
func Ignore(err error) {}

// Ignore1 returns the given value and does nothing with the given error.
func Ignore1[T any](v T, err error) T {
	return v
}

// CallerInfo returns string information about the caller of the function
// that called CallerInfo, in "file:line funcname" form.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return file + ":" + strconv.Itoa(line) + " " + runtime.FuncForPC(pc).Name()
}
