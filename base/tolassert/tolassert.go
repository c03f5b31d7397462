// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (in other words, near equality).
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Number is the set of number types supported by tolassert.
type Number interface {
	~float32 | ~float64
}

// Equal asserts that the given two numbers are equal within a
// tolerance of 0.001.
func Equal[T Number](t *testing.T, expected, actual T, msgAndArgs ...any) bool {
	return EqualTol(t, expected, actual, 0.001, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are equal within the
// given tolerance.
func EqualTol[T Number](t *testing.T, expected, actual, tolerance T, msgAndArgs ...any) bool {
	t.Helper()
	d := expected - actual
	if d < 0 {
		d = -d
	}
	if d <= tolerance {
		return true
	}
	return assert.Equal(t, expected, actual, msgAndArgs...)
}
