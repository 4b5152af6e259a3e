// Copyright (c) 2026, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides assertions for the equality of numbers
// within a tolerance.
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Equal asserts that two numbers are equal within a tolerance of 1e-6.
func Equal[T float32 | float64](t testing.TB, expected, actual T) bool {
	t.Helper()
	return EqualTol(t, expected, actual, 1e-6)
}

// EqualTol asserts that two numbers are equal within the given
// tolerance.
func EqualTol[T float32 | float64](t testing.TB, expected, actual, tol T) bool {
	t.Helper()
	return assert.InDelta(t, float64(expected), float64(actual), float64(tol))
}
