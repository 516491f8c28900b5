// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/lvgrad/matrix"
	"github.com/katalvlaran/lvgrad/prng"
)

// tol is the default absolute tolerance for float32 kernel comparisons.
const tol = 1e-5

// mustDense ALLOCATES an r×c *Dense holding vals (or zeros when vals is empty)
// and fails the test on error.
func mustDense(tb testing.TB, r, c int, vals ...float32) *matrix.Dense {
	tb.Helper()
	if len(vals) == 0 {
		m, err := matrix.New(r, c)
		if err != nil {
			tb.Fatalf("New(%d,%d): %v", r, c, err)
		}
		return m
	}
	m, err := matrix.NewFromSlice(r, c, vals)
	if err != nil {
		tb.Fatalf("NewFromSlice(%d,%d): %v", r, c, err)
	}

	return m
}

// randDense returns an r×c matrix filled in [-1,1) from a seeded source.
func randDense(tb testing.TB, r, c int, seed uint64) *matrix.Dense {
	tb.Helper()
	m := mustDense(tb, r, c)
	m.FillRand(prng.New(seed), -1, 1)

	return m
}

// assertClose fails when got and want differ by more than eps anywhere.
func assertClose(tb testing.TB, want, got []float32, eps float64) {
	tb.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, eps)); diff != "" {
		tb.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
