// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.

package matrix_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// errSink is returned by failingWriter for every write past its budget.
var errSink = errors.New("sink closed")

// MustDense builds a *Dense from literal rows or fails the test.
func MustDense[T matrix.Number](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// MustNew allocates a zero r×c *Dense or fails the test.
func MustNew[T matrix.Number](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.New[T](r, c)
	require.NoError(tb, err)

	return m
}

// MustReadFixture decodes testdata/name into an r×c int matrix.
func MustReadFixture(tb testing.TB, name string, r, c int) *matrix.Dense[int] {
	tb.Helper()
	m, err := matrix.ReadFile[int](filepath.Join("testdata", name), r, c)
	require.NoError(tb, err)

	return m
}

// failingWriter accepts budget bytes, then rejects every write with errSink.
type failingWriter struct{ budget int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.budget <= 0 {
		return 0, errSink
	}
	if len(p) > w.budget {
		n := w.budget
		w.budget = 0
		return n, errSink
	}
	w.budget -= len(p)

	return len(p), nil
}

// fillSeq writes 1,2,3,... in row-major order.
func fillSeq(tb testing.TB, m *matrix.Dense[int]) {
	tb.Helper()
	v := 1
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(tb, m.Set(i, j, v))
			v++
		}
	}
}
