// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide an owning row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: Row/At/Set return errors instead of panicking.
//   - Keep value semantics: Clone and Assign never share storage between instances.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; Row: O(c); At/Set: O(1); Clone/Assign: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxRow    = "Row"    // method tag used in error wrappers
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxAssign = "Assign" // method tag used in error wrappers
	ctxNew    = "New"    // ctor tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over the element type T.
//   - r,c hold dimensions (rows, cols); zero is legal and yields an empty grid.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense exclusively owns data; no two instances ever alias the same buffer.
type Dense[T Number] struct {
	r, c int // row and column counts (>=0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[int])(nil)

// New creates an r×c matrix with every element set to T's zero value.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - Zero-sized shapes (0×N, N×0, 0×0) are accepted and hold no elements.
//   - No panics on user errors; returns sentinel errors.
//
// Errors:
//   - ErrInvalidDimensions (negative rows or cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}
	// make() zero-fills deterministically.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewFromRows builds a matrix from literal rows, copying every element.
// An empty outer slice yields a 0×0 matrix.
//
// Errors:
//   - ErrInvalidSize when rows have different lengths.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows[T Number](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	if r == 0 {
		return &Dense[T]{}, nil
	}
	c := len(rows[0])
	m := &Dense[T]{r: r, c: c, data: make([]T, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d columns but expected %d: %w",
				i, len(row), c, ErrInvalidSize)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// rowBoundsErr reports a row index outside [0..r-1].
// The message mirrors the one Row returns so callers see a single wording.
func (m *Dense[T]) rowBoundsErr(index int) error {
	if m.r == 0 {
		return fmt.Errorf("index %d out of range: matrix has no rows: %w", index, ErrOutOfRange)
	}
	return fmt.Errorf("index %d beyond bounds [0..%d]: %w", index, m.r-1, ErrOutOfRange)
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Both axes are validated; public methods wrap the sentinel with context.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, m.rowBoundsErr(row)
	}
	if col < 0 || col >= m.c {
		return 0, fmt.Errorf("column %d beyond bounds [0..%d]: %w", col, m.c-1, ErrOutOfRange)
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// Row returns a copy of row i as a slice of length Cols().
// MAIN DESCRIPTION:
//   - Safe row read; the returned slice never aliases internal storage.
//
// Errors:
//   - ErrOutOfRange when i<0 or i>=Rows(); the message names the index and
//     the valid bound [0..Rows()-1].
//
// Complexity:
//   - Time O(c), Space O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s: %w", ctxRow, m.rowBoundsErr(i))
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with identical shape and data.
// Mutations of the clone never affect the receiver and vice versa.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Assign replaces the receiver's shape and contents with a deep copy of src.
// MAIN DESCRIPTION:
//   - Copy-and-swap: the full replacement is built first, then exchanged
//     with the receiver's state in one step.
//
// Implementation:
//   - Stage 1: identity check; assigning a matrix to itself is a no-op.
//   - Stage 2: validate src and build the replacement via Clone.
//   - Stage 3: swap fields with the replacement; the old buffer goes with it.
//
// Behavior highlights:
//   - On any error the receiver is left exactly as it was.
//
// Errors:
//   - ErrNilMatrix when the receiver or src is nil.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Assign(src *Dense[T]) error {
	if m == nil || src == nil {
		return fmt.Errorf("Dense.%s: %w", ctxAssign, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	tmp := src.Clone()
	m.swap(tmp)

	return nil
}

// swap exchanges the complete state of m and o.
func (m *Dense[T]) swap(o *Dense[T]) {
	m.r, o.r = o.r, m.r
	m.c, o.c = o.c, m.c
	m.data, o.data = o.data, m.data
}

// Equal reports whether o has the same shape and elements as m.
// See the package-level Equal.
func (m *Dense[T]) Equal(o *Dense[T]) bool { return Equal(m, o) }

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
// Complexity: O(r*c).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Not the persisted text format; see Encode for that.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprint(&b, m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
