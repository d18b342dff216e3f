// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation returns one of these sentinels (possibly wrapped
// with context via %w) and tests check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context such as the operation tag and the
// actual vs expected dimensions is attached at the detection site with
// fmt.Errorf("...: %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> I/O.

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (Row/At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidSize signals an element-wise operation between operands of
	// different shapes, or ragged literal rows.
	ErrInvalidSize = errors.New("matrix: invalid size")

	// ErrInvalidRows signals a product whose shared dimension does not match
	// (a.Cols() != b.Rows()).
	ErrInvalidRows = errors.New("matrix: invalid rows")

	// ErrInvalidInput indicates that decoding ran out of tokens or hit a token
	// that does not parse as the element type.
	ErrInvalidInput = errors.New("matrix: invalid input stream")

	// ErrUnknown marks an unexpected failure of the output sink during encoding.
	ErrUnknown = errors.New("matrix: unexpected output failure")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
