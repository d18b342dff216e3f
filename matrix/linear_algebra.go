// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels on Dense: element-wise
// addition, matrix multiplication and value equality. All kernels perform
// fail-fast validation through validators.go and return a freshly allocated
// result; operands are never mutated.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opMul = "Mul"
)

// matrixErrorf wraps err with an operation tag, keeping the cause reachable via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: Single flat loop 0..n-1 over both row-major buffers.
//
// Inputs:
//   - a: left operand.
//   - b: right operand with the same shape as a.
//
// Returns:
//   - *Dense[T]: C[i,j] = A[i,j] + B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrInvalidSize (shape mismatch; the message
//     names b's shape and the expected a's shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for idx := range res.data {
		res.data[idx] = a.data[idx] + b.data[idx]
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop; every C[i,j] starts from T's zero and
//     accumulates A[i,k]*B[k,j] over the shared dimension.
//
// Inputs:
//   - a: left matrix with shape (n × s).
//   - b: right matrix with shape (s × m).
//
// Returns:
//   - *Dense[T]: new matrix with shape (n × m).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrInvalidRows (b.Rows() != a.Cols()).
//
// Complexity:
//   - Time O(n*s*m), Space O(n*m).
//
// Notes:
//   - Overflow and rounding follow T's native arithmetic.
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	n, s, m := a.r, a.c, b.c
	res := &Dense[T]{r: n, c: m, data: make([]T, n*m)}

	var (
		i, j, k int
		sum     T
	)
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			sum = 0 // T's zero
			for k = 0; k < s; k++ {
				sum += a.data[i*s+k] * b.data[k*m+j]
			}
			res.data[i*m+j] = sum
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and equal elements.
// A dimension mismatch yields false, never an error. Two nil matrices are
// equal; a nil and a non-nil one are not.
// Complexity: O(r*c) worst case; stops at the first differing element.
func Equal[T Number](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}
