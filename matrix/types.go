// SPDX-License-Identifier: MIT

// Package matrix: element constraint.
// This file intentionally contains ONLY the type-parameter constraint shared
// by Dense and the package-level kernels.
package matrix

// Number is the set of element types a Dense may hold.
// Every member supports zero-initialization, +, * and == natively; overflow
// and rounding follow the element type's own arithmetic with no extra checks.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
