// Package matrix offers a generic, owning, row-major numeric matrix.
//
// The matrix package provides:
//
//   - Dense[T], a rectangular grid over any Number element type with value
//     semantics: Clone and Assign always produce independent storage.
//   - Bounds-checked accessors (Row, At, Set) that return ErrOutOfRange
//     instead of panicking.
//   - Add, Mul and Equal kernels that never mutate their operands.
//   - A plain-text codec (Encode, Decode, ReadFile, WriteFile): tab-separated
//     elements, one row per line, no header.
//
// Errors are package-level sentinels (see errors.go) wrapped with the
// operation tag and the offending dimensions; match them with errors.Is.
//
// A Dense is not safe for concurrent mutation.
//
// See the examples in this package for usage patterns.
package matrix
