// Package lvmatrix is a small, generic numeric matrix toolkit.
//
// 🚀 What is inside?
//
//	• matrix/         : Dense[T] grid, Add, Mul, Equal, tab-separated text codec
//	• internal/fixture: YAML manifests describing text fixtures and cases
//	• cmd/matrixctl   : CLI: add, mul, show, verify
//
// ✨ Guarantees
//
//   - Value semantics – Clone and Assign never share storage
//   - No panics on user input – sentinel errors, matched with errors.Is
//   - Pure Go – no cgo
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]int{{1, 1}, {2, 2}})
//	b, _ := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})
//	p, _ := matrix.Mul(a, b) // [[4 6] [8 12]]
//
//	go get github.com/katalvlaran/lvmatrix
package lvmatrix
