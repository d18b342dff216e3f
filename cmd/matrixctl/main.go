// Command matrixctl adds, multiplies and verifies matrices stored in the
// plain-text fixture format (tab or space separated, one row per line).
//
//	matrixctl add A.txt B.txt --shape 2x2
//	matrixctl mul A.txt B.txt --lhs 2x3 --rhs 3x4
//	matrixctl show A.txt --shape 2x2
//	matrixctl verify testdata/fixtures.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
