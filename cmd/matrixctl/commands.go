package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvmatrix/internal/fixture"
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/spf13/cobra"
)

// errVerifyFailed is returned when at least one manifest case mismatches.
var errVerifyFailed = errors.New("verify: expected results differ")

type binaryOp[T matrix.Number] func(a, b *matrix.Dense[T]) (*matrix.Dense[T], error)

func newAddCmd(a *app) *cobra.Command {
	var sh shape
	cmd := &cobra.Command{
		Use:   "add LHS RHS",
		Short: "Print the element-wise sum of two matrices of the same shape",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch a.element() {
			case elementFloat:
				return runBinary[float64](a, out, "add", matrix.Add[float64], args[0], sh, args[1], sh)
			default:
				return runBinary[int64](a, out, "add", matrix.Add[int64], args[0], sh, args[1], sh)
			}
		},
	}
	addShapeFlag(cmd, &sh, "shape", "shape of both operands, ROWSxCOLS")

	return cmd
}

func newMulCmd(a *app) *cobra.Command {
	var lhs, rhs shape
	cmd := &cobra.Command{
		Use:   "mul LHS RHS",
		Short: "Print the matrix product LHS * RHS",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch a.element() {
			case elementFloat:
				return runBinary[float64](a, out, "mul", matrix.Mul[float64], args[0], lhs, args[1], rhs)
			default:
				return runBinary[int64](a, out, "mul", matrix.Mul[int64], args[0], lhs, args[1], rhs)
			}
		},
	}
	addShapeFlag(cmd, &lhs, "lhs", "shape of the left operand, ROWSxCOLS")
	addShapeFlag(cmd, &rhs, "rhs", "shape of the right operand, ROWSxCOLS")

	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var sh shape
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Decode a matrix and print it in the canonical text layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch a.element() {
			case elementFloat:
				return runShow[float64](a, out, args[0], sh)
			default:
				return runShow[int64](a, out, args[0], sh)
			}
		},
	}
	addShapeFlag(cmd, &sh, "shape", "shape of the matrix, ROWSxCOLS")

	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify MANIFEST",
		Short: "Evaluate every case of a fixtures manifest against its expected matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch a.element() {
			case elementFloat:
				return runVerify[float64](a, out, args[0])
			default:
				return runVerify[int64](a, out, args[0])
			}
		},
	}
}

func readOperand[T matrix.Number](a *app, path string, sh shape) (*matrix.Dense[T], error) {
	a.log.Debug("read matrix", "file", path, "rows", sh.rows, "cols", sh.cols)

	return matrix.ReadFile[T](path, sh.rows, sh.cols)
}

func runBinary[T matrix.Number](a *app, out io.Writer, name string, op binaryOp[T],
	lhsPath string, lhsShape shape, rhsPath string, rhsShape shape,
) error {
	lhs, err := readOperand[T](a, lhsPath, lhsShape)
	if err != nil {
		return err
	}
	rhs, err := readOperand[T](a, rhsPath, rhsShape)
	if err != nil {
		return err
	}
	res, err := op(lhs, rhs)
	if err != nil {
		return err
	}
	a.log.Info(name, "rows", res.Rows(), "cols", res.Cols())

	return matrix.Encode(out, res)
}

func runShow[T matrix.Number](a *app, out io.Writer, path string, sh shape) error {
	m, err := readOperand[T](a, path, sh)
	if err != nil {
		return err
	}

	return matrix.Encode(out, m)
}

func runVerify[T matrix.Number](a *app, out io.Writer, path string) error {
	m, err := fixture.Load(path)
	if err != nil {
		return err
	}
	results, err := fixture.RunAll[T](m)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Pass {
			fmt.Fprintf(out, "PASS\t%s\n", r.Case.Name)
			continue
		}
		failed++
		fmt.Fprintf(out, "FAIL\t%s\n--- got\n%s--- want\n%s", r.Case.Name, r.Got, r.Want)
		a.log.Warn("case mismatch", "case", r.Case.Name, "op", string(r.Case.Op))
	}
	a.log.Info("verify done", "cases", len(results), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d cases: %w", failed, len(results), errVerifyFailed)
	}

	return nil
}
