// SPDX-License-Identifier: MIT

// Package fixture loads YAML manifests that describe matrix text fixtures
// and the arithmetic cases checked against them.
//
// The .txt fixtures carry no shape header, so the manifest is the single
// place where each file's rows and columns are recorded:
//
//	matrices:
//	  A: {file: A2x2.txt, rows: 2, cols: 2}
//	cases:
//	  - {name: addition, op: add, lhs: A, rhs: B, expect: sum}
//
// File paths are resolved relative to the manifest's directory.
package fixture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/katalvlaran/lvmatrix/matrix"
	"gopkg.in/yaml.v3"
)

// ErrManifest marks a structurally invalid manifest.
var ErrManifest = errors.New("fixture: invalid manifest")

// Op names an arithmetic operation a case evaluates.
type Op string

// Supported operations.
const (
	OpAdd Op = "add"
	OpMul Op = "mul"
)

// Entry describes one matrix file and its shape.
type Entry struct {
	File string `yaml:"file"`
	Rows int    `yaml:"rows"`
	Cols int    `yaml:"cols"`
}

// Case is a single "lhs op rhs == expect" check.
type Case struct {
	Name   string `yaml:"name"`
	Op     Op     `yaml:"op"`
	LHS    string `yaml:"lhs"`
	RHS    string `yaml:"rhs"`
	Expect string `yaml:"expect"`
}

// Manifest is the decoded fixtures file.
type Manifest struct {
	Matrices map[string]Entry `yaml:"matrices"`
	Cases    []Case           `yaml:"cases"`

	dir string // directory the manifest was loaded from
}

// Result is the outcome of one evaluated case.
type Result struct {
	Case Case
	Pass bool
	Got  string // text dump of the computed matrix
	Want string // text dump of the expected matrix
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	m, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.dir = filepath.Dir(path)

	return m, nil
}

// Parse decodes and validates a manifest held in memory.
// Relative file paths resolve against the working directory.
func Parse(raw []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

func (m *Manifest) validate() error {
	names := make([]string, 0, len(m.Matrices))
	for name := range m.Matrices {
		names = append(names, name)
	}
	sort.Strings(names) // deterministic first error

	for _, name := range names {
		e := m.Matrices[name]
		if e.File == "" {
			return fmt.Errorf("matrix %q: missing file: %w", name, ErrManifest)
		}
		if e.Rows <= 0 || e.Cols <= 0 {
			return fmt.Errorf("matrix %q: shape %dx%d must be positive: %w", name, e.Rows, e.Cols, ErrManifest)
		}
	}
	for i, c := range m.Cases {
		switch c.Op {
		case OpAdd, OpMul:
		default:
			return fmt.Errorf("case %d %q: unknown op %q: %w", i, c.Name, c.Op, ErrManifest)
		}
		for _, ref := range []string{c.LHS, c.RHS, c.Expect} {
			if _, ok := m.Matrices[ref]; !ok {
				return fmt.Errorf("case %d %q: unknown matrix %q: %w", i, c.Name, ref, ErrManifest)
			}
		}
	}

	return nil
}

// Path returns the file path of the named matrix, resolved against the
// manifest directory.
func (m *Manifest) Path(name string) (string, error) {
	e, ok := m.Matrices[name]
	if !ok {
		return "", fmt.Errorf("unknown matrix %q: %w", name, ErrManifest)
	}
	if filepath.IsAbs(e.File) || m.dir == "" {
		return e.File, nil
	}

	return filepath.Join(m.dir, e.File), nil
}

// Resolve reads the named matrix with the element type T.
func Resolve[T matrix.Number](m *Manifest, name string) (*matrix.Dense[T], error) {
	path, err := m.Path(name)
	if err != nil {
		return nil, err
	}
	e := m.Matrices[name]

	return matrix.ReadFile[T](path, e.Rows, e.Cols)
}

// Run evaluates c and compares the result with its expected matrix.
// A mismatch is reported through Result.Pass; errors are reserved for
// unreadable fixtures and arithmetic failures.
func Run[T matrix.Number](m *Manifest, c Case) (Result, error) {
	res := Result{Case: c}
	lhs, err := Resolve[T](m, c.LHS)
	if err != nil {
		return res, fmt.Errorf("case %q: %w", c.Name, err)
	}
	rhs, err := Resolve[T](m, c.RHS)
	if err != nil {
		return res, fmt.Errorf("case %q: %w", c.Name, err)
	}
	want, err := Resolve[T](m, c.Expect)
	if err != nil {
		return res, fmt.Errorf("case %q: %w", c.Name, err)
	}

	var got *matrix.Dense[T]
	switch c.Op {
	case OpAdd:
		got, err = matrix.Add(lhs, rhs)
	case OpMul:
		got, err = matrix.Mul(lhs, rhs)
	default:
		err = fmt.Errorf("unknown op %q: %w", c.Op, ErrManifest)
	}
	if err != nil {
		return res, fmt.Errorf("case %q: %w", c.Name, err)
	}

	res.Pass = matrix.Equal(got, want)
	res.Got, res.Want = got.String(), want.String()

	return res, nil
}

// RunAll evaluates every case in manifest order and stops at the first error.
func RunAll[T matrix.Number](m *Manifest) ([]Result, error) {
	out := make([]Result, 0, len(m.Cases))
	for _, c := range m.Cases {
		r, err := Run[T](m, c)
		if err != nil {
			return out, err
		}
		out = append(out, r)
	}

	return out, nil
}
