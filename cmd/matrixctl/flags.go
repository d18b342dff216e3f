package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// shape is a "RxC" flag value.
type shape struct {
	rows, cols int
}

var _ pflag.Value = (*shape)(nil)

func (s *shape) String() string {
	if s.rows == 0 && s.cols == 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", s.rows, s.cols)
}

// Set parses "RxC" (also "R,C"); both parts must be positive integers.
func (s *shape) Set(v string) error {
	lower := strings.ToLower(v)
	sep := "x"
	if strings.Contains(lower, ",") {
		sep = ","
	}
	parts := strings.Split(lower, sep)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return fmt.Errorf("shape %q: want ROWSxCOLS", v)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || r <= 0 {
		return fmt.Errorf("shape %q: rows must be a positive integer", v)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || c <= 0 {
		return fmt.Errorf("shape %q: columns must be a positive integer", v)
	}
	s.rows, s.cols = r, c

	return nil
}

func (s *shape) Type() string { return "shape" }

// addShapeFlag registers a required shape flag on cmd.
func addShapeFlag(cmd *cobra.Command, target *shape, name, usage string) {
	cmd.Flags().Var(target, name, usage)
	_ = cmd.MarkFlagRequired(name)
}
