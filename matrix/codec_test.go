// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// celsius exercises the ~float64 branch of the element constraint.
type celsius float64

func TestEncodeLayout(t *testing.T) {
	m := MustDense(t, [][]int{{1, 2, 3}, {-4, 5, 6}})

	var buf bytes.Buffer
	require.NoError(t, matrix.Encode(&buf, m))
	require.Equal(t, "1\t2\t3\t\n-4\t5\t6\t\n", buf.String())
}

func TestWriteToCountsBytes(t *testing.T) {
	m := MustDense(t, [][]int{{10, 2}})

	var buf bytes.Buffer
	n, err := m.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)
	require.Equal(t, "10\t2\t\n", buf.String())
}

// TestEncodeFailingSink maps a rejected write onto ErrUnknown.
func TestEncodeFailingSink(t *testing.T) {
	m := MustNew[int](t, 2, 2)

	err := matrix.Encode(&failingWriter{budget: 0}, m)
	require.ErrorIs(t, err, matrix.ErrUnknown)
	require.ErrorIs(t, err, errSink)

	err = matrix.Encode(&failingWriter{budget: 3}, m)
	require.ErrorIs(t, err, matrix.ErrUnknown)
}

func TestDecode(t *testing.T) {
	m := MustNew[int](t, 2, 2)
	require.NoError(t, matrix.Decode(strings.NewReader("1 1\n2\t2"), m))
	require.True(t, m.Equal(MustDense(t, [][]int{{1, 1}, {2, 2}})))
}

// TestDecodeIgnoresTrailingTokens reads exactly Rows()*Cols() tokens.
func TestDecodeIgnoresTrailingTokens(t *testing.T) {
	m := MustNew[int](t, 1, 2)
	require.NoError(t, matrix.Decode(strings.NewReader("7 8 9 10"), m))
	require.True(t, m.Equal(MustDense(t, [][]int{{7, 8}})))
}

// TestDecodeSequential decodes two matrices stored back to back in one stream.
func TestDecodeSequential(t *testing.T) {
	const input = "1 1\n2 2\n5 6\n7 8\n"

	readers := map[string]func() io.Reader{
		"rune scanner": func() io.Reader { return strings.NewReader(input) },
		"plain reader": func() io.Reader { return struct{ io.Reader }{strings.NewReader(input)} },
	}
	for name, mk := range readers {
		t.Run(name, func(t *testing.T) {
			r := mk()
			a := MustNew[int](t, 2, 2)
			b := MustNew[int](t, 2, 2)

			require.NoError(t, matrix.Decode(r, a))
			require.NoError(t, matrix.Decode(r, b))
			require.True(t, a.Equal(MustDense(t, [][]int{{1, 1}, {2, 2}})), "a:\n%s", a)
			require.True(t, b.Equal(MustDense(t, [][]int{{5, 6}, {7, 8}})), "b:\n%s", b)

			// The stream is drained: a third matrix has nothing left to read.
			err := matrix.Decode(r, MustNew[int](t, 1, 1))
			require.ErrorIs(t, err, matrix.ErrInvalidInput)
		})
	}
}

func TestDecodeInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "too few tokens", input: "1 2 3"},
		{name: "not a number", input: "1 x 3 4"},
		{name: "fraction into int", input: "1 2.5 3 4"},
		{name: "overflow", input: "1 2 3 99999999999999999999"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := MustNew[int](t, 2, 2)
			err := matrix.Decode(strings.NewReader(tc.input), m)
			require.ErrorIs(t, err, matrix.ErrInvalidInput)
		})
	}
}

// TestDecodeFailureLeavesReceiver checks that partial input is never committed.
func TestDecodeFailureLeavesReceiver(t *testing.T) {
	m := MustDense(t, [][]int{{9, 9}, {9, 9}})
	want := m.Clone()

	err := matrix.Decode(strings.NewReader("1 2 3"), m)
	require.ErrorIs(t, err, matrix.ErrInvalidInput)
	require.True(t, m.Equal(want))
}

func TestDecodeUnsignedRejectsNegative(t *testing.T) {
	m := MustNew[uint16](t, 1, 1)
	err := matrix.Decode(strings.NewReader("-1"), m)
	require.ErrorIs(t, err, matrix.ErrInvalidInput)
}

func TestRoundTrip(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		a := MustNew[int](t, 3, 4)
		fillSeq(t, a)

		var buf bytes.Buffer
		require.NoError(t, matrix.Encode(&buf, a))
		b := MustNew[int](t, 3, 4)
		require.NoError(t, matrix.Decode(&buf, b))
		require.True(t, a.Equal(b))
	})

	t.Run("named float", func(t *testing.T) {
		a := MustDense(t, [][]celsius{{-40, 0.1}, {36.6, 1e21}})

		var buf bytes.Buffer
		require.NoError(t, matrix.Encode(&buf, a))
		b := MustNew[celsius](t, 2, 2)
		require.NoError(t, matrix.Decode(&buf, b))
		assert.True(t, a.Equal(b), "encoded:\n%s", buf.String())
	})

	t.Run("float32", func(t *testing.T) {
		a := MustDense(t, [][]float32{{0.1, 3.4028235e38}})

		var buf bytes.Buffer
		require.NoError(t, matrix.Encode(&buf, a))
		b := MustNew[float32](t, 1, 2)
		require.NoError(t, matrix.Decode(&buf, b))
		require.True(t, a.Equal(b))
	})
}

func TestNilCodecOperands(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, matrix.Encode[int](&buf, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.Decode[int](strings.NewReader("1"), nil), matrix.ErrNilMatrix)
}

func TestWriteReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt")
	a := MustDense(t, [][]int64{{1, -2}, {3, 4}, {5, 6}})

	require.NoError(t, matrix.WriteFile(path, a))
	b, err := matrix.ReadFile[int64](path, 3, 2)
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}

func TestReadFileErrors(t *testing.T) {
	_, err := matrix.ReadFile[int](filepath.Join(t.TempDir(), "missing.txt"), 2, 2)
	require.Error(t, err)

	_, err = matrix.ReadFile[int](filepath.Join("testdata", "short2x3.txt"), 2, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidInput)

	_, err = matrix.ReadFile[int](filepath.Join("testdata", "A2x2.txt"), -1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
