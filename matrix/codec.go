// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Text serialization of Dense over any io.Writer / io.Reader.
//   - Output layout: every element followed by '\t', a '\n' after each row.
//   - Input layout: whitespace-separated tokens, row-major, no header; the
//     destination shape is fixed by the caller and never inferred.
//
// Determinism:
//   - Fixed i→j traversal in both directions.

package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
)

// Operation name constants for codec error wrapping.
const (
	opEncode = "Encode"
	opDecode = "Decode"
)

// Text format delimiters.
const (
	elemSep = '\t'
	rowSep  = '\n'
)

// countingWriter tracks bytes accepted by the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)

	return n, err
}

// Encode writes m to w in the tab-separated text format.
// Implementation:
//   - Stage 1: buffer output through bufio.Writer.
//   - Stage 2: emit each element followed by '\t'; '\n' closes every row.
//   - Stage 3: flush; any rejected write surfaces as ErrUnknown.
//
// Errors:
//   - ErrNilMatrix (nil m), ErrUnknown (the sink rejected a write).
//
// Complexity:
//   - Time O(r*c), Space O(1) beyond the buffer.
func Encode[T Number](w io.Writer, m *Dense[T]) error {
	_, err := encode(w, m)

	return err
}

// WriteTo implements io.WriterTo using the text format of Encode.
func (m *Dense[T]) WriteTo(w io.Writer) (int64, error) { return encode(w, m) }

func encode[T Number](w io.Writer, m *Dense[T]) (int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opEncode, err)
	}
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if _, err := fmt.Fprint(bw, m.data[i*m.c+j]); err != nil {
				return cw.n, writeErr(i, j, err)
			}
			if err := bw.WriteByte(elemSep); err != nil {
				return cw.n, writeErr(i, j, err)
			}
		}
		if err := bw.WriteByte(rowSep); err != nil {
			return cw.n, writeErr(i, m.c, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return cw.n, matrixErrorf(opEncode, fmt.Errorf("flush: %w: %w", ErrUnknown, err))
	}

	return cw.n, nil
}

func writeErr(row, col int, err error) error {
	return matrixErrorf(opEncode, fmt.Errorf("write (%d,%d): %w: %w", row, col, ErrUnknown, err))
}

// Decode fills the existing cells of m from r in row-major order.
// MAIN DESCRIPTION:
//   - Reads exactly Rows()*Cols() whitespace-separated tokens and stops; at
//     most the delimiter after the last token is consumed, so matrices stored
//     back to back in one stream decode with consecutive calls.
//
// Implementation:
//   - Stage 1: read one token at a time with fmt.Fscan (an io.RuneScanner
//     such as *strings.Reader or *bufio.Reader gets its delimiter unread).
//   - Stage 2: parse each token strictly as T into a scratch buffer.
//   - Stage 3: commit the scratch buffer into m only after every cell parsed.
//
// Behavior highlights:
//   - On failure m keeps its previous contents.
//
// Errors:
//   - ErrNilMatrix (nil m).
//   - ErrInvalidInput (too few tokens, a token that is not a valid T, or a read error).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the scratch buffer.
func Decode[T Number](r io.Reader, m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opDecode, err)
	}

	scratch := make([]T, len(m.data))
	var tok string
	for idx := range scratch {
		if _, err := fmt.Fscan(r, &tok); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return matrixErrorf(opDecode, fmt.Errorf("got %d of %d elements: %w", idx, len(scratch), ErrInvalidInput))
			}
			return matrixErrorf(opDecode, fmt.Errorf("read: %w: %w", ErrInvalidInput, err))
		}
		v, err := parseToken[T](tok)
		if err != nil {
			return matrixErrorf(opDecode, fmt.Errorf("element (%d,%d) %q: %w: %w",
				idx/m.c, idx%m.c, tok, ErrInvalidInput, err))
		}
		scratch[idx] = v
	}
	copy(m.data, scratch)

	return nil
}

// parseToken converts tok into T using the strconv parser matching T's kind
// and bit size, so "1.5" never silently truncates into an integer cell.
func parseToken[T Number](tok string) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	bits := rv.Type().Bits()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(tok, 10, bits)
		if err != nil {
			return v, err
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(tok, 10, bits)
		if err != nil {
			return v, err
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(tok, bits)
		if err != nil {
			return v, err
		}
		rv.SetFloat(f)
	}

	return v, nil
}
