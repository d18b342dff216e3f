// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"os"
)

// ReadFile allocates a rows×cols matrix and decodes it from the text file at path.
// The file carries no shape header; the caller supplies the dimensions.
func ReadFile[T Number](path string, rows, cols int) (*Dense[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile %s: %w", path, err)
	}
	defer f.Close()

	if err = Decode(f, m); err != nil {
		return nil, fmt.Errorf("ReadFile %s: %w", path, err)
	}

	return m, nil
}

// WriteFile encodes m into the file at path, truncating any previous content.
func WriteFile[T Number](path string, m *Dense[T]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("WriteFile %s: %w: %w", path, ErrUnknown, cerr)
		}
	}()

	if err = Encode(f, m); err != nil {
		return fmt.Errorf("WriteFile %s: %w", path, err)
	}

	return nil
}
