// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides functions for reading and writing
// TOML files into Go values.
package tomlx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Read reads the given value from the given [io.Reader] in TOML format.
func Read(v any, r io.Reader) error {
	return toml.NewDecoder(r).Decode(v)
}

// ReadBytes reads the given value from the given bytes in TOML format.
func ReadBytes(v any, data []byte) error {
	return Read(v, bytes.NewReader(data))
}

// Open reads the given value from the given TOML file.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Read(v, f); err != nil {
		return fmt.Errorf("tomlx.Open: %s: %w", filename, err)
	}
	return nil
}

// OpenFiles reads the given value from the given TOML files,
// in order, so that later files override values set by earlier ones.
func OpenFiles(v any, filenames ...string) error {
	var errs []error
	for _, fn := range filenames {
		if err := Open(v, fn); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Write writes the given value to the given [io.Writer] in TOML format.
func Write(v any, w io.Writer) error {
	return toml.NewEncoder(w).Encode(v)
}

// WriteBytes writes the given value to TOML bytes.
func WriteBytes(v any) ([]byte, error) {
	var b bytes.Buffer
	err := Write(v, &b)
	return b.Bytes(), err
}

// Save writes the given value to the given TOML file.
func Save(v any, filename string) error {
	b, err := WriteBytes(v)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
