// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides functions for reading and writing
// YAML files into Go values.
package yamlx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Read reads the given value from the given [io.Reader] in YAML format.
// An empty input leaves v unchanged.
func Read(v any, r io.Reader) error {
	err := yaml.NewDecoder(r).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ReadBytes reads the given value from the given bytes in YAML format.
func ReadBytes(v any, data []byte) error {
	return Read(v, bytes.NewReader(data))
}

// Open reads the given value from the given YAML file.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Read(v, f); err != nil {
		return fmt.Errorf("yamlx.Open: %s: %w", filename, err)
	}
	return nil
}

// Write writes the given value to the given [io.Writer] in YAML format.
func Write(v any, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// WriteBytes writes the given value to YAML bytes.
func WriteBytes(v any) ([]byte, error) {
	var b bytes.Buffer
	err := Write(v, &b)
	return b.Bytes(), err
}

// Save writes the given value to the given YAML file.
func Save(v any, filename string) error {
	b, err := WriteBytes(v)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
