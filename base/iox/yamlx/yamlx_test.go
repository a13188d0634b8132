// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSettings struct {
	Name    string   `yaml:"name"`
	Sizes   []int    `yaml:"sizes"`
	Visible bool     `yaml:"visible"`
	Tags    []string `yaml:"tags,omitempty"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.yaml")
	in := &testSettings{Name: "board", Sizes: []int{8, 10}, Visible: true}
	require.NoError(t, Save(in, fn))

	out := &testSettings{}
	require.NoError(t, Open(out, fn))
	assert.Equal(t, in, out)
}

func TestReadEmpty(t *testing.T) {
	s := &testSettings{Name: "keep"}
	require.NoError(t, ReadBytes(s, nil))
	assert.Equal(t, "keep", s.Name)
}

func TestOpenMissing(t *testing.T) {
	assert.Error(t, Open(&testSettings{}, filepath.Join(t.TempDir(), "missing.yaml")))
}
