// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/chessground/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestConfigDefaults(t *testing.T) {
	o, err := parseFlags(nil)
	require.NoError(t, err)
	cfg, err := o.config()
	require.NoError(t, err)
	assert.Equal(t, canvas.DefaultConfig(), cfg)
}

func TestConfigFileAndFlags(t *testing.T) {
	fn := writeFile(t, "board.toml", `
orientation = "black"
view_only = true

[drawable]
visible = false

[draggable]
enabled = true
show_ghost = true
`)
	o, err := parseFlags([]string{"-config", fn, "-orientation", "white", "-show-ghost=false"})
	require.NoError(t, err)
	cfg, err := o.config()
	require.NoError(t, err)
	assert.Equal(t, canvas.White, cfg.Orientation)
	assert.True(t, cfg.ViewOnly)
	assert.False(t, cfg.Drawable.Visible)
	assert.True(t, cfg.Draggable.Enabled)
	assert.False(t, cfg.Draggable.ShowGhost)
}

func TestConfigYAMLFile(t *testing.T) {
	fn := writeFile(t, "board.yml", "orientation: black\ndraggable:\n  enabled: false\n")
	o, err := parseFlags([]string{"-config", fn})
	require.NoError(t, err)
	cfg, err := o.config()
	require.NoError(t, err)
	assert.Equal(t, canvas.Black, cfg.Orientation)
	assert.False(t, cfg.Draggable.Enabled)
	assert.True(t, cfg.Drawable.Visible)
}

func TestConfigErrors(t *testing.T) {
	o, err := parseFlags([]string{"-config", writeFile(t, "board.json", "{}")})
	require.NoError(t, err)
	_, err = o.config()
	assert.ErrorContains(t, err, "unsupported config file type")

	o, err = parseFlags([]string{"-orientation", "sideways"})
	require.NoError(t, err)
	_, err = o.config()
	assert.ErrorIs(t, err, canvas.ErrInvalidConfig)

	_, err = parseFlags([]string{"extra"})
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	css := writeFile(t, "board.css", "cg-board { background: green; }\n.missing { color: red; }\n")
	out := filepath.Join(t.TempDir(), "board.html")
	o, err := parseFlags([]string{"-orientation", "black", "-drawable=false", "-css", css, "-o", out})
	require.NoError(t, err)
	require.NoError(t, run(o))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	doc, err := html.Parse(strings.NewReader(string(b)))
	require.NoError(t, err)

	wrap, err := canvas.SelectFirst(doc, "div.cg-wrap.cg-canvas.orientation-black.manipulable")
	require.NoError(t, err)
	assert.True(t, wrap.Present())
	for sel, want := range map[string]int{
		"cg-container > cg-board": 1,
		"svg":                     0,
		"piece.ghost":             1,
		"head > style":            1,
	} {
		ns, err := canvas.Select(doc, sel)
		require.NoError(t, err)
		assert.Len(t, ns, want, sel)
	}
}

func TestRenderLogsAbsoluteOutput(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	wd, err := os.Getwd()
	require.NoError(t, err)

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	o, err := parseFlags([]string{"-o", "board.html"})
	require.NoError(t, err)
	require.NoError(t, run(o))
	assert.FileExists(t, filepath.Join(wd, "board.html"))
	assert.Contains(t, buf.String(), "output="+filepath.Join(wd, "board.html"))
}
