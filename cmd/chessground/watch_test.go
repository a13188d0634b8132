// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchRebuildsOnConfigChange(t *testing.T) {
	cfgFile := writeFile(t, "board.toml", "orientation = \"white\"\n")
	out := filepath.Join(t.TempDir(), "board.html")
	o, err := parseFlags([]string{"-config", cfgFile, "-o", out})
	require.NoError(t, err)
	p, err := newPreviewer(o)
	require.NoError(t, err)
	require.NoError(t, p.render())

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(b), "orientation-white")

	fw, err := p.newFileWatcher()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.watchLoop(ctx, fw) }()

	require.NoError(t, os.WriteFile(cfgFile, []byte("orientation = \"black\"\n"), 0666))
	assert.Eventually(t, func() bool {
		b, err := os.ReadFile(out)
		return err == nil && strings.Contains(string(b), "orientation-black")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch loop did not stop after cancel")
	}
}

func TestWatchNeedsFiles(t *testing.T) {
	o, err := parseFlags([]string{"-watch"})
	require.NoError(t, err)
	p, err := newPreviewer(o)
	require.NoError(t, err)
	_, err = p.newFileWatcher()
	assert.ErrorContains(t, err, "-watch needs")
	assert.ErrorContains(t, p.watchFiles(context.Background()), "-watch needs")
}
