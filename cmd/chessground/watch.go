// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/chessground/base/errors"
	"github.com/fsnotify/fsnotify"
)

// fileWatcher watches the config and css files of a previewer.
// The directories of the files are watched, since editors often
// replace files instead of writing them.
type fileWatcher struct {
	watcher    *fsnotify.Watcher
	configFile string
	cssFile    string
}

// newFileWatcher starts watching the config and css files of p.
func (p *previewer) newFileWatcher() (*fileWatcher, error) {
	configFile, err := absPath(p.opts.configFile)
	if err != nil {
		return nil, err
	}
	cssFile, err := absPath(p.opts.cssFile)
	if err != nil {
		return nil, err
	}
	if configFile == "" && cssFile == "" {
		return nil, fmt.Errorf("-watch needs a -config or -css file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, fn := range []string{configFile, cssFile} {
		if fn == "" {
			continue
		}
		if err := watcher.Add(filepath.Dir(fn)); err != nil {
			watcher.Close()
			return nil, err
		}
	}
	return &fileWatcher{watcher: watcher, configFile: configFile, cssFile: cssFile}, nil
}

// watchFiles rebuilds the board whenever the config or css file
// is written, until ctx is done.
func (p *previewer) watchFiles(ctx context.Context) error {
	fw, err := p.newFileWatcher()
	if err != nil {
		return err
	}
	return p.watchLoop(ctx, fw)
}

// watchLoop handles the events of fw until ctx is done,
// and then closes it.
func (p *previewer) watchLoop(ctx context.Context, fw *fileWatcher) error {
	defer fw.watcher.Close()
	slog.Info("watching for changes", "config", fw.configFile, "css", fw.cssFile)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			name := filepath.Clean(event.Name)
			switch name {
			case fw.cssFile:
				if errors.Log(p.loadDocument()) != nil {
					continue
				}
			case fw.configFile:
			default:
				continue
			}
			slog.Debug("file changed", "file", name, "op", event.Op)
			errors.Log(p.render())
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}

// absPath returns the cleaned absolute form of fn, or "" if fn is "".
func absPath(fn string) (string, error) {
	if fn == "" {
		return "", nil
	}
	return filepath.Abs(fn)
}
