// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/chessground/base/iox/tomlx"
	"cogentcore.org/chessground/base/iox/yamlx"
	"cogentcore.org/chessground/canvas"
	"github.com/mitchellh/go-homedir"
)

// options are the parsed command line options.
type options struct {
	configFile  string
	orientation string
	viewOnly    bool
	drawable    bool
	draggable   bool
	showGhost   bool
	cssFile     string
	output      string
	watch       bool
	vv          bool
	verbose     bool
	quiet       bool

	// set are the names of the flags given on the command line,
	// which override the config file.
	set map[string]bool
}

// parseFlags parses the given command line arguments.
func parseFlags(args []string) (*options, error) {
	o := &options{set: map[string]bool{}}
	fs := flag.NewFlagSet("chessground", flag.ContinueOnError)
	fs.StringVar(&o.configFile, "config", "", "TOML or YAML `file` to read the board configuration from")
	fs.StringVar(&o.orientation, "orientation", "", "side of the board facing the viewer: white or black")
	fs.BoolVar(&o.viewOnly, "view-only", false, "disable interaction affordances")
	fs.BoolVar(&o.drawable, "drawable", true, "create the shape overlay layers")
	fs.BoolVar(&o.draggable, "draggable", true, "create the drag preview ghost")
	fs.BoolVar(&o.showGhost, "show-ghost", true, "show the ghost while dragging")
	fs.StringVar(&o.cssFile, "css", "", "CSS `file` to embed in the document")
	fs.StringVar(&o.output, "o", "", "output `file` (default stdout)")
	fs.BoolVar(&o.watch, "watch", false, "rebuild whenever the config or css file changes")
	fs.BoolVar(&o.vv, "vv", false, "show debug messages")
	fs.BoolVar(&o.verbose, "v", false, "show info messages")
	fs.BoolVar(&o.quiet, "q", false, "only show errors")
	fs.Usage = func() {
		w := fs.Output()
		_, _ = fmt.Fprintf(w, "Chessground builds the node tree of a chess board and writes it as HTML.\n")
		_, _ = fmt.Fprintf(w, "Usage:\n")
		_, _ = fmt.Fprintf(w, "\tchessground [flags]\n")
		_, _ = fmt.Fprintf(w, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	for _, p := range []*string{&o.configFile, &o.cssFile, &o.output} {
		exp, err := homedir.Expand(*p)
		if err != nil {
			return nil, err
		}
		*p = exp
	}
	return o, nil
}

// openConfig reads cfg from the given file, choosing
// the format from its extension.
func openConfig(cfg *canvas.Config, filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlx.Open(cfg, filename)
	case ".yaml", ".yml":
		return yamlx.Open(cfg, filename)
	default:
		return fmt.Errorf("unsupported config file type %q: must be .toml, .yaml or .yml", filename)
	}
}

// config returns the board configuration: the defaults,
// then the config file, then the flags given on the command line.
func (o *options) config() (canvas.Config, error) {
	cfg := canvas.DefaultConfig()
	if o.configFile != "" {
		if err := openConfig(&cfg, o.configFile); err != nil {
			return cfg, err
		}
	}
	if o.set["orientation"] {
		if err := cfg.Orientation.SetString(o.orientation); err != nil {
			return cfg, err
		}
	}
	if o.set["view-only"] {
		cfg.ViewOnly = o.viewOnly
	}
	if o.set["drawable"] {
		cfg.Drawable.Visible = o.drawable
	}
	if o.set["draggable"] {
		cfg.Draggable.Enabled = o.draggable
	}
	if o.set["show-ghost"] {
		cfg.Draggable.ShowGhost = o.showGhost
	}
	return cfg, cfg.Validate()
}

// stylesheet returns the contents of the css file, if any.
func (o *options) stylesheet() (string, error) {
	if o.cssFile == "" {
		return "", nil
	}
	b, err := os.ReadFile(o.cssFile)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
