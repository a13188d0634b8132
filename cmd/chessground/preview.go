// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/chessground/base/errors"
	"cogentcore.org/chessground/canvas"
	"cogentcore.org/chessground/preview"
	"github.com/aymerick/douceur/css"
	"golang.org/x/net/html"
)

// previewer owns the preview document and rebuilds
// the board in it for the current options.
type previewer struct {
	opts   *options
	doc    *html.Node
	canvas *canvas.Canvas
	sheet  *css.Stylesheet
}

func newPreviewer(opts *options) (*previewer, error) {
	p := &previewer{opts: opts}
	if err := p.loadDocument(); err != nil {
		return nil, err
	}
	return p, nil
}

// loadDocument creates a new document with the current stylesheet
// and mounts a canvas on it.
func (p *previewer) loadDocument() error {
	doc, wrap, err := preview.NewDocument("chessground")
	if err != nil {
		return err
	}
	style, err := p.opts.stylesheet()
	if err != nil {
		return err
	}
	var sheet *css.Stylesheet
	if style != "" {
		if sheet, err = preview.AddStylesheet(doc, style); err != nil {
			return err
		}
	}
	c, err := canvas.Mount(wrap)
	if err != nil {
		return err
	}
	p.doc, p.canvas, p.sheet = doc, c, sheet
	return nil
}

// render rebuilds the board for the current config
// and writes the document.
func (p *previewer) render() error {
	cfg, err := p.opts.config()
	if err != nil {
		return err
	}
	e, err := p.canvas.Rebuild(cfg)
	if err != nil {
		return err
	}
	if p.sheet != nil {
		for _, sel := range preview.UnmatchedSelectors(p.doc, p.sheet) {
			slog.Warn("stylesheet selector matches nothing", "selector", sel)
		}
	}
	if err := p.write(); err != nil {
		return err
	}
	output := p.opts.output
	if output != "" {
		output = errors.Log1(filepath.Abs(output))
	}
	slog.Info("built board",
		"orientation", cfg.Orientation,
		"overlays", e.HasOverlays(),
		"ghost", e.Ghost().Present(),
		"output", output)
	return nil
}

// write writes the document to the output file, or to stdout.
func (p *previewer) write() error {
	if p.opts.output == "" {
		return writeDocument(os.Stdout, p.doc)
	}
	f, err := os.Create(p.opts.output)
	if err != nil {
		return err
	}
	if err := writeDocument(f, p.doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeDocument(w io.Writer, doc *html.Node) error {
	if err := canvas.Render(w, doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
