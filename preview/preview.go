// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preview provides standalone HTML documents that a board
// can be built into and written out, for previewing the board tree
// and its stylesheets outside of a browser application.
package preview

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/chessground/canvas"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WrapClass is the class of the attachment point in a preview document.
const WrapClass = "cg-wrap"

// NewDocument returns a new HTML document with the given title and the
// element that a board should be built into.
func NewDocument(title string) (doc, wrap *html.Node, err error) {
	src := `<!DOCTYPE html><html><head><meta charset="utf-8"><title>` +
		html.EscapeString(title) +
		`</title></head><body><div class="` + WrapClass + `"></div></body></html>`
	doc, err = html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, nil, fmt.Errorf("preview: parsing document: %w", err)
	}
	h, err := canvas.SelectFirst(doc, "div."+WrapClass)
	if err != nil {
		return nil, nil, err
	}
	wrap, ok := h.Node()
	if !ok {
		return nil, nil, fmt.Errorf("preview: document has no %s element", WrapClass)
	}
	return doc, wrap, nil
}

// AddStylesheet parses the given CSS and adds it to the head of doc
// in a style element. It returns the parsed stylesheet.
func AddStylesheet(doc *html.Node, style string) (*css.Stylesheet, error) {
	ss, err := parser.Parse(style)
	if err != nil {
		return nil, fmt.Errorf("preview: parsing stylesheet: %w", err)
	}
	h, err := canvas.SelectFirst(doc, "head")
	if err != nil {
		return nil, err
	}
	head, ok := h.Node()
	if !ok {
		return nil, fmt.Errorf("preview: document has no head")
	}
	el := &html.Node{Type: html.ElementNode, Data: "style", DataAtom: atom.Style}
	el.AppendChild(&html.Node{Type: html.TextNode, Data: style})
	head.AppendChild(el)
	return ss, nil
}

// UnmatchedSelectors returns the selectors of the qualified rules of ss,
// including those nested in at-rules, that match no node of doc.
// Selectors that cannot be evaluated, such as those with
// pseudo-classes, are skipped.
func UnmatchedSelectors(doc *html.Node, ss *css.Stylesheet) []string {
	var res []string
	var walk func(rules []*css.Rule)
	walk = func(rules []*css.Rule) {
		for _, rule := range rules {
			if rule.Kind == css.AtRule {
				walk(rule.Rules)
				continue
			}
			for _, sel := range rule.Selectors {
				ns, err := canvas.Select(doc, sel)
				if err != nil {
					slog.Debug("preview: skipping selector", "selector", sel, "err", err)
					continue
				}
				if len(ns) == 0 {
					res = append(res, sel)
				}
			}
		}
	}
	walk(ss.Rules)
	return res
}
