// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"log/slog"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// CanvasClass marks the attachment point as a board canvas.
	CanvasClass = "cg-canvas"

	// ManipulableClass marks a board that accepts interaction.
	ManipulableClass = "manipulable"
)

// Build clears root and builds the board tree under it according to cfg,
// returning the handles of the new nodes. root must be an element that is
// part of a document and can hold children; otherwise an [*AttachmentError]
// is returned. An invalid cfg returns a [*ConfigError]. On error, root is
// left untouched.
//
// Build must not be called concurrently on the same root; see [Canvas]
// for a root that serializes its rebuilds.
func Build(root *html.Node, cfg Config) (*Elements, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkAttachable(root); err != nil {
		return nil, err
	}
	cfg = cfg.clone()

	clearChildren(root)
	AddClass(root, CanvasClass)
	for _, c := range Colors {
		ToggleClass(root, c.orientationClass(), c == cfg.Orientation)
	}
	ToggleClass(root, ManipulableClass, !cfg.ViewOnly)

	e := &Elements{wrap: root, config: cfg}
	e.container = appendElement(root, "cg-container")
	e.board = appendElement(e.container, "cg-board")

	if cfg.Drawable.Visible {
		shapes := newShapesLayer(cfg.brushes())
		custom := newCustomSVGsLayer()
		auto := newElement("cg-auto-pieces")
		e.container.AppendChild(shapes)
		e.container.AppendChild(custom)
		e.container.AppendChild(auto)
		e.shapes = handleOf(shapes)
		e.customSVGs = handleOf(custom)
		e.autoPieces = handleOf(auto)
	}

	if cfg.Draggable.Enabled {
		ghost := newElement("piece", "ghost")
		SetVisible(ghost, false)
		e.container.AppendChild(ghost)
		e.ghost = handleOf(ghost)
	}

	slog.Debug("canvas: built board tree",
		"orientation", cfg.Orientation,
		"viewOnly", cfg.ViewOnly,
		"overlays", e.HasOverlays(),
		"ghost", e.ghost.Present())
	return e, nil
}

// cannotHoldChildren are the HTML elements whose content model
// does not allow the board tree as children: void elements, and
// elements whose content is raw or escapable text when serialized.
var cannotHoldChildren = map[atom.Atom]bool{
	atom.Area:      true,
	atom.Base:      true,
	atom.Br:        true,
	atom.Col:       true,
	atom.Embed:     true,
	atom.Hr:        true,
	atom.Img:       true,
	atom.Input:     true,
	atom.Keygen:    true,
	atom.Link:      true,
	atom.Meta:      true,
	atom.Param:     true,
	atom.Source:    true,
	atom.Track:     true,
	atom.Wbr:       true,
	atom.Script:    true,
	atom.Style:     true,
	atom.Textarea:  true,
	atom.Title:     true,
	atom.Iframe:    true,
	atom.Noembed:   true,
	atom.Noframes:  true,
	atom.Noscript:  true,
	atom.Plaintext: true,
	atom.Xmp:       true,
}

// checkAttachable returns an [*AttachmentError] if the board
// tree cannot be built under n.
func checkAttachable(n *html.Node) error {
	fail := func(reason string) error {
		return &AttachmentError{Node: describeNode(n), Reason: reason}
	}
	if n == nil {
		return fail("root is nil")
	}
	if n.Type != html.ElementNode {
		return fail("root is not an element")
	}
	if n.Namespace != "" {
		return fail("root is in the " + n.Namespace + " namespace")
	}
	a := n.DataAtom
	if a == 0 {
		a = atom.Lookup([]byte(n.Data))
	}
	if cannotHoldChildren[a] {
		return fail("element cannot hold children")
	}
	top := n
	for top.Parent != nil {
		top = top.Parent
	}
	if top.Type != html.DocumentNode {
		return fail("root is not mounted in a document")
	}
	return nil
}

// Canvas is a mounted attachment point that serializes the
// rebuilds of its board tree. It is safe for concurrent use.
type Canvas struct {
	mu       sync.Mutex
	root     *html.Node
	elements *Elements
}

// Mount returns a new [Canvas] for the given root, which must
// satisfy the same conditions as the root of [Build].
// The root is not modified until the first [Canvas.Rebuild].
func Mount(root *html.Node) (*Canvas, error) {
	if err := checkAttachable(root); err != nil {
		return nil, err
	}
	return &Canvas{root: root}, nil
}

// Rebuild builds the board tree for cfg, replacing any previous tree.
// If it fails, the previous tree and [Canvas.Elements] are kept.
func (c *Canvas) Rebuild(cfg Config) (*Elements, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, err := Build(c.root, cfg)
	if err != nil {
		return nil, err
	}
	c.elements = e
	return e, nil
}

// Elements returns the elements of the last successful
// [Canvas.Rebuild], or nil if there has not been one.
func (c *Canvas) Elements() *Elements {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elements
}

// Root returns the attachment point of the canvas.
func (c *Canvas) Root() *html.Node {
	return c.root
}
