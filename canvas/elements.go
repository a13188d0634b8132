// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import "golang.org/x/net/html"

// Handle refers to a node of the board tree that may be absent.
// The zero Handle refers to no node. The node can only be reached
// through [Handle.Node], which reports whether it is present.
type Handle struct {
	node *html.Node
}

func handleOf(n *html.Node) Handle {
	return Handle{node: n}
}

// Node returns the node and true if it is present,
// and nil and false otherwise.
func (h Handle) Node() (*html.Node, bool) {
	return h.node, h.node != nil
}

// Present returns whether the handle refers to a node.
func (h Handle) Present() bool {
	return h.node != nil
}

// MustNode returns the node, panicking if it is absent.
func (h Handle) MustNode() *html.Node {
	if h.node == nil {
		panic("canvas: MustNode called on an absent handle")
	}
	return h.node
}

// Is returns whether the handle refers to the given node.
func (h Handle) Is(n *html.Node) bool {
	return h.node != nil && h.node == n
}

// String returns the tag of the node, or "none" if it is absent.
func (h Handle) String() string {
	if h.node == nil {
		return "none"
	}
	return h.node.Data
}

// Elements is the set of node handles produced by [Build]. The nodes
// it refers to are fixed for its lifetime; a new configuration needs
// a new [Build], which replaces every node under the wrap.
//
// The drag controller uses [Elements.Board] and [Elements.Ghost],
// the shape controller uses the three overlay layers, and layout
// uses [Elements.Wrap] and [Elements.Container].
type Elements struct {
	wrap       *html.Node
	container  *html.Node
	board      *html.Node
	shapes     Handle
	customSVGs Handle
	autoPieces Handle
	ghost      Handle
	config     Config
}

// Wrap returns the externally owned attachment point
// that the board was built into.
func (e *Elements) Wrap() *html.Node { return e.wrap }

// Container returns the single child of the wrap
// that holds all of the board content.
func (e *Elements) Container() *html.Node { return e.container }

// Board returns the node that board squares are rendered into.
func (e *Elements) Board() *html.Node { return e.board }

// Shapes returns the svg layer for freehand and arrow shapes.
// It is present iff [DrawableConfig.Visible].
func (e *Elements) Shapes() Handle { return e.shapes }

// CustomSVGs returns the svg layer for externally supplied marks.
// It is present iff [DrawableConfig.Visible].
func (e *Elements) CustomSVGs() Handle { return e.customSVGs }

// AutoPieces returns the container for programmatically driven
// transient shapes. It is present iff [DrawableConfig.Visible].
func (e *Elements) AutoPieces() Handle { return e.autoPieces }

// Ghost returns the drag preview piece. It is present iff
// [DraggableConfig.Enabled], and starts hidden.
func (e *Elements) Ghost() Handle { return e.ghost }

// Config returns a copy of the configuration the elements were built from.
func (e *Elements) Config() Config { return e.config.clone() }

// HasOverlays returns whether the overlay layers are present.
func (e *Elements) HasOverlays() bool {
	return e.shapes.Present()
}

// ShapesDefs returns the definitions block of the shapes layer.
func (e *Elements) ShapesDefs() Handle {
	return childHandle(e.shapes, "defs")
}

// ShapesGroup returns the drawing group of the shapes layer.
func (e *Elements) ShapesGroup() Handle {
	return childHandle(e.shapes, "g")
}

// CustomSVGsGroup returns the drawing group of the custom svg layer.
func (e *Elements) CustomSVGsGroup() Handle {
	return childHandle(e.customSVGs, "g")
}

// childHandle returns the first element child of the node of h
// with the given tag.
func childHandle(h Handle, tag string) Handle {
	n, ok := h.Node()
	if !ok {
		return Handle{}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return handleOf(c)
		}
	}
	return Handle{}
}
