// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// BlurFilterID is the id of the blur filter in the shapes definitions.
const BlurFilterID = "cg-filter-blur"

// newSVG returns a new detached SVG element with the given tag.
func newSVG(tag string) *html.Node {
	return &html.Node{
		Type:      html.ElementNode,
		Data:      tag,
		DataAtom:  atom.Lookup([]byte(tag)),
		Namespace: "svg",
	}
}

// appendSVG adds a new SVG element with the given tag
// as the last child of par.
func appendSVG(par *html.Node, tag string) *html.Node {
	n := newSVG(tag)
	par.AppendChild(n)
	return n
}

// ArrowheadID returns the id of the arrowhead marker of the brush
// with the given key.
func ArrowheadID(key string) string {
	return "arrowhead-" + key
}

// newDefs returns the reusable definitions block of the shapes layer:
// a blur filter and an arrowhead marker for each brush.
func newDefs(brushes []Brush) *html.Node {
	defs := newSVG("defs")
	filter := setAttrs(appendSVG(defs, "filter"), "id", BlurFilterID)
	setAttrs(appendSVG(filter, "feGaussianBlur"), "stdDeviation", "0.019")
	for _, b := range brushes {
		refX := "2.05"
		if strings.HasPrefix(b.Key, "hilite") {
			refX = "1.86"
		}
		marker := setAttrs(appendSVG(defs, "marker"),
			"id", ArrowheadID(b.Key),
			"orient", "auto",
			"overflow", "visible",
			"markerWidth", "4",
			"markerHeight", "4",
			"refX", refX,
			"refY", "2",
			"cgKey", b.Key,
		)
		setAttrs(appendSVG(marker, "path"), "d", "M0,0 V4 L3,2 Z", "fill", b.Color)
	}
	return defs
}

// newShapesLayer returns the svg layer for user-drawn shapes,
// holding the definitions block followed by an empty drawing group.
func newShapesLayer(brushes []Brush) *html.Node {
	svg := setAttrs(newSVG("svg"),
		"class", "cg-shapes",
		"viewBox", "-4 -4 8 8",
		"preserveAspectRatio", "xMidYMid slice",
	)
	svg.AppendChild(newDefs(brushes))
	appendSVG(svg, "g")
	return svg
}

// newCustomSVGsLayer returns the svg layer for externally supplied
// custom marks, holding an empty drawing group.
func newCustomSVGsLayer() *html.Node {
	svg := setAttrs(newSVG("svg"),
		"class", "cg-custom-svgs",
		"viewBox", "-3.5 -3.5 8 8",
		"preserveAspectRatio", "xMidYMid slice",
	)
	appendSVG(svg, "g")
	return svg
}
