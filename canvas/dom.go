// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// newElement returns a new detached HTML element with the given
// tag and classes.
func newElement(tag string, classes ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, c := range classes {
		AddClass(n, c)
	}
	return n
}

// appendElement adds a new HTML element with the given tag
// and classes as the last child of par.
func appendElement(par *html.Node, tag string, classes ...string) *html.Node {
	n := newElement(tag, classes...)
	par.AppendChild(n)
	return n
}

// clearChildren removes all children of n.
func clearChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
}

// Attr returns the value of the attribute of n with the given key,
// and whether it is set.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets the attribute of n with the given key to the given value.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr removes the attribute of n with the given key, if set.
func RemoveAttr(n *html.Node, key string) {
	n.Attr = slices.DeleteFunc(n.Attr, func(a html.Attribute) bool {
		return a.Namespace == "" && a.Key == key
	})
}

// setAttrs sets the given key, value pairs on n, in order.
func setAttrs(n *html.Node, kv ...string) *html.Node {
	for i := 0; i+1 < len(kv); i += 2 {
		SetAttr(n, kv[i], kv[i+1])
	}
	return n
}

// Classes returns the classes of n, in order.
func Classes(n *html.Node) []string {
	v, _ := Attr(n, "class")
	return strings.Fields(v)
}

// HasClass returns whether n has the given class.
func HasClass(n *html.Node, class string) bool {
	return slices.Contains(Classes(n), class)
}

// AddClass adds the given class to n if it does not already have it.
func AddClass(n *html.Node, class string) {
	cls := Classes(n)
	if slices.Contains(cls, class) {
		return
	}
	SetAttr(n, "class", strings.Join(append(cls, class), " "))
}

// RemoveClass removes the given class from n. The class attribute
// is removed once it has no classes left.
func RemoveClass(n *html.Node, class string) {
	if _, ok := Attr(n, "class"); !ok {
		return
	}
	cls := slices.DeleteFunc(Classes(n), func(c string) bool { return c == class })
	if len(cls) == 0 {
		RemoveAttr(n, "class")
		return
	}
	SetAttr(n, "class", strings.Join(cls, " "))
}

// ToggleClass adds the given class to n if on is true,
// and removes it otherwise.
func ToggleClass(n *html.Node, class string, on bool) {
	if on {
		AddClass(n, class)
	} else {
		RemoveClass(n, class)
	}
}

// SetVisible sets the visibility declaration of the inline
// style of n, keeping its other declarations.
func SetVisible(n *html.Node, visible bool) {
	val := "hidden"
	if visible {
		val = "visible"
	}
	decls := []string{"visibility: " + val}
	if style, ok := Attr(n, "style"); ok && strings.TrimSpace(style) != "" {
		if !strings.HasSuffix(strings.TrimSpace(style), ";") {
			style += ";"
		}
		parsed, err := parser.ParseDeclarations(style)
		if err != nil {
			slog.Debug("canvas: replacing unparsable inline style", "style", style, "err", err)
		} else {
			decls = decls[:0]
			for _, d := range parsed {
				if strings.EqualFold(d.Property, "visibility") {
					continue
				}
				decls = append(decls, d.Property+": "+d.Value)
			}
			decls = append(decls, "visibility: "+val)
		}
	}
	SetAttr(n, "style", strings.Join(decls, "; "))
}

// IsVisible returns whether the inline style of n leaves it visible.
// Nodes without a visibility declaration, or with a style that
// cannot be parsed, are visible. Keywords are case-insensitive.
func IsVisible(n *html.Node) bool {
	style, ok := Attr(n, "style")
	if !ok {
		return true
	}
	if !strings.HasSuffix(strings.TrimSpace(style), ";") {
		style += ";"
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		slog.Debug("canvas: unparsable inline style", "style", style, "err", err)
		return true
	}
	visible := true
	for _, d := range decls {
		if strings.EqualFold(d.Property, "visibility") {
			v := strings.TrimSpace(d.Value)
			visible = !strings.EqualFold(v, "hidden") && !strings.EqualFold(v, "collapse")
		}
	}
	return visible
}
