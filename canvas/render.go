// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Render writes the markup of n and its descendants to w.
func Render(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}

// RenderString returns the markup of n and its descendants.
func RenderString(n *html.Node) (string, error) {
	var b strings.Builder
	if err := Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}
