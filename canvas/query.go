// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"fmt"

	"github.com/ericchiang/css"
	"golang.org/x/net/html"
)

// Select returns the nodes under root matching the given CSS selector.
func Select(root *html.Node, selector string) ([]*html.Node, error) {
	sel, err := css.Parse(selector)
	if err != nil {
		return nil, fmt.Errorf("canvas: invalid selector %q: %w", selector, err)
	}
	return sel.Select(root), nil
}

// SelectFirst returns the first node under root matching the given
// CSS selector, as a [Handle] that is absent if nothing matches.
func SelectFirst(root *html.Node, selector string) (Handle, error) {
	ns, err := Select(root, selector)
	if err != nil || len(ns) == 0 {
		return Handle{}, err
	}
	return handleOf(ns[0]), nil
}
