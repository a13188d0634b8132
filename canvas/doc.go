// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package canvas builds the node tree of a chess board widget.
//
// [Build] clears an attachment point, marks it with the board
// orientation and interactivity classes, and creates:
//
//	.cg-canvas (the attachment point)
//	  cg-container
//	    cg-board
//	    svg.cg-shapes      (if drawable)
//	      defs
//	      g
//	    svg.cg-custom-svgs (if drawable)
//	      g
//	    cg-auto-pieces     (if drawable)
//	    piece.ghost        (if draggable, hidden)
//
// The resulting [Elements] are used by the drag, shape drawing
// and layout code to attach their behavior. Optional nodes are
// returned as [Handle] values that report whether they are present.
//
// The tree is made of [golang.org/x/net/html] nodes, so it can be
// queried with [Select] and written out with [Render].
package canvas
