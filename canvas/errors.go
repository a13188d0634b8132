// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"
)

var (
	// ErrNotAttachable matches every [*AttachmentError] with [errors.Is].
	ErrNotAttachable = errors.New("canvas: root cannot hold the board")

	// ErrInvalidConfig matches every [*ConfigError] with [errors.Is].
	ErrInvalidConfig = errors.New("canvas: invalid configuration")
)

// AttachmentError is returned when the root passed to [Build]
// or [Mount] cannot accept the board tree.
type AttachmentError struct {

	// Node is a short description of the rejected root.
	Node string

	// Reason is why the root was rejected.
	Reason string
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("canvas: cannot attach to %s: %s", e.Node, e.Reason)
}

func (e *AttachmentError) Is(target error) bool {
	return target == ErrNotAttachable
}

// ConfigError is returned when a [Config] has an invalid field.
type ConfigError struct {

	// Field is the config key of the invalid field.
	Field string

	// Value is the rejected value.
	Value any

	// Reason is why the value was rejected.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("canvas: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// describeNode returns a short description of n for error messages.
func describeNode(n *html.Node) string {
	if n == nil {
		return "nil node"
	}
	switch n.Type {
	case html.ElementNode:
		if n.Namespace != "" {
			return "<" + n.Namespace + ":" + n.Data + ">"
		}
		return "<" + n.Data + ">"
	case html.TextNode:
		return "text node"
	case html.DocumentNode:
		return "document node"
	case html.CommentNode:
		return "comment node"
	case html.DoctypeNode:
		return "doctype node"
	default:
		return "node"
	}
}
