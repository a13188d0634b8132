// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Color is a side of the board. It is used for the orientation
// of the board, which is the side facing the viewer.
type Color int32

const (
	// White is the side that plays first.
	White Color = iota

	// Black is the side that plays second.
	Black

	// ColorN is the number of valid colors.
	ColorN
)

// Colors are all of the valid colors, in order.
var Colors = []Color{White, Black}

var colorNames = [...]string{White: "white", Black: "black"}

// String returns the lowercase name of the color.
func (c Color) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Color(%d)", int32(c))
	}
	return colorNames[c]
}

// IsValid returns whether the color is one of [Colors].
func (c Color) IsValid() bool {
	return c >= White && c < ColorN
}

// Opposite returns the other color.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// SetString sets the color from its name, ignoring case.
func (c *Color) SetString(s string) error {
	for i, nm := range colorNames {
		if strings.EqualFold(s, nm) {
			*c = Color(i)
			return nil
		}
	}
	return &ConfigError{Field: "orientation", Value: s, Reason: "must be white or black"}
}

// MarshalText implements [encoding.TextMarshaler].
func (c Color) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, &ConfigError{Field: "orientation", Value: int32(c), Reason: "must be white or black"}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Color) UnmarshalText(text []byte) error {
	return c.SetString(string(text))
}

// orientationClass is the class marking a board oriented to this color.
func (c Color) orientationClass() string {
	return "orientation-" + c.String()
}

// Brush describes a pen that the shape-drawing layer paints with.
// Each brush gets an arrowhead marker in the shapes definitions,
// keyed and filled from Key and Color. Opacity and LineWidth are not
// used by [Build]; the shape renderer reads them from [Elements.Config]
// when it strokes a shape with the brush.
type Brush struct {
	Key   string `toml:"key" yaml:"key"`
	Color string `toml:"color" yaml:"color"`

	// Opacity is the stroke opacity, from 0 to 1.
	Opacity float64 `toml:"opacity" yaml:"opacity"`

	// LineWidth is the stroke width in board units. It must be finite.
	LineWidth float64 `toml:"line_width" yaml:"line_width"`
}

// DefaultBrushes returns a new copy of the standard brush set.
func DefaultBrushes() []Brush {
	return []Brush{
		{Key: "green", Color: "#15781B", Opacity: 1, LineWidth: 10},
		{Key: "red", Color: "#882020", Opacity: 1, LineWidth: 10},
		{Key: "blue", Color: "#003088", Opacity: 1, LineWidth: 10},
		{Key: "yellow", Color: "#e68f00", Opacity: 1, LineWidth: 10},
		{Key: "paleBlue", Color: "#003088", Opacity: 0.4, LineWidth: 15},
		{Key: "paleGreen", Color: "#15781B", Opacity: 0.4, LineWidth: 15},
		{Key: "paleRed", Color: "#882020", Opacity: 0.4, LineWidth: 15},
		{Key: "paleGrey", Color: "#4a4a4a", Opacity: 0.35, LineWidth: 15},
		{Key: "purple", Color: "#68217a", Opacity: 0.65, LineWidth: 15},
		{Key: "pink", Color: "#ee2080", Opacity: 0.5, LineWidth: 15},
		{Key: "white", Color: "white", Opacity: 1, LineWidth: 15},
	}
}

// DrawableConfig configures the overlay layers used for drawn shapes.
type DrawableConfig struct {

	// Visible is whether the shape overlay layers exist at all.
	Visible bool `toml:"visible" yaml:"visible"`

	// Brushes are the brushes to define arrowhead markers for.
	// If empty, [DefaultBrushes] are used.
	Brushes []Brush `toml:"brushes,omitempty" yaml:"brushes,omitempty"`
}

// DraggableConfig configures the drag preview.
type DraggableConfig struct {

	// Enabled is whether pieces can be dragged, which
	// determines whether the ghost node exists.
	Enabled bool `toml:"enabled" yaml:"enabled"`

	// ShowGhost is whether the drag controller should show the
	// ghost while dragging. The ghost is always created hidden.
	ShowGhost bool `toml:"show_ghost" yaml:"show_ghost"`
}

// Config is a snapshot of the configuration that determines the shape
// of the board tree. It is passed by value to [Build].
type Config struct {

	// Orientation is the side of the board facing the viewer.
	Orientation Color `toml:"orientation" yaml:"orientation"`

	// ViewOnly disables all interaction affordances.
	ViewOnly bool `toml:"view_only" yaml:"view_only"`

	// Drawable configures the shape overlay layers.
	Drawable DrawableConfig `toml:"drawable" yaml:"drawable"`

	// Draggable configures the drag preview.
	Draggable DraggableConfig `toml:"draggable" yaml:"draggable"`
}

// DefaultConfig returns the configuration of a standard interactive board.
func DefaultConfig() Config {
	return Config{
		Orientation: White,
		Drawable:    DrawableConfig{Visible: true},
		Draggable:   DraggableConfig{Enabled: true, ShowGhost: true},
	}
}

// Validate returns a [*ConfigError] describing the first
// invalid field of the config, if any.
func (c Config) Validate() error {
	if !c.Orientation.IsValid() {
		return &ConfigError{Field: "orientation", Value: int32(c.Orientation), Reason: "must be white or black"}
	}
	seen := make(map[string]bool, len(c.Drawable.Brushes))
	for i, b := range c.Drawable.Brushes {
		field := fmt.Sprintf("drawable.brushes[%d]", i)
		switch {
		case b.Key == "":
			return &ConfigError{Field: field + ".key", Value: b.Key, Reason: "must not be empty"}
		case strings.ContainsAny(b.Key, " \t\n"):
			return &ConfigError{Field: field + ".key", Value: b.Key, Reason: "must not contain whitespace"}
		case seen[b.Key]:
			return &ConfigError{Field: field + ".key", Value: b.Key, Reason: "duplicate brush"}
		case !(b.Opacity >= 0 && b.Opacity <= 1):
			return &ConfigError{Field: field + ".opacity", Value: b.Opacity, Reason: "must be between 0 and 1"}
		case math.IsNaN(b.LineWidth) || math.IsInf(b.LineWidth, 0) || b.LineWidth < 0:
			return &ConfigError{Field: field + ".line_width", Value: b.LineWidth, Reason: "must be a finite non-negative number"}
		}
		seen[b.Key] = true
	}
	return nil
}

// clone returns a deep copy of the config.
func (c Config) clone() Config {
	c.Drawable.Brushes = slices.Clone(c.Drawable.Brushes)
	return c
}

// brushes returns the brushes to define markers for.
func (c Config) brushes() []Brush {
	if len(c.Drawable.Brushes) == 0 {
		return DefaultBrushes()
	}
	return c.Drawable.Brushes
}
