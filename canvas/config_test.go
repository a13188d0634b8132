// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"math"
	"testing"

	"cogentcore.org/chessground/base/iox/tomlx"
	"cogentcore.org/chessground/base/iox/yamlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor(t *testing.T) {
	assert.Equal(t, "white", White.String())
	assert.Equal(t, "black", Black.String())
	assert.Equal(t, "Color(7)", Color(7).String())
	assert.Equal(t, Black, White.Opposite())
	assert.Equal(t, White, Black.Opposite())

	var c Color
	require.NoError(t, c.SetString("BLACK"))
	assert.Equal(t, Black, c)
	assert.ErrorIs(t, c.SetString("green"), ErrInvalidConfig)

	b, err := Black.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "black", string(b))
	_, err = ColorN.MarshalText()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.NoError(t, Config{Drawable: DrawableConfig{Brushes: DefaultBrushes()}}.Validate())

	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"orientation", Config{Orientation: ColorN}, "orientation"},
		{"empty key", Config{Drawable: DrawableConfig{Brushes: []Brush{{Opacity: 1}}}}, "drawable.brushes[0].key"},
		{"space key", Config{Drawable: DrawableConfig{Brushes: []Brush{{Key: "a b"}}}}, "drawable.brushes[0].key"},
		{"duplicate", Config{Drawable: DrawableConfig{Brushes: []Brush{{Key: "a"}, {Key: "a"}}}}, "drawable.brushes[1].key"},
		{"opacity", Config{Drawable: DrawableConfig{Brushes: []Brush{{Key: "a", Opacity: 1.5}}}}, "drawable.brushes[0].opacity"},
		{"line width", Config{Drawable: DrawableConfig{Brushes: []Brush{{Key: "a", LineWidth: -1}}}}, "drawable.brushes[0].line_width"},
		{"nan opacity", Config{Drawable: DrawableConfig{Brushes: []Brush{{Key: "a", Opacity: math.NaN()}}}}, "drawable.brushes[0].opacity"},
		{"nan line width", Config{Drawable: DrawableConfig{Brushes: []Brush{{Key: "a", Opacity: 1, LineWidth: math.NaN()}}}}, "drawable.brushes[0].line_width"},
		{"infinite line width", Config{Drawable: DrawableConfig{Brushes: []Brush{{Key: "a", Opacity: 1, LineWidth: math.Inf(1)}}}}, "drawable.brushes[0].line_width"},
		{"negative infinite line width", Config{Drawable: DrawableConfig{Brushes: []Brush{{Key: "a", Opacity: 1, LineWidth: math.Inf(-1)}}}}, "drawable.brushes[0].line_width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.field, cerr.Field)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestDefaultBrushesAreCopies(t *testing.T) {
	a := DefaultBrushes()
	a[0].Color = "changed"
	assert.Equal(t, "#15781B", DefaultBrushes()[0].Color)
}

func TestConfigTOML(t *testing.T) {
	src := `
orientation = "black"
view_only = true

[drawable]
visible = true

[[drawable.brushes]]
key = "green"
color = "#15781B"
opacity = 1.0
line_width = 10.0

[draggable]
enabled = true
show_ghost = false
`
	var cfg Config
	require.NoError(t, tomlx.ReadBytes(&cfg, []byte(src)))
	assert.Equal(t, Black, cfg.Orientation)
	assert.True(t, cfg.ViewOnly)
	assert.True(t, cfg.Drawable.Visible)
	require.Len(t, cfg.Drawable.Brushes, 1)
	assert.Equal(t, 10.0, cfg.Drawable.Brushes[0].LineWidth)
	assert.True(t, cfg.Draggable.Enabled)
	assert.False(t, cfg.Draggable.ShowGhost)

	assert.Error(t, tomlx.ReadBytes(&cfg, []byte(`orientation = "sideways"`)))
}

func TestConfigYAML(t *testing.T) {
	src := `
orientation: white
drawable:
  visible: false
draggable:
  enabled: true
  show_ghost: true
`
	cfg := Config{Orientation: Black}
	require.NoError(t, yamlx.ReadBytes(&cfg, []byte(src)))
	assert.Equal(t, White, cfg.Orientation)
	assert.False(t, cfg.Drawable.Visible)
	assert.True(t, cfg.Draggable.ShowGhost)

	b, err := yamlx.WriteBytes(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(b), "orientation: white")
}
