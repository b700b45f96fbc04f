// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/glframe/base/iox/tomlx"
	"cogentcore.org/glframe/gfx"
	"cogentcore.org/glframe/window"
)

// Config is the configuration of a frame renderer run.
// It can be read from a TOML file with [OpenConfig].
type Config struct {
	Variant Variants `toml:"variant"`

	// Image is the image file used by textured variants.
	Image string `toml:"image"`

	// ClearColor is the RGBA color the frame is cleared to.
	ClearColor [4]float32 `toml:"clear_color"`

	// MaxFrames stops the loop after that many frames when positive.
	MaxFrames int `toml:"max_frames"`

	Window WindowConfig `toml:"window"`
	Pools  PoolConfig   `toml:"pools"`
}

// WindowConfig are the window settings of a [Config].
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	VSync  bool   `toml:"vsync"`
	SRGB   bool   `toml:"srgb"`
}

// PoolConfig are the gfx pool sizes of a [Config].
// The frame renderer needs one of each, plus a spare buffer.
type PoolConfig struct {
	Buffers   int `toml:"buffers"`
	Images    int `toml:"images"`
	Shaders   int `toml:"shaders"`
	Pipelines int `toml:"pipelines"`
}

// DefaultConfig returns the configuration of the examples.
func DefaultConfig() *Config {
	return &Config{
		Variant:    Colored,
		Image:      "boomer.png",
		ClearColor: [4]float32{0, 0, 0, 1},
		Window: WindowConfig{
			Title:  "glframe",
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		Pools: PoolConfig{Buffers: 2, Images: 1, Shaders: 1, Pipelines: 1},
	}
}

// OpenConfig returns [DefaultConfig] overlaid with the given TOML file.
func OpenConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()
	if err := tomlx.Open(cfg, filename); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks the values that the window and gfx do not check.
func (c *Config) Validate() error {
	if !c.Variant.IsValid() {
		return fmt.Errorf("invalid variant %v", c.Variant)
	}
	if c.Variant.HasTexture() && c.Image == "" {
		return fmt.Errorf("variant %v needs an image", c.Variant)
	}
	if c.MaxFrames < 0 {
		return fmt.Errorf("max_frames must not be negative, got %d", c.MaxFrames)
	}
	return nil
}

// WindowAttributes returns the attributes of the window to open:
// [window.DefaultAttributes] with the configured settings.
func (c *Config) WindowAttributes() window.Attributes {
	a := window.DefaultAttributes()
	if c.Window.Title != "" {
		a.Title = c.Window.Title
	}
	a.Size = image.Pt(c.Window.Width, c.Window.Height)
	a.VSync = c.Window.VSync
	a.SRGB = c.Window.SRGB
	return a
}

// GfxDesc returns the gfx setup descriptor with the configured pool sizes.
func (c *Config) GfxDesc(logger *slog.Logger) gfx.Desc {
	return gfx.Desc{
		BufferPoolSize:   c.Pools.Buffers,
		ImagePoolSize:    c.Pools.Images,
		ShaderPoolSize:   c.Pools.Shaders,
		PipelinePoolSize: c.Pools.Pipelines,
		Logger:           logger,
	}
}

// PassAction returns the action that clears to the configured color.
func (c *Config) PassAction() gfx.PassAction {
	cc := c.ClearColor
	return gfx.PassAction{Color: gfx.ColorAction{
		Action: gfx.LoadClear,
		Value:  gfx.Color{R: cc[0], G: cc[1], B: cc[2], A: cc[3]},
	}}
}
