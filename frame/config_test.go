// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/glframe/gfx"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	a := cfg.WindowAttributes()
	assert.Equal(t, image.Pt(800, 600), a.Size)
	assert.Equal(t, "glframe", a.Title)
	assert.True(t, a.VSync)
	assert.False(t, a.SRGB)
	assert.NoError(t, a.Validate())

	d := cfg.GfxDesc(nil)
	assert.Equal(t, gfx.Desc{BufferPoolSize: 2, ImagePoolSize: 1, ShaderPoolSize: 1, PipelinePoolSize: 1}, d)
	assert.Equal(t, gfx.Black, cfg.PassAction().Color.Value)
}

func TestOpenConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "glframe.toml")
	require.NoError(t, os.WriteFile(name, []byte(`
variant = "Scaled"
image = "face.png"
clear_color = [0.1, 0.2, 0.3, 1.0]

[window]
width = 1024
`), 0o644))
	cfg, err := OpenConfig(name)
	require.NoError(t, err)
	assert.Equal(t, Scaled, cfg.Variant)
	assert.Equal(t, "face.png", cfg.Image)
	assert.Equal(t, gfx.Color{R: 0.1, G: 0.2, B: 0.3, A: 1}, cfg.PassAction().Color.Value)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "unset fields keep their defaults")
	assert.Equal(t, 2, cfg.Pools.Buffers)
}

func TestOpenConfigErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := OpenConfig(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := map[string]string{
		"variant": `variant = "wireframe"`,
		"unknown": `colour = "red"`,
		"frames":  `max_frames = -1`,
		"image":   "variant = \"textured\"\nimage = \"\"",
	}
	for name, content := range bad {
		file := filepath.Join(dir, name+".toml")
		require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
		_, err := OpenConfig(file)
		assert.Error(t, err, name)
	}
}

func TestVariants(t *testing.T) {
	assert.Len(t, VariantsValues(), 5)
	for _, v := range VariantsValues() {
		b, err := v.MarshalText()
		require.NoError(t, err)
		var got Variants
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, v, got)
	}
	var v Variants
	assert.NoError(t, v.Set("TRANSFORM"))
	assert.Equal(t, Transform, v)
	assert.Error(t, v.Set("nope"))
	assert.Equal(t, "variant", v.Type())
	assert.Equal(t, "Variants(9)", Variants(9).String())
	assert.False(t, Variants(9).IsValid())
	assert.True(t, Scaled.IsValid())
	assert.Equal(t, Scaled+1, VariantsN)
	assert.Equal(t, VariantsValues(), Colored.Values())
	assert.Contains(t, Flipped.Desc(), "flipped on load")
	assert.Equal(t, "colored", Colored.String())

	assert.False(t, Colored.HasTexture())
	assert.True(t, Textured.HasTexture())
	assert.False(t, Textured.FlipImage())
	assert.True(t, Flipped.FlipImage())
	assert.True(t, Scaled.FlipImage())
	assert.Equal(t, 0, Flipped.UniformSize())
	assert.Equal(t, 64, Transform.UniformSize())
	assert.Equal(t, 80, Scaled.UniformSize())
}

func TestConfigTOML(t *testing.T) {
	b, err := toml.Marshal(DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(b), "colored")
	var cfg Config
	require.NoError(t, toml.Unmarshal(b, &cfg))
	assert.Equal(t, *DefaultConfig(), cfg)
}
