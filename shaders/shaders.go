// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders provides the GLSL 330 shaders of the frame renderer
// as [gfx.ShaderDesc] values, and the typed uniform blocks they take.
package shaders

import (
	"embed"
	"encoding/binary"

	"cogentcore.org/glframe/base/errors"
	"cogentcore.org/glframe/gfx"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed glsl/*.vert glsl/*.frag
var glsl embed.FS

func source(name string) string {
	return string(errors.Must1(glsl.ReadFile("glsl/" + name)))
}

// Attribute names shared by all shaders, in slot order.
var (
	posAttr = gfx.ShaderAttr{Name: "a_pos"}
	colAttr = gfx.ShaderAttr{Name: "a_col"}
	uvAttr  = gfx.ShaderAttr{Name: "a_uv"}
)

var texImage = gfx.ShaderImage{Name: "u_tex"}

// ColoredShaderDesc returns the shader that draws interpolated vertex
// colors. Attributes: position, color.
func ColoredShaderDesc() *gfx.ShaderDesc {
	return &gfx.ShaderDesc{
		Attrs: []gfx.ShaderAttr{posAttr, colAttr},
		VS:    gfx.ShaderStageDesc{Source: source("colored.vert")},
		FS:    gfx.ShaderStageDesc{Source: source("colored.frag")},
		Label: "colored",
	}
}

// TexturedShaderDesc returns the shader that modulates one fragment
// stage texture by the vertex color. Attributes: position, color, uv.
func TexturedShaderDesc() *gfx.ShaderDesc {
	return &gfx.ShaderDesc{
		Attrs: []gfx.ShaderAttr{posAttr, colAttr, uvAttr},
		VS:    gfx.ShaderStageDesc{Source: source("textured.vert")},
		FS: gfx.ShaderStageDesc{
			Source: source("textured.frag"),
			Images: []gfx.ShaderImage{texImage},
		},
		Label: "textured",
	}
}

// TransformShaderDesc returns the textured shader with positions
// transformed by the vertex stage uniform block 0, see [TransformParams].
func TransformShaderDesc() *gfx.ShaderDesc {
	d := TexturedShaderDesc()
	d.VS = gfx.ShaderStageDesc{
		Source: source("transform.vert"),
		UniformBlocks: []gfx.ShaderUniformBlock{{
			Size:     TransformParamsSize,
			Uniforms: []gfx.ShaderUniform{{Name: "mvp", Type: gfx.UniformMat4}},
		}},
	}
	d.Label = "transform"
	return d
}

// TransformParamsSize is the size of the serialized [TransformParams].
const TransformParamsSize = 64

// TransformParams is the uniform block of [TransformShaderDesc].
type TransformParams struct {
	MVP mgl32.Mat4
}

// Bytes returns the block in its GPU layout: the 16 floats of MVP in
// mgl32 (column-major) order, little endian.
func (p *TransformParams) Bytes() []byte {
	return appendFloats(make([]byte, 0, TransformParamsSize), p.MVP[:])
}

func appendFloats(b []byte, fs []float32) []byte {
	return errors.Must1(binary.Append(b, binary.LittleEndian, fs))
}
