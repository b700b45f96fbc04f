// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"cogentcore.org/glframe/gfx"
	"github.com/go-gl/mathgl/mgl32"
)

// Quad shader: precompiled for glsl330 from
//
//	@vs vs
//	uniform vs_params { mat4 mvp; vec4 scale; };
//	in vec4 a_pos; in vec4 a_col; in vec2 a_uv;
//	out vec4 col; out vec2 uv;
//	void main() { gl_Position = mvp * (a_pos * scale); col = a_col; uv = a_uv; }
//	@end
//	@fs fs
//	uniform sampler2D u_tex;
//	in vec4 col; in vec2 uv; out vec4 frag_color;
//	void main() { frag_color = texture(u_tex, uv) * col; }
//	@end
//	@program quad vs fs
//
// Uniform blocks are flattened to vec4 arrays.

// Vertex attribute slots of the quad shader.
const (
	AttrVSPos = 0
	AttrVSCol = 1
	AttrVSUV  = 2
)

// SlotVSParams is the vertex stage uniform block slot of [VSParams].
const SlotVSParams = 0

// SlotTex is the fragment stage image slot of u_tex.
const SlotTex = 0

// VSParamsSize is the size of the serialized [VSParams].
const VSParamsSize = 80

// VSParams is the vs_params uniform block of the quad shader.
type VSParams struct {
	MVP   mgl32.Mat4
	Scale mgl32.Vec4
}

// Bytes returns the block in its GPU layout: MVP then Scale, as
// little-endian floats.
func (p *VSParams) Bytes() []byte {
	b := appendFloats(make([]byte, 0, VSParamsSize), p.MVP[:])
	return appendFloats(b, p.Scale[:])
}

const quadVSSourceGLSL330 = `#version 330

uniform vec4 vs_params[5];
layout(location = 0) in vec4 a_pos;
out vec4 col;
layout(location = 1) in vec4 a_col;
out vec2 uv;
layout(location = 2) in vec2 a_uv;

void main()
{
    gl_Position = mat4(vs_params[0], vs_params[1], vs_params[2], vs_params[3]) * (a_pos * vs_params[4]);
    col = a_col;
    uv = a_uv;
}

`

const quadFSSourceGLSL330 = `#version 330

uniform sampler2D u_tex;

layout(location = 0) out vec4 frag_color;
in vec2 uv;
in vec4 col;

void main()
{
    frag_color = texture(u_tex, uv) * col;
}

`

// QuadShaderDesc returns the quad shader for the given backend, or nil
// if it was not compiled for it. The dummy backend takes the glsl330
// descriptor as it never compiles anything.
func QuadShaderDesc(backend gfx.Backends) *gfx.ShaderDesc {
	switch backend {
	case gfx.BackendGLCore33, gfx.BackendDummy:
	default:
		return nil
	}
	return &gfx.ShaderDesc{
		Attrs: []gfx.ShaderAttr{
			AttrVSPos: {Name: "a_pos"},
			AttrVSCol: {Name: "a_col"},
			AttrVSUV:  {Name: "a_uv"},
		},
		VS: gfx.ShaderStageDesc{
			Source: quadVSSourceGLSL330,
			Entry:  "main",
			UniformBlocks: []gfx.ShaderUniformBlock{
				SlotVSParams: {
					Size:     VSParamsSize,
					Uniforms: []gfx.ShaderUniform{{Name: "vs_params", Type: gfx.UniformFloat4, ArrayCount: 5}},
				},
			},
		},
		FS: gfx.ShaderStageDesc{
			Source: quadFSSourceGLSL330,
			Entry:  "main",
			Images: []gfx.ShaderImage{SlotTex: {Name: "u_tex"}},
		},
		Label: "quad_shader",
	}
}
