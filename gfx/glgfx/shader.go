// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgfx

import (
	"errors"
	"fmt"
	"strings"

	"cogentcore.org/glframe/gfx"
	"github.com/go-gl/gl/v3.3-core/gl"
)

type glUniform struct {
	location int32
	typ      gfx.UniformTypes
	count    int32

	// offset of the member in the block
	offset int
}

type glShader struct {
	program uint32

	// uniforms are the members of each block, per stage
	uniforms [2][][]glUniform
}

type glPipeline struct {
	shader    *glShader
	layout    gfx.LayoutDesc
	primitive uint32
	indexType uint32
	indexSize int
}

var shaderTypes = map[gfx.ShaderStages]uint32{
	gfx.VertexStage:   gl.VERTEX_SHADER,
	gfx.FragmentStage: gl.FRAGMENT_SHADER,
}

// compile compiles the source of one stage and returns the shader handle.
func compile(stage gfx.ShaderStages, src string) (uint32, error) {
	handle := gl.CreateShader(shaderTypes[stage])
	csources, free := gl.Strs(cstr(src))
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(msg))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("failed to compile %s: %s", stage, strings.TrimRight(msg, "\x00\n"))
	}
	return handle, nil
}

// CreateShader compiles and links the program. Attribute locations are
// bound to their index in the descriptor, and sampler uniforms are set
// to texture units in order: vertex stage images first.
func (b *Backend) CreateShader(desc *gfx.ShaderDesc) (any, error) {
	for _, st := range []gfx.ShaderStages{gfx.VertexStage, gfx.FragmentStage} {
		if desc.Stage(st).Source == "" {
			return nil, fmt.Errorf("glgfx: shader %q: %s needs GLSL source", desc.Label, st)
		}
	}
	vs, err := compile(gfx.VertexStage, desc.VS.Source)
	if err != nil {
		return nil, fmt.Errorf("glgfx: shader %q: %w", desc.Label, err)
	}
	fs, err := compile(gfx.FragmentStage, desc.FS.Source)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, fmt.Errorf("glgfx: shader %q: %w", desc.Label, err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	for i, a := range desc.Attrs {
		gl.BindAttribLocation(prog, uint32(i), gl.Str(cstr(a.Name)))
	}
	gl.LinkProgram(prog)
	gl.DetachShader(prog, vs)
	gl.DetachShader(prog, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(msg))
		gl.DeleteProgram(prog)
		return nil, fmt.Errorf("glgfx: shader %q: failed to link program: %s", desc.Label, strings.TrimRight(msg, "\x00\n"))
	}

	shd := &glShader{program: prog}
	gl.UseProgram(prog)
	unit := int32(0)
	for _, st := range []gfx.ShaderStages{gfx.VertexStage, gfx.FragmentStage} {
		sd := desc.Stage(st)
		for _, ub := range sd.UniformBlocks {
			var members []glUniform
			off := 0
			for _, u := range ub.Uniforms {
				loc := gl.GetUniformLocation(prog, gl.Str(cstr(u.Name)))
				if loc < 0 {
					// optimized out by the compiler, or misnamed
					b.logger.Warn("glgfx: uniform not found", "shader", desc.Label, "uniform", u.Name)
				}
				members = append(members, glUniform{location: loc, typ: u.Type, count: int32(max(u.ArrayCount, 1)), offset: off})
				off += u.Bytes()
			}
			shd.uniforms[st] = append(shd.uniforms[st], members)
		}
		for _, img := range sd.Images {
			loc := gl.GetUniformLocation(prog, gl.Str(cstr(img.Name)))
			if loc < 0 {
				b.logger.Warn("glgfx: sampler not found", "shader", desc.Label, "sampler", img.Name)
			} else {
				gl.Uniform1i(loc, unit)
			}
			unit++
		}
	}
	gl.UseProgram(0)
	if err := checkError("CreateShader"); err != nil {
		gl.DeleteProgram(prog)
		return nil, err
	}
	return shd, nil
}

func (b *Backend) DestroyShader(v any) {
	shd := v.(*glShader)
	gl.DeleteProgram(shd.program)
	shd.program = 0
}

var primitives = map[gfx.PrimitiveTypes]uint32{
	gfx.Triangles:     gl.TRIANGLES,
	gfx.TriangleStrip: gl.TRIANGLE_STRIP,
	gfx.Lines:         gl.LINES,
	gfx.LineStrip:     gl.LINE_STRIP,
	gfx.Points:        gl.POINTS,
}

var indexTypes = map[gfx.IndexTypes]uint32{
	gfx.IndexUint16: gl.UNSIGNED_SHORT,
	gfx.IndexUint32: gl.UNSIGNED_INT,
}

// ErrNoShader is returned when creating a pipeline without a shader.
var ErrNoShader = errors.New("glgfx: pipeline has no shader")

func (b *Backend) CreatePipeline(desc *gfx.PipelineDesc, shd any) (any, error) {
	s, ok := shd.(*glShader)
	if !ok || s == nil {
		return nil, ErrNoShader
	}
	return &glPipeline{
		shader:    s,
		layout:    desc.Layout,
		primitive: primitives[desc.PrimitiveType],
		indexType: indexTypes[desc.IndexType],
		indexSize: desc.IndexType.Bytes(),
	}, nil
}

func (b *Backend) DestroyPipeline(v any) {
	if b.pipeline == v.(*glPipeline) {
		b.pipeline = nil
	}
}
