// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgfx

import (
	"encoding/binary"
	"math"

	"cogentcore.org/glframe/gfx"
	"github.com/go-gl/gl/v3.3-core/gl"
)

type vertexFormat struct {
	size       int32
	typ        uint32
	normalized bool
}

var vertexFormats = map[gfx.VertexFormats]vertexFormat{
	gfx.Float:   {1, gl.FLOAT, false},
	gfx.Float2:  {2, gl.FLOAT, false},
	gfx.Float3:  {3, gl.FLOAT, false},
	gfx.Float4:  {4, gl.FLOAT, false},
	gfx.UByte4N: {4, gl.UNSIGNED_BYTE, true},
}

func (b *Backend) BeginPass(action *gfx.PassAction, width, height int) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Disable(gl.SCISSOR_TEST)
	if action.Color.Action == gfx.LoadClear {
		c := action.Color.Value
		gl.ClearColor(c.R, c.G, c.B, c.A)
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}
}

func (b *Backend) ApplyPipeline(v any) {
	b.pipeline = v.(*glPipeline)
	gl.UseProgram(b.pipeline.shader.program)
}

// ApplyBindings points the attributes of the applied pipeline at the
// bound vertex buffers and binds the textures to their units.
func (b *Backend) ApplyBindings(bind *gfx.BackendBindings) {
	pip := bind.Pipeline.(*glPipeline)
	for i, a := range pip.layout.Attrs {
		buf := bind.VertexBuffers[a.BufferIndex].(*glBuffer)
		vf := vertexFormats[a.Format]
		stride := int32(pip.layout.Buffers[a.BufferIndex].Stride)
		off := a.Offset + bind.VertexBufferOffsets[a.BufferIndex]
		gl.BindBuffer(gl.ARRAY_BUFFER, buf.handle)
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointer(uint32(i), vf.size, vf.typ, vf.normalized, stride, gl.PtrOffset(off))
	}
	for i := len(pip.layout.Attrs); i < b.enabled; i++ {
		gl.DisableVertexAttribArray(uint32(i))
	}
	b.enabled = len(pip.layout.Attrs)

	if bind.IndexBuffer != nil {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, bind.IndexBuffer.(*glBuffer).handle)
	} else {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	}

	unit := uint32(0)
	for _, imgs := range [][]any{bind.VSImages, bind.FSImages} {
		for _, v := range imgs {
			gl.ActiveTexture(gl.TEXTURE0 + unit)
			gl.BindTexture(gl.TEXTURE_2D, v.(*glImage).handle)
			unit++
		}
	}
	b.indexOffset = bind.IndexBufferOffset
}

// ApplyUniforms sets the members of the block from little-endian float
// data laid out in member order.
func (b *Backend) ApplyUniforms(stage gfx.ShaderStages, slot int, data []byte) {
	for _, u := range b.pipeline.shader.uniforms[stage][slot] {
		if u.location < 0 {
			continue
		}
		n := int(u.count) * u.typ.Floats()
		b.scratch = decodeFloats(b.scratch, data[u.offset:u.offset+4*n])
		f := b.scratch
		switch u.typ {
		case gfx.UniformFloat:
			gl.Uniform1fv(u.location, u.count, &f[0])
		case gfx.UniformFloat2:
			gl.Uniform2fv(u.location, u.count, &f[0])
		case gfx.UniformFloat3:
			gl.Uniform3fv(u.location, u.count, &f[0])
		case gfx.UniformFloat4:
			gl.Uniform4fv(u.location, u.count, &f[0])
		case gfx.UniformMat4:
			gl.UniformMatrix4fv(u.location, u.count, false, &f[0])
		}
	}
}

// decodeFloats decodes little-endian float32 values from data into dst,
// growing it only when it is too small.
func decodeFloats(dst []float32, data []byte) []float32 {
	n := len(data) / 4
	if cap(dst) < n {
		dst = make([]float32, n)
	}
	dst = dst[:n]
	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
	}
	return dst
}

func (b *Backend) Draw(base, count, instances int) {
	pip := b.pipeline
	if pip.indexType == 0 {
		gl.DrawArraysInstanced(pip.primitive, int32(base), int32(count), int32(instances))
		return
	}
	off := b.indexOffset + base*pip.indexSize
	gl.DrawElementsInstanced(pip.primitive, int32(count), pip.indexType, gl.PtrOffset(off), int32(instances))
}

func (b *Backend) EndPass() {
	gl.UseProgram(0)
	b.pipeline = nil
}

// Commit reports the GL errors raised during the frame.
func (b *Backend) Commit() error {
	return checkError("Commit")
}
