// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import "log/slog"

// Default pool sizes used for zero fields of [Desc].
const (
	DefaultBufferPoolSize   = 128
	DefaultImagePoolSize    = 128
	DefaultShaderPoolSize   = 32
	DefaultPipelinePoolSize = 64
)

// Desc configures a [Context]. Pools are allocated once at [Setup]
// and never grow.
type Desc struct {
	BufferPoolSize   int
	ImagePoolSize    int
	ShaderPoolSize   int
	PipelinePoolSize int

	// Logger receives resource and validation messages.
	// [slog.Default] is used if it is nil.
	Logger *slog.Logger
}

// BufferDesc describes a buffer to create.
type BufferDesc struct {
	// Size in bytes. It defaults to len(Data).
	Size int

	Type  BufferTypes
	Usage Usages

	// Data is the initial content, required for Immutable buffers.
	Data []byte

	Label string
}

// ImageDesc describes a 2D texture to create.
type ImageDesc struct {
	Width, Height int
	PixelFormat   PixelFormats

	MinFilter, MagFilter Filters
	WrapU, WrapV         Wraps

	// Data is the content of mip level 0, tightly packed rows from the
	// first row in memory, len(Data) == Width*Height*PixelFormat.Bytes().
	Data []byte

	Label string
}

// ShaderAttr names a vertex shader input. The attribute index is its
// position in [ShaderDesc.Attrs].
type ShaderAttr struct {
	Name string
}

// ShaderUniform is one member of a uniform block.
type ShaderUniform struct {
	Name string
	Type UniformTypes

	// ArrayCount is the number of array elements, 0 and 1 meaning a
	// single value.
	ArrayCount int
}

// Bytes returns the packed size of the member.
func (su *ShaderUniform) Bytes() int {
	n := max(su.ArrayCount, 1)
	return n * su.Type.Bytes()
}

// ShaderUniformBlock is a block of uniform data set with one
// [Context.ApplyUniforms] call.
type ShaderUniformBlock struct {
	// Size is the total size in bytes, which must equal the packed sum
	// of the members.
	Size     int
	Uniforms []ShaderUniform
}

// ShaderImage names a sampler uniform of a stage. Its position in
// [ShaderStageDesc.Images] is its texture slot in [Bindings].
type ShaderImage struct {
	Name string
}

// ShaderStageDesc is one stage of a [ShaderDesc].
type ShaderStageDesc struct {
	// Source is the shader source text.
	Source string

	// Bytecode is a precompiled binary, for backends that accept one.
	Bytecode []byte

	// Entry is the entry point name, "main" by default.
	Entry string

	UniformBlocks []ShaderUniformBlock
	Images        []ShaderImage
}

// ShaderDesc describes a shader program to create.
type ShaderDesc struct {
	Attrs []ShaderAttr
	VS    ShaderStageDesc
	FS    ShaderStageDesc
	Label string
}

// Stage returns the description of the given stage.
func (sd *ShaderDesc) Stage(stage ShaderStages) *ShaderStageDesc {
	if stage == FragmentStage {
		return &sd.FS
	}
	return &sd.VS
}

// BufferLayout describes one vertex buffer slot.
type BufferLayout struct {
	// Stride is the distance between vertices in bytes. Zero means the
	// packed size of the attributes that read from the buffer.
	Stride int
}

// VertexAttr describes one vertex attribute.
type VertexAttr struct {
	BufferIndex int

	// Offset is the byte offset in the vertex. When all offsets of a
	// layout are zero they are computed by packing the attributes of
	// each buffer in order.
	Offset int

	Format VertexFormats
}

// LayoutDesc is the vertex input layout of a pipeline.
type LayoutDesc struct {
	Buffers []BufferLayout

	// Attrs are indexed by shader attribute index. They must be
	// contiguous from index 0.
	Attrs []VertexAttr
}

// PipelineDesc describes a pipeline to create.
type PipelineDesc struct {
	Shader        Shader
	Layout        LayoutDesc
	PrimitiveType PrimitiveTypes
	IndexType     IndexTypes
	Label         string
}

// Color is a linear RGBA color with float channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Black is opaque black.
var Black = Color{0, 0, 0, 1}

// ColorAction is the load action of the color attachment of a pass.
type ColorAction struct {
	Action LoadActions
	Value  Color
}

// PassAction is what happens to the attachments at the start of a pass.
// The zero value clears color to transparent black.
type PassAction struct {
	Color ColorAction
}

// Bindings are the buffers and images used by the draws that follow
// [Context.ApplyBindings].
type Bindings struct {
	VertexBuffers       []Buffer
	VertexBufferOffsets []int
	IndexBuffer         Buffer
	IndexBufferOffset   int
	VSImages            []Image
	FSImages            []Image
}
