// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

// Limits on descriptor sizes.
const (
	MaxVertexAttributes  = 16
	MaxVertexBuffers     = 8
	MaxShaderStageImages = 12
	MaxUniformBlocks     = 4
	MaxUniformMembers    = 16
)

// Backends identify the graphics API a [Backend] drives.
type Backends int32 //enums:enum

const (
	// BackendGLCore33 is OpenGL 3.3 core profile.
	BackendGLCore33 Backends = iota

	// BackendDummy issues no GPU work, for tests and headless runs.
	BackendDummy
)

// ResourceStates is the state of a resource handle.
type ResourceStates int32 //enums:enum

const (
	// Invalid is reported for handles that do not refer to a live
	// resource: the zero handle, a destroyed resource, or a handle from
	// another context.
	Invalid ResourceStates = iota

	// Valid is a live resource ready for use.
	Valid
)

// BufferTypes is what a buffer is bound as.
type BufferTypes int32

const (
	VertexBuffer BufferTypes = iota
	IndexBuffer
)

// Usages is how often the content of a resource is updated.
// Only Immutable resources take their content at creation.
type Usages int32

const (
	Immutable Usages = iota
	Dynamic
	Stream
)

// VertexFormats is the type of one vertex attribute.
// The zero value marks an unused attribute slot.
type VertexFormats int32 //enums:enum

const (
	FormatInvalid VertexFormats = iota
	Float
	Float2
	Float3
	Float4

	// UByte4N is four unsigned bytes normalized to [0, 1].
	UByte4N
)

// Bytes returns the size of one attribute of this format.
func (vf VertexFormats) Bytes() int {
	switch vf {
	case Float:
		return 4
	case Float2:
		return 8
	case Float3:
		return 12
	case Float4:
		return 16
	case UByte4N:
		return 4
	}
	return 0
}

// Components returns the number of components of the format.
func (vf VertexFormats) Components() int {
	switch vf {
	case Float:
		return 1
	case Float2:
		return 2
	case Float3:
		return 3
	case Float4, UByte4N:
		return 4
	}
	return 0
}

// PrimitiveTypes is the topology of the vertices of a draw.
type PrimitiveTypes int32

const (
	Triangles PrimitiveTypes = iota
	TriangleStrip
	Lines
	LineStrip
	Points
)

// IndexTypes is the element type of the index buffer, if any.
type IndexTypes int32

const (
	IndexNone IndexTypes = iota
	IndexUint16
	IndexUint32
)

// Bytes returns the size of one index.
func (it IndexTypes) Bytes() int {
	switch it {
	case IndexUint16:
		return 2
	case IndexUint32:
		return 4
	}
	return 0
}

// ShaderStages are the programmable stages.
type ShaderStages int32 //enums:enum

const (
	VertexStage ShaderStages = iota
	FragmentStage
)

// UniformTypes is the type of one member of a uniform block.
type UniformTypes int32

const (
	UniformInvalid UniformTypes = iota
	UniformFloat
	UniformFloat2
	UniformFloat3
	UniformFloat4
	UniformMat4
)

// Floats returns the number of float32 values in one element of the type.
func (ut UniformTypes) Floats() int {
	switch ut {
	case UniformFloat:
		return 1
	case UniformFloat2:
		return 2
	case UniformFloat3:
		return 3
	case UniformFloat4:
		return 4
	case UniformMat4:
		return 16
	}
	return 0
}

// Bytes returns the size of one element of the type.
func (ut UniformTypes) Bytes() int {
	return 4 * ut.Floats()
}

// PixelFormats is the texel format of an image.
type PixelFormats int32

const (
	// RGBA8 is 8 bits per channel, 4 bytes per pixel.
	RGBA8 PixelFormats = iota
)

// Bytes returns the size of one pixel.
func (pf PixelFormats) Bytes() int {
	return 4
}

// Filters are texture sampling filters.
// The zero value is nearest, so unset filters sample texels exactly.
type Filters int32

const (
	FilterNearest Filters = iota
	FilterLinear
)

// Wraps are texture coordinate wrap modes.
type Wraps int32

const (
	WrapRepeat Wraps = iota
	WrapClampToEdge
	WrapMirroredRepeat
)

// LoadActions are what happens to an attachment at the start of a pass.
type LoadActions int32

const (
	LoadClear LoadActions = iota
	LoadKeep
	LoadDontCare
)
