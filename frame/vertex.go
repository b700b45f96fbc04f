// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"encoding/binary"

	"cogentcore.org/glframe/base/errors"
	"cogentcore.org/glframe/gfx"
	"cogentcore.org/glframe/shaders"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex strides in bytes.
const (
	ColorVertexStride = 28
	TexVertexStride   = 36
)

// ColorVertex is a position and an RGBA color.
type ColorVertex struct {
	Pos   mgl32.Vec3
	Color mgl32.Vec4
}

// TexVertex is a position, an RGBA color and a texture coordinate.
type TexVertex struct {
	Pos   mgl32.Vec3
	Color mgl32.Vec4
	UV    mgl32.Vec2
}

var (
	red   = mgl32.Vec4{1, 0, 0, 1}
	green = mgl32.Vec4{0, 1, 0, 1}
	blue  = mgl32.Vec4{0, 0, 1, 1}
	white = mgl32.Vec4{1, 1, 1, 1}
)

// ColoredTriangle is the triangle of the Colored variant.
var ColoredTriangle = []ColorVertex{
	{mgl32.Vec3{0, 0.5, 0.5}, red},
	{mgl32.Vec3{0.5, -0.5, 0.5}, green},
	{mgl32.Vec3{-0.5, -0.5, 0.5}, blue},
}

// TexturedTriangle is the triangle of the Textured, Flipped and
// Transform variants.
var TexturedTriangle = []TexVertex{
	{mgl32.Vec3{0, 0.5, 0.5}, red, mgl32.Vec2{0, 0}},
	{mgl32.Vec3{0.5, -0.5, 0.5}, green, mgl32.Vec2{0, 1}},
	{mgl32.Vec3{-0.5, -0.5, 0.5}, blue, mgl32.Vec2{1, 1}},
}

// WhiteTriangle is the triangle of the Scaled variant.
var WhiteTriangle = []TexVertex{
	{mgl32.Vec3{0, 0.5, 0.5}, white, mgl32.Vec2{0, 1}},
	{mgl32.Vec3{0.5, -0.5, 0.5}, white, mgl32.Vec2{1, 0}},
	{mgl32.Vec3{-0.5, -0.5, 0.5}, white, mgl32.Vec2{0, 0}},
}

// vertexBytes returns vertices packed as little-endian floats in field order.
func vertexBytes[V ColorVertex | TexVertex](vs []V) []byte {
	return errors.Must1(binary.Append(nil, binary.LittleEndian, vs))
}

// ColorLayout is the vertex layout of [ColorVertex].
func ColorLayout() gfx.LayoutDesc {
	return gfx.LayoutDesc{Attrs: []gfx.VertexAttr{
		{Format: gfx.Float3},
		{Format: gfx.Float4},
	}}
}

// TexLayout is the vertex layout of [TexVertex].
func TexLayout() gfx.LayoutDesc {
	attrs := make([]gfx.VertexAttr, 3)
	attrs[shaders.AttrVSPos].Format = gfx.Float3
	attrs[shaders.AttrVSCol].Format = gfx.Float4
	attrs[shaders.AttrVSUV].Format = gfx.Float2
	return gfx.LayoutDesc{Attrs: attrs}
}

// mesh is the vertex data, shader and layout of a variant.
type mesh struct {
	data   []byte
	count  int
	stride int
	shader *gfx.ShaderDesc
	layout gfx.LayoutDesc
}

func variantMesh(v Variants, backend gfx.Backends) (*mesh, error) {
	switch v {
	case Colored:
		return &mesh{vertexBytes(ColoredTriangle), len(ColoredTriangle), ColorVertexStride, shaders.ColoredShaderDesc(), ColorLayout()}, nil
	case Textured, Flipped:
		return &mesh{vertexBytes(TexturedTriangle), len(TexturedTriangle), TexVertexStride, shaders.TexturedShaderDesc(), TexLayout()}, nil
	case Transform:
		return &mesh{vertexBytes(TexturedTriangle), len(TexturedTriangle), TexVertexStride, shaders.TransformShaderDesc(), TexLayout()}, nil
	case Scaled:
		shd := shaders.QuadShaderDesc(backend)
		if shd == nil {
			return nil, errors.New("quad shader is not available for the " + backend.String() + " backend")
		}
		return &mesh{vertexBytes(WhiteTriangle), len(WhiteTriangle), TexVertexStride, shd, TexLayout()}, nil
	}
	return nil, errors.New("unknown variant " + v.String())
}
