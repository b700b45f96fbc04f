// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"cogentcore.org/glframe/gfx"
	"cogentcore.org/glframe/gfx/gfxtest"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatAt(b []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
}

func TestTransformParamsBytes(t *testing.T) {
	p := TransformParams{MVP: mgl32.Ident4()}
	b := p.Bytes()
	require.Len(t, b, TransformParamsSize)
	for i := range 16 {
		want := float32(0)
		if i%5 == 0 {
			want = 1
		}
		assert.Equal(t, want, floatAt(b, i), "element %d", i)
	}

	p.MVP = mgl32.Translate3D(1, 2, 3)
	b = p.Bytes()
	assert.Equal(t, []float32{1, 2, 3}, []float32{floatAt(b, 12), floatAt(b, 13), floatAt(b, 14)}, "column-major")
}

func TestVSParamsBytes(t *testing.T) {
	p := VSParams{MVP: mgl32.Ident4(), Scale: mgl32.Vec4{2, 2, 1, 1}}
	b := p.Bytes()
	require.Len(t, b, VSParamsSize)
	assert.Equal(t, float32(1), floatAt(b, 0))
	assert.Equal(t, float32(1), floatAt(b, 15))
	assert.Equal(t, []float32{2, 2, 1, 1}, []float32{floatAt(b, 16), floatAt(b, 17), floatAt(b, 18), floatAt(b, 19)})
}

func TestQuadShaderDesc(t *testing.T) {
	assert.Nil(t, QuadShaderDesc(gfx.Backends(99)))
	d := QuadShaderDesc(gfx.BackendGLCore33)
	require.NotNil(t, d)
	assert.Equal(t, "a_uv", d.Attrs[AttrVSUV].Name)
	assert.Equal(t, VSParamsSize, d.VS.UniformBlocks[SlotVSParams].Size)
	assert.Len(t, d.FS.Images, 1)
	assert.True(t, strings.HasPrefix(d.VS.Source, "#version 330"))
}

func TestShaderDescs(t *testing.T) {
	descs := []*gfx.ShaderDesc{
		ColoredShaderDesc(),
		TexturedShaderDesc(),
		TransformShaderDesc(),
		QuadShaderDesc(gfx.BackendDummy),
	}
	ctx, err := gfx.Setup(nil, gfxtest.New())
	require.NoError(t, err)
	for _, d := range descs {
		assert.Contains(t, d.VS.Source, "#version 330", d.Label)
		assert.Contains(t, d.FS.Source, "frag_color", d.Label)
		for _, a := range d.Attrs {
			assert.Contains(t, d.VS.Source, a.Name, d.Label)
		}
		for _, img := range d.FS.Images {
			assert.Contains(t, d.FS.Source, img.Name, d.Label)
		}
		_, err := ctx.MakeShader(d)
		assert.NoError(t, err, d.Label)
	}
	assert.Len(t, ColoredShaderDesc().Attrs, 2)
	assert.Len(t, TransformShaderDesc().Attrs, 3)
	assert.Equal(t, TransformParamsSize, TransformShaderDesc().VS.UniformBlocks[0].Size)
}
