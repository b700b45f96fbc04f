// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgfx

import (
	"testing"

	"cogentcore.org/glframe/gfx"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/stretchr/testify/assert"
)

func TestCStr(t *testing.T) {
	assert.Equal(t, "mvp\x00", cstr("mvp"))
	assert.Equal(t, "mvp\x00", cstr("mvp\x00"))
}

func TestFormatTables(t *testing.T) {
	for _, f := range []gfx.VertexFormats{gfx.Float, gfx.Float2, gfx.Float3, gfx.Float4, gfx.UByte4N} {
		vf, ok := vertexFormats[f]
		if assert.True(t, ok, f.String()) {
			assert.Equal(t, f.Components(), int(vf.size), f.String())
		}
	}
	for p := gfx.Triangles; p <= gfx.Points; p++ {
		assert.Contains(t, primitives, p)
	}
	assert.Len(t, indexTypes, 2)

	var unset gfx.ImageDesc
	assert.Equal(t, int32(gl.NEAREST), filters[unset.MinFilter])
	assert.Equal(t, int32(gl.NEAREST), filters[unset.MagFilter])
	assert.Equal(t, int32(gl.LINEAR), filters[gfx.FilterLinear])
	assert.Equal(t, gfx.BackendGLCore33, (&Backend{}).Type())
}

func TestDecodeFloats(t *testing.T) {
	data := []byte{0, 0, 0x80, 0x3f, 0, 0, 0, 0x40, 0, 0, 0x40, 0x40}
	f := decodeFloats(nil, data)
	assert.Equal(t, []float32{1, 2, 3}, f)

	buf := make([]float32, 0, 16)
	f = decodeFloats(buf, data[:8])
	assert.Equal(t, []float32{1, 2}, f)
	assert.Equal(t, 16, cap(f), "a large enough slice is reused")

	allocs := testing.AllocsPerRun(10, func() { buf = decodeFloats(buf, data) })
	assert.Zero(t, allocs)
}
