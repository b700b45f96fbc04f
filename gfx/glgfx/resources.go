// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgfx

import (
	"unsafe"

	"cogentcore.org/glframe/gfx"
	"github.com/go-gl/gl/v3.3-core/gl"
)

type glBuffer struct {
	handle uint32
	target uint32
}

type glImage struct {
	handle uint32
}

var usages = map[gfx.Usages]uint32{
	gfx.Immutable: gl.STATIC_DRAW,
	gfx.Dynamic:   gl.DYNAMIC_DRAW,
	gfx.Stream:    gl.STREAM_DRAW,
}

func (b *Backend) CreateBuffer(desc *gfx.BufferDesc) (any, error) {
	buf := &glBuffer{target: gl.ARRAY_BUFFER}
	if desc.Type == gfx.IndexBuffer {
		buf.target = gl.ELEMENT_ARRAY_BUFFER
	}
	var ptr unsafe.Pointer
	if len(desc.Data) > 0 {
		ptr = gl.Ptr(desc.Data)
	}
	gl.GenBuffers(1, &buf.handle)
	gl.BindBuffer(buf.target, buf.handle)
	gl.BufferData(buf.target, desc.Size, ptr, usages[desc.Usage])
	gl.BindBuffer(buf.target, 0)
	if err := checkError("CreateBuffer"); err != nil {
		gl.DeleteBuffers(1, &buf.handle)
		return nil, err
	}
	return buf, nil
}

func (b *Backend) DestroyBuffer(v any) {
	buf := v.(*glBuffer)
	gl.DeleteBuffers(1, &buf.handle)
	buf.handle = 0
}

var filters = map[gfx.Filters]int32{
	gfx.FilterNearest: gl.NEAREST,
	gfx.FilterLinear:  gl.LINEAR,
}

var wraps = map[gfx.Wraps]int32{
	gfx.WrapRepeat:         gl.REPEAT,
	gfx.WrapClampToEdge:    gl.CLAMP_TO_EDGE,
	gfx.WrapMirroredRepeat: gl.MIRRORED_REPEAT,
}

func (b *Backend) CreateImage(desc *gfx.ImageDesc) (any, error) {
	img := &glImage{}
	gl.GenTextures(1, &img.handle)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, img.handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filters[desc.MinFilter])
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filters[desc.MagFilter])
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wraps[desc.WrapU])
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wraps[desc.WrapV])
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, 0)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Data))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	if err := checkError("CreateImage"); err != nil {
		gl.DeleteTextures(1, &img.handle)
		return nil, err
	}
	return img, nil
}

func (b *Backend) DestroyImage(v any) {
	img := v.(*glImage)
	gl.DeleteTextures(1, &img.handle)
	img.handle = 0
}
