// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

func validateBuffer(d *BufferDesc) error {
	if d.Size <= 0 {
		return validationError("buffer %q: size must be positive", d.Label)
	}
	if d.Type != VertexBuffer && d.Type != IndexBuffer {
		return validationError("buffer %q: unknown type %d", d.Label, d.Type)
	}
	switch d.Usage {
	case Immutable:
		if len(d.Data) != d.Size {
			return validationError("buffer %q: immutable buffer needs %d bytes of data, got %d", d.Label, d.Size, len(d.Data))
		}
	case Dynamic, Stream:
		if d.Data != nil {
			return validationError("buffer %q: only immutable buffers take data at creation", d.Label)
		}
	default:
		return validationError("buffer %q: unknown usage %d", d.Label, d.Usage)
	}
	return nil
}

func validateImage(d *ImageDesc) error {
	if d.Width <= 0 || d.Height <= 0 {
		return validationError("image %q: size %dx%d must be positive", d.Label, d.Width, d.Height)
	}
	if d.PixelFormat != RGBA8 {
		return validationError("image %q: unknown pixel format %d", d.Label, d.PixelFormat)
	}
	want := d.Width * d.Height * d.PixelFormat.Bytes()
	if len(d.Data) != want {
		return validationError("image %q: %dx%d image needs %d bytes of data, got %d", d.Label, d.Width, d.Height, want, len(d.Data))
	}
	return nil
}

func validateShader(d *ShaderDesc) error {
	if len(d.Attrs) > MaxVertexAttributes {
		return validationError("shader %q: %d attributes, at most %d", d.Label, len(d.Attrs), MaxVertexAttributes)
	}
	for i, a := range d.Attrs {
		if a.Name == "" {
			return validationError("shader %q: attribute %d has no name", d.Label, i)
		}
	}
	for _, st := range []ShaderStages{VertexStage, FragmentStage} {
		if err := validateStage(d.Label, st, d.Stage(st)); err != nil {
			return err
		}
	}
	return nil
}

func validateStage(label string, st ShaderStages, d *ShaderStageDesc) error {
	if d.Source == "" && len(d.Bytecode) == 0 {
		return validationError("shader %q: %s has no source or bytecode", label, st)
	}
	if len(d.UniformBlocks) > MaxUniformBlocks {
		return validationError("shader %q: %s has %d uniform blocks, at most %d", label, st, len(d.UniformBlocks), MaxUniformBlocks)
	}
	for bi := range d.UniformBlocks {
		ub := &d.UniformBlocks[bi]
		if len(ub.Uniforms) == 0 || len(ub.Uniforms) > MaxUniformMembers {
			return validationError("shader %q: %s uniform block %d has %d members, want 1 to %d", label, st, bi, len(ub.Uniforms), MaxUniformMembers)
		}
		size := 0
		for ui := range ub.Uniforms {
			u := &ub.Uniforms[ui]
			if u.Name == "" {
				return validationError("shader %q: %s uniform block %d member %d has no name", label, st, bi, ui)
			}
			if u.Type.Floats() == 0 {
				return validationError("shader %q: %s uniform %q has invalid type", label, st, u.Name)
			}
			if u.ArrayCount < 0 {
				return validationError("shader %q: %s uniform %q has negative array count", label, st, u.Name)
			}
			size += u.Bytes()
		}
		if ub.Size != size {
			return validationError("shader %q: %s uniform block %d size is %d, members need %d", label, st, bi, ub.Size, size)
		}
	}
	if len(d.Images) > MaxShaderStageImages {
		return validationError("shader %q: %s has %d images, at most %d", label, st, len(d.Images), MaxShaderStageImages)
	}
	for i, img := range d.Images {
		if img.Name == "" {
			return validationError("shader %q: %s image %d has no name", label, st, i)
		}
	}
	return nil
}

// resolveLayout validates a vertex layout against the attributes of
// its shader and returns a copy with all offsets and strides filled in.
// When every offset is zero the attributes of each buffer are packed
// in order.
func resolveLayout(label string, l *LayoutDesc, shd *ShaderDesc) (LayoutDesc, error) {
	var r LayoutDesc
	if len(l.Attrs) == 0 {
		return r, validationError("pipeline %q: layout has no attributes", label)
	}
	if len(l.Attrs) != len(shd.Attrs) {
		return r, validationError("pipeline %q: layout has %d attributes, shader %q has %d", label, len(l.Attrs), shd.Label, len(shd.Attrs))
	}
	nbuf := 0
	auto := true
	for i, a := range l.Attrs {
		if a.Format.Bytes() == 0 {
			return r, validationError("pipeline %q: attribute %d (%s) has invalid format", label, i, shd.Attrs[i].Name)
		}
		if a.BufferIndex < 0 || a.BufferIndex >= MaxVertexBuffers {
			return r, validationError("pipeline %q: attribute %d buffer index %d out of range", label, i, a.BufferIndex)
		}
		if a.Offset < 0 {
			return r, validationError("pipeline %q: attribute %d has negative offset", label, i)
		}
		if a.Offset != 0 {
			auto = false
		}
		nbuf = max(nbuf, a.BufferIndex+1)
	}
	if len(l.Buffers) > nbuf {
		return r, validationError("pipeline %q: layout declares %d buffers, attributes use %d", label, len(l.Buffers), nbuf)
	}

	r.Attrs = make([]VertexAttr, len(l.Attrs))
	copy(r.Attrs, l.Attrs)
	r.Buffers = make([]BufferLayout, nbuf)
	copy(r.Buffers, l.Buffers)

	// end of the furthest attribute per buffer
	ends := make([]int, nbuf)
	for i := range r.Attrs {
		a := &r.Attrs[i]
		if auto {
			a.Offset = ends[a.BufferIndex]
		}
		ends[a.BufferIndex] = max(ends[a.BufferIndex], a.Offset+a.Format.Bytes())
	}
	for bi := range r.Buffers {
		b := &r.Buffers[bi]
		if ends[bi] == 0 {
			return r, validationError("pipeline %q: no attribute reads buffer %d", label, bi)
		}
		switch {
		case b.Stride == 0:
			b.Stride = ends[bi]
		case b.Stride < ends[bi]:
			return r, validationError("pipeline %q: buffer %d stride %d is less than the %d bytes its attributes span", label, bi, b.Stride, ends[bi])
		}
	}
	return r, nil
}
