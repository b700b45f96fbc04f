// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import (
	"fmt"
	"log/slog"
	"slices"
)

type buffer struct {
	desc BufferDesc
	impl any
}

type image struct {
	desc ImageDesc
	impl any
}

type shader struct {
	desc ShaderDesc
	impl any
}

type pipeline struct {
	desc PipelineDesc
	impl any
}

// Context owns the resource pools and the pass state on top of a
// [Backend]. Create it with [Setup] and release it with [Context.Shutdown].
type Context struct {
	desc    Desc
	logger  *slog.Logger
	backend Backend

	buffers   *pool[buffer]
	images    *pool[image]
	shaders   *pool[shader]
	pipelines *pool[pipeline]

	pass       passState
	frameIndex uint64
	shutdown   bool
}

// Setup sets up the backend and allocates the resource pools.
// Zero pool sizes of desc take the Default*PoolSize values.
func Setup(desc *Desc, backend Backend) (*Context, error) {
	d := Desc{}
	if desc != nil {
		d = *desc
	}
	sizes := []struct {
		name string
		size *int
		def  int
	}{
		{"buffer", &d.BufferPoolSize, DefaultBufferPoolSize},
		{"image", &d.ImagePoolSize, DefaultImagePoolSize},
		{"shader", &d.ShaderPoolSize, DefaultShaderPoolSize},
		{"pipeline", &d.PipelinePoolSize, DefaultPipelinePoolSize},
	}
	for _, s := range sizes {
		if *s.size == 0 {
			*s.size = s.def
		}
		if *s.size < 0 || *s.size > MaxPoolSize {
			return nil, validationError("%s pool size %d out of range [1, %d]", s.name, *s.size, MaxPoolSize)
		}
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if err := backend.Setup(&d); err != nil {
		return nil, fmt.Errorf("gfx: setting up %s backend: %w", backend.Type(), err)
	}
	c := &Context{
		desc:      d,
		logger:    d.Logger,
		backend:   backend,
		buffers:   newPool[buffer](d.BufferPoolSize),
		images:    newPool[image](d.ImagePoolSize),
		shaders:   newPool[shader](d.ShaderPoolSize),
		pipelines: newPool[pipeline](d.PipelinePoolSize),
	}
	c.logger.Debug("gfx: setup", "backend", backend.Type(), "buffers", d.BufferPoolSize, "images", d.ImagePoolSize, "shaders", d.ShaderPoolSize, "pipelines", d.PipelinePoolSize)
	return c, nil
}

// Shutdown destroys every live resource and shuts the backend down.
// Calls after the first do nothing.
func (c *Context) Shutdown() {
	if c.shutdown {
		return
	}
	for _, id := range c.pipelines.ids() {
		c.DestroyPipeline(Pipeline{id})
	}
	for _, id := range c.shaders.ids() {
		c.DestroyShader(Shader{id})
	}
	for _, id := range c.images.ids() {
		c.DestroyImage(Image{id})
	}
	for _, id := range c.buffers.ids() {
		c.DestroyBuffer(Buffer{id})
	}
	c.backend.Shutdown()
	c.shutdown = true
	c.logger.Debug("gfx: shutdown", "frames", c.frameIndex)
}

// fail logs err at error level and returns it.
func (c *Context) fail(err error) error {
	c.logger.Error(err.Error())
	return err
}

// MakeBuffer creates a buffer. A zero Size is taken from len(Data).
func (c *Context) MakeBuffer(desc *BufferDesc) (Buffer, error) {
	if c.shutdown {
		return Buffer{}, ErrShutdown
	}
	d := *desc
	if d.Size == 0 {
		d.Size = len(d.Data)
	}
	if err := validateBuffer(&d); err != nil {
		return Buffer{}, c.fail(err)
	}
	id, err := c.buffers.alloc(buffer{})
	if err != nil {
		return Buffer{}, c.fail(fmt.Errorf("buffer %q: %w (size %d)", d.Label, err, c.desc.BufferPoolSize))
	}
	impl, err := c.backend.CreateBuffer(&d)
	if err != nil {
		c.buffers.release(id)
		return Buffer{}, c.fail(fmt.Errorf("gfx: creating buffer %q: %w", d.Label, err))
	}
	d.Data = nil
	c.buffers.lookup(id).res = buffer{desc: d, impl: impl}
	c.logger.Debug("gfx: created buffer", "label", d.Label, "size", d.Size)
	return Buffer{id}, nil
}

// MakeImage creates a 2D texture.
func (c *Context) MakeImage(desc *ImageDesc) (Image, error) {
	if c.shutdown {
		return Image{}, ErrShutdown
	}
	d := *desc
	if err := validateImage(&d); err != nil {
		return Image{}, c.fail(err)
	}
	id, err := c.images.alloc(image{})
	if err != nil {
		return Image{}, c.fail(fmt.Errorf("image %q: %w (size %d)", d.Label, err, c.desc.ImagePoolSize))
	}
	impl, err := c.backend.CreateImage(&d)
	if err != nil {
		c.images.release(id)
		return Image{}, c.fail(fmt.Errorf("gfx: creating image %q: %w", d.Label, err))
	}
	d.Data = nil
	c.images.lookup(id).res = image{desc: d, impl: impl}
	c.logger.Debug("gfx: created image", "label", d.Label, "width", d.Width, "height", d.Height)
	return Image{id}, nil
}

// MakeShader creates a shader program.
func (c *Context) MakeShader(desc *ShaderDesc) (Shader, error) {
	if c.shutdown {
		return Shader{}, ErrShutdown
	}
	d := cloneShaderDesc(desc)
	for _, st := range []*ShaderStageDesc{&d.VS, &d.FS} {
		if st.Entry == "" {
			st.Entry = "main"
		}
	}
	if err := validateShader(&d); err != nil {
		return Shader{}, c.fail(err)
	}
	id, err := c.shaders.alloc(shader{})
	if err != nil {
		return Shader{}, c.fail(fmt.Errorf("shader %q: %w (size %d)", d.Label, err, c.desc.ShaderPoolSize))
	}
	impl, err := c.backend.CreateShader(&d)
	if err != nil {
		c.shaders.release(id)
		return Shader{}, c.fail(fmt.Errorf("gfx: creating shader %q: %w", d.Label, err))
	}
	c.shaders.lookup(id).res = shader{desc: d, impl: impl}
	c.logger.Debug("gfx: created shader", "label", d.Label, "attrs", len(d.Attrs))
	return Shader{id}, nil
}

// MakePipeline creates a pipeline for a live shader. Layout offsets and
// strides left zero are computed, see [VertexAttr] and [BufferLayout].
func (c *Context) MakePipeline(desc *PipelineDesc) (Pipeline, error) {
	if c.shutdown {
		return Pipeline{}, ErrShutdown
	}
	d := *desc
	shd := c.shaders.lookup(d.Shader.ID)
	if shd == nil {
		return Pipeline{}, c.fail(fmt.Errorf("pipeline %q: shader %#x: %w", d.Label, d.Shader.ID, ErrInvalidHandle))
	}
	if d.PrimitiveType < Triangles || d.PrimitiveType > Points {
		return Pipeline{}, c.fail(validationError("pipeline %q: unknown primitive type %d", d.Label, d.PrimitiveType))
	}
	if d.IndexType < IndexNone || d.IndexType > IndexUint32 {
		return Pipeline{}, c.fail(validationError("pipeline %q: unknown index type %d", d.Label, d.IndexType))
	}
	layout, err := resolveLayout(d.Label, &d.Layout, &shd.res.desc)
	if err != nil {
		return Pipeline{}, c.fail(err)
	}
	d.Layout = layout
	id, err := c.pipelines.alloc(pipeline{})
	if err != nil {
		return Pipeline{}, c.fail(fmt.Errorf("pipeline %q: %w (size %d)", d.Label, err, c.desc.PipelinePoolSize))
	}
	impl, err := c.backend.CreatePipeline(&d, shd.res.impl)
	if err != nil {
		c.pipelines.release(id)
		return Pipeline{}, c.fail(fmt.Errorf("gfx: creating pipeline %q: %w", d.Label, err))
	}
	c.pipelines.lookup(id).res = pipeline{desc: d, impl: impl}
	c.logger.Debug("gfx: created pipeline", "label", d.Label, "shader", shd.res.desc.Label, "attrs", len(d.Layout.Attrs))
	return Pipeline{id}, nil
}

// DestroyBuffer destroys a buffer. Invalid handles are ignored.
func (c *Context) DestroyBuffer(b Buffer) {
	if s := c.buffers.lookup(b.ID); s != nil {
		c.backend.DestroyBuffer(s.res.impl)
		c.logger.Debug("gfx: destroyed buffer", "label", s.res.desc.Label)
		c.buffers.release(b.ID)
	}
}

// DestroyImage destroys an image. Invalid handles are ignored.
func (c *Context) DestroyImage(img Image) {
	if s := c.images.lookup(img.ID); s != nil {
		c.backend.DestroyImage(s.res.impl)
		c.logger.Debug("gfx: destroyed image", "label", s.res.desc.Label)
		c.images.release(img.ID)
	}
}

// DestroyShader destroys a shader. Invalid handles are ignored.
func (c *Context) DestroyShader(shd Shader) {
	if s := c.shaders.lookup(shd.ID); s != nil {
		c.backend.DestroyShader(s.res.impl)
		c.logger.Debug("gfx: destroyed shader", "label", s.res.desc.Label)
		c.shaders.release(shd.ID)
	}
}

// DestroyPipeline destroys a pipeline. Invalid handles are ignored.
func (c *Context) DestroyPipeline(pip Pipeline) {
	if s := c.pipelines.lookup(pip.ID); s != nil {
		c.backend.DestroyPipeline(s.res.impl)
		c.logger.Debug("gfx: destroyed pipeline", "label", s.res.desc.Label)
		c.pipelines.release(pip.ID)
		if c.pass.pipeline == pip {
			c.pass.pipeline = Pipeline{}
		}
	}
}

func state(live bool) ResourceStates {
	if live {
		return Valid
	}
	return Invalid
}

func (c *Context) QueryBufferState(b Buffer) ResourceStates {
	return state(c.buffers.lookup(b.ID) != nil)
}

func (c *Context) QueryImageState(img Image) ResourceStates {
	return state(c.images.lookup(img.ID) != nil)
}

func (c *Context) QueryShaderState(shd Shader) ResourceStates {
	return state(c.shaders.lookup(shd.ID) != nil)
}

func (c *Context) QueryPipelineState(pip Pipeline) ResourceStates {
	return state(c.pipelines.lookup(pip.ID) != nil)
}

// QueryBufferDesc returns the descriptor a buffer was created with,
// without its data.
func (c *Context) QueryBufferDesc(b Buffer) (BufferDesc, bool) {
	s := c.buffers.lookup(b.ID)
	if s == nil {
		return BufferDesc{}, false
	}
	return s.res.desc, true
}

// QueryImageDesc returns the descriptor an image was created with,
// without its data.
func (c *Context) QueryImageDesc(img Image) (ImageDesc, bool) {
	s := c.images.lookup(img.ID)
	if s == nil {
		return ImageDesc{}, false
	}
	return s.res.desc, true
}

// QueryPipelineDesc returns the resolved descriptor of a pipeline,
// with the computed layout offsets and strides.
func (c *Context) QueryPipelineDesc(pip Pipeline) (PipelineDesc, bool) {
	s := c.pipelines.lookup(pip.ID)
	if s == nil {
		return PipelineDesc{}, false
	}
	d := s.res.desc
	d.Layout.Attrs = slices.Clone(d.Layout.Attrs)
	d.Layout.Buffers = slices.Clone(d.Layout.Buffers)
	return d, true
}

// QueryBackend returns the type of the backend.
func (c *Context) QueryBackend() Backends {
	return c.backend.Type()
}

// QueryDesc returns the descriptor of the context with defaults filled in.
func (c *Context) QueryDesc() Desc {
	return c.desc
}

// FrameIndex returns the number of committed frames.
func (c *Context) FrameIndex() uint64 {
	return c.frameIndex
}

func cloneShaderDesc(d *ShaderDesc) ShaderDesc {
	r := *d
	r.Attrs = slices.Clone(d.Attrs)
	for _, st := range []*ShaderStageDesc{&r.VS, &r.FS} {
		st.Bytecode = slices.Clone(st.Bytecode)
		st.Images = slices.Clone(st.Images)
		blocks := slices.Clone(st.UniformBlocks)
		for i := range blocks {
			blocks[i].Uniforms = slices.Clone(blocks[i].Uniforms)
		}
		st.UniformBlocks = blocks
	}
	return r
}
