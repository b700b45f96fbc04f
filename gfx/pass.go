// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import "fmt"

type passState struct {
	inPass        bool
	width, height int
	pipeline      Pipeline
	bindings      bool

	// uniform blocks applied since the pipeline, per stage
	uniforms [2][MaxUniformBlocks]bool
}

// BeginDefaultPass starts rendering to the default framebuffer of the
// given size in pixels. A nil action clears color to [Black].
func (c *Context) BeginDefaultPass(action *PassAction, width, height int) error {
	if c.shutdown {
		return ErrShutdown
	}
	if c.pass.inPass {
		return c.fail(validationError("BeginDefaultPass: already in a pass"))
	}
	if width <= 0 || height <= 0 {
		return c.fail(validationError("BeginDefaultPass: framebuffer size %dx%d must be positive", width, height))
	}
	if action == nil {
		action = &PassAction{Color: ColorAction{Action: LoadClear, Value: Black}}
	}
	c.pass = passState{inPass: true, width: width, height: height}
	c.backend.BeginPass(action, width, height)
	return nil
}

// ApplyPipeline makes pip the pipeline of the following draws. It
// resets the bindings and uniforms, which must be applied again.
func (c *Context) ApplyPipeline(pip Pipeline) error {
	if err := c.checkPass("ApplyPipeline"); err != nil {
		return err
	}
	s := c.pipelines.lookup(pip.ID)
	if s == nil {
		return c.fail(fmt.Errorf("ApplyPipeline: pipeline %#x: %w", pip.ID, ErrInvalidHandle))
	}
	c.pass.pipeline = pip
	c.pass.bindings = false
	c.pass.uniforms = [2][MaxUniformBlocks]bool{}
	c.backend.ApplyPipeline(s.res.impl)
	return nil
}

// ApplyBindings binds the buffers and images of the following draws.
// They must match the layout and shader of the applied pipeline.
func (c *Context) ApplyBindings(bind *Bindings) error {
	if err := c.checkPass("ApplyBindings"); err != nil {
		return err
	}
	pip, err := c.appliedPipeline("ApplyBindings")
	if err != nil {
		return err
	}
	shd := c.shaders.lookup(pip.desc.Shader.ID)
	if shd == nil {
		return c.fail(fmt.Errorf("ApplyBindings: shader of pipeline %q: %w", pip.desc.Label, ErrInvalidHandle))
	}
	bb := &BackendBindings{Pipeline: pip.impl}

	nbuf := len(pip.desc.Layout.Buffers)
	if len(bind.VertexBuffers) < nbuf {
		return c.fail(validationError("ApplyBindings: pipeline %q needs %d vertex buffers, got %d", pip.desc.Label, nbuf, len(bind.VertexBuffers)))
	}
	if len(bind.VertexBufferOffsets) != 0 && len(bind.VertexBufferOffsets) < nbuf {
		return c.fail(validationError("ApplyBindings: %d vertex buffer offsets for %d buffers", len(bind.VertexBufferOffsets), nbuf))
	}
	for i := range nbuf {
		b := c.buffers.lookup(bind.VertexBuffers[i].ID)
		if b == nil {
			return c.fail(fmt.Errorf("ApplyBindings: vertex buffer %d: %w", i, ErrInvalidHandle))
		}
		if b.res.desc.Type != VertexBuffer {
			return c.fail(validationError("ApplyBindings: buffer %q in vertex slot %d is not a vertex buffer", b.res.desc.Label, i))
		}
		off := 0
		if len(bind.VertexBufferOffsets) != 0 {
			off = bind.VertexBufferOffsets[i]
		}
		if off < 0 || off >= b.res.desc.Size {
			return c.fail(validationError("ApplyBindings: vertex buffer %q offset %d out of range", b.res.desc.Label, off))
		}
		bb.VertexBuffers = append(bb.VertexBuffers, b.res.impl)
		bb.VertexBufferOffsets = append(bb.VertexBufferOffsets, off)
	}

	if pip.desc.IndexType == IndexNone {
		if bind.IndexBuffer.ID != 0 {
			return c.fail(validationError("ApplyBindings: pipeline %q has no index type but an index buffer is bound", pip.desc.Label))
		}
	} else {
		b := c.buffers.lookup(bind.IndexBuffer.ID)
		if b == nil {
			return c.fail(fmt.Errorf("ApplyBindings: index buffer: %w", ErrInvalidHandle))
		}
		if b.res.desc.Type != IndexBuffer {
			return c.fail(validationError("ApplyBindings: buffer %q is not an index buffer", b.res.desc.Label))
		}
		if bind.IndexBufferOffset < 0 || bind.IndexBufferOffset >= b.res.desc.Size {
			return c.fail(validationError("ApplyBindings: index buffer %q offset %d out of range", b.res.desc.Label, bind.IndexBufferOffset))
		}
		bb.IndexBuffer = b.res.impl
		bb.IndexBufferOffset = bind.IndexBufferOffset
	}

	var imgErr error
	bb.VSImages, imgErr = c.stageImages(VertexStage, &shd.res.desc, bind.VSImages)
	if imgErr != nil {
		return c.fail(imgErr)
	}
	bb.FSImages, imgErr = c.stageImages(FragmentStage, &shd.res.desc, bind.FSImages)
	if imgErr != nil {
		return c.fail(imgErr)
	}

	c.pass.bindings = true
	c.backend.ApplyBindings(bb)
	return nil
}

func (c *Context) stageImages(st ShaderStages, shd *ShaderDesc, imgs []Image) ([]any, error) {
	want := len(shd.Stage(st).Images)
	if len(imgs) != want {
		return nil, validationError("ApplyBindings: shader %q needs %d %s images, got %d", shd.Label, want, st, len(imgs))
	}
	var impls []any
	for i, img := range imgs {
		s := c.images.lookup(img.ID)
		if s == nil {
			return nil, fmt.Errorf("ApplyBindings: %s image %d: %w", st, i, ErrInvalidHandle)
		}
		impls = append(impls, s.res.impl)
	}
	return impls, nil
}

// ApplyUniforms sets uniform block slot of the given stage for the
// following draws. The length of data must be the declared block size.
// Every block the shader declares must be applied before a draw.
func (c *Context) ApplyUniforms(stage ShaderStages, slot int, data []byte) error {
	if err := c.checkPass("ApplyUniforms"); err != nil {
		return err
	}
	pip, err := c.appliedPipeline("ApplyUniforms")
	if err != nil {
		return err
	}
	if stage != VertexStage && stage != FragmentStage {
		return c.fail(validationError("ApplyUniforms: unknown stage %d", stage))
	}
	shd := c.shaders.lookup(pip.desc.Shader.ID)
	if shd == nil {
		return c.fail(fmt.Errorf("ApplyUniforms: shader of pipeline %q: %w", pip.desc.Label, ErrInvalidHandle))
	}
	blocks := shd.res.desc.Stage(stage).UniformBlocks
	if slot < 0 || slot >= len(blocks) {
		return c.fail(validationError("ApplyUniforms: shader %q has no %s uniform block %d", shd.res.desc.Label, stage, slot))
	}
	if len(data) != blocks[slot].Size {
		return c.fail(validationError("ApplyUniforms: %s uniform block %d is %d bytes, got %d", stage, slot, blocks[slot].Size, len(data)))
	}
	c.pass.uniforms[stage][slot] = true
	c.backend.ApplyUniforms(stage, slot, data)
	return nil
}

// Draw draws count vertices (or indices) from base, instances times.
// A zero count or instance count draws nothing.
func (c *Context) Draw(base, count, instances int) error {
	if err := c.checkPass("Draw"); err != nil {
		return err
	}
	pip, err := c.appliedPipeline("Draw")
	if err != nil {
		return err
	}
	if !c.pass.bindings {
		return c.fail(validationError("Draw: no bindings applied since ApplyPipeline"))
	}
	if base < 0 || count < 0 || instances < 0 {
		return c.fail(validationError("Draw: negative argument (base %d, count %d, instances %d)", base, count, instances))
	}
	if shd := c.shaders.lookup(pip.desc.Shader.ID); shd != nil {
		for _, st := range []ShaderStages{VertexStage, FragmentStage} {
			for i := range shd.res.desc.Stage(st).UniformBlocks {
				if !c.pass.uniforms[st][i] {
					return c.fail(validationError("Draw: %s uniform block %d of shader %q not applied", st, i, shd.res.desc.Label))
				}
			}
		}
	}
	if count == 0 || instances == 0 {
		return nil
	}
	c.backend.Draw(base, count, instances)
	return nil
}

// EndPass ends the current pass.
func (c *Context) EndPass() error {
	if err := c.checkPass("EndPass"); err != nil {
		return err
	}
	c.pass = passState{}
	c.backend.EndPass()
	return nil
}

// Commit ends the frame. It must be called outside a pass.
func (c *Context) Commit() error {
	if c.shutdown {
		return ErrShutdown
	}
	if c.pass.inPass {
		return c.fail(validationError("Commit: pass not ended"))
	}
	c.frameIndex++
	if err := c.backend.Commit(); err != nil {
		return c.fail(fmt.Errorf("gfx: frame %d: %w", c.frameIndex, err))
	}
	return nil
}

func (c *Context) checkPass(op string) error {
	if c.shutdown {
		return ErrShutdown
	}
	if !c.pass.inPass {
		return c.fail(validationError("%s: not in a pass", op))
	}
	return nil
}

func (c *Context) appliedPipeline(op string) (*pipeline, error) {
	s := c.pipelines.lookup(c.pass.pipeline.ID)
	if s == nil {
		return nil, c.fail(validationError("%s: no pipeline applied", op))
	}
	return &s.res, nil
}
