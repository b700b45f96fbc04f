// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/glframe/base/iox/imagex"
	"cogentcore.org/glframe/events"
	"cogentcore.org/glframe/gfx"
	"cogentcore.org/glframe/shaders"
	"cogentcore.org/glframe/window"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer owns the window, the gfx context and the resources of one
// variant, and draws its frames.
type Renderer struct {
	Window  window.Window
	Gfx     *gfx.Context
	Variant Variants

	Buffer   gfx.Buffer
	Shader   gfx.Shader
	Pipeline gfx.Pipeline

	// Image is the texture of textured variants.
	Image gfx.Image

	Bindings   gfx.Bindings
	PassAction gfx.PassAction

	// Frames is the number of frames drawn.
	Frames int

	// MaxFrames stops [Renderer.Run] after that many frames when positive.
	MaxFrames int

	quit      bool
	minimized bool
}

// minimizedWait is how long [Renderer.Run] sleeps between event polls
// while the framebuffer is empty.
var minimizedWait = 10 * time.Millisecond

// New creates the vertex buffer, shader, pipeline and, for textured
// variants, the image of the configured variant. img is the decoded
// image of textured variants and is ignored by the others.
func New(win window.Window, ctx *gfx.Context, cfg *Config, img *image.RGBA) (*Renderer, error) {
	r := &Renderer{
		Window:     win,
		Gfx:        ctx,
		Variant:    cfg.Variant,
		PassAction: cfg.PassAction(),
		MaxFrames:  cfg.MaxFrames,
	}
	if err := r.makeResources(cfg, img); err != nil {
		r.Release()
		return nil, err
	}
	slog.Info("frame: renderer ready", "variant", r.Variant, "backend", ctx.QueryBackend())
	return r, nil
}

func (r *Renderer) makeResources(cfg *Config, img *image.RGBA) error {
	m, err := variantMesh(r.Variant, r.Gfx.QueryBackend())
	if err != nil {
		return err
	}
	r.Buffer, err = r.Gfx.MakeBuffer(&gfx.BufferDesc{
		Size:  m.count * m.stride,
		Data:  m.data,
		Label: "vertex buffer",
	})
	if err != nil {
		return err
	}
	r.Shader, err = r.Gfx.MakeShader(m.shader)
	if err != nil {
		return err
	}
	r.Pipeline, err = r.Gfx.MakePipeline(&gfx.PipelineDesc{
		Shader:        r.Shader,
		Layout:        m.layout,
		PrimitiveType: gfx.Triangles,
		IndexType:     gfx.IndexNone,
		Label:         "pipeline",
	})
	if err != nil {
		return err
	}
	r.Bindings.VertexBuffers = []gfx.Buffer{r.Buffer}

	if !r.Variant.HasTexture() {
		return nil
	}
	if img == nil {
		return fmt.Errorf("frame: variant %v needs an image", r.Variant)
	}
	size := img.Bounds().Size()
	r.Image, err = r.Gfx.MakeImage(&gfx.ImageDesc{
		Width:     size.X,
		Height:    size.Y,
		MinFilter: gfx.FilterNearest,
		MagFilter: gfx.FilterNearest,
		Data:      imagex.Pixels(img),
		Label:     filepath.Base(cfg.Image),
	})
	if err != nil {
		return err
	}
	r.Bindings.FSImages = []gfx.Image{r.Image}
	return nil
}

// HandleEvents drains the pending window events. A quit event or an
// Escape key press ends [Renderer.Run] after the frame in progress.
func (r *Renderer) HandleEvents() {
	for _, ev := range r.Window.PollEvents() {
		if events.IsQuitRequest(ev) {
			slog.Debug("frame: quit requested", "event", ev.Type(), "frame", r.Frames)
			r.quit = true
		}
		if rs, ok := ev.(events.Resize); ok {
			slog.Debug("frame: framebuffer resized", "size", rs.Size)
		}
	}
}

// Quit makes [Renderer.Run] return after the frame in progress.
func (r *Renderer) Quit() { r.quit = true }

// Quitting returns whether a quit was requested.
func (r *Renderer) Quitting() bool { return r.quit }

// Uniforms returns the vertex stage uniform block of the variant for
// the current frame, or nil for variants without one.
func (r *Renderer) Uniforms() []byte {
	switch r.Variant {
	case Transform:
		p := shaders.TransformParams{MVP: mgl32.Ident4()}
		return p.Bytes()
	case Scaled:
		p := shaders.VSParams{MVP: mgl32.Ident4(), Scale: mgl32.Vec4{2, 2, 1, 1}}
		return p.Bytes()
	}
	return nil
}

// Minimized returns whether the framebuffer is empty, as it is while
// the window is iconified. Nothing can be drawn then.
func (r *Renderer) Minimized() bool {
	size := r.Window.FramebufferSize()
	empty := size.X <= 0 || size.Y <= 0
	if empty != r.minimized {
		slog.Debug("frame: framebuffer empty", "minimized", empty, "size", size)
		r.minimized = empty
	}
	return empty
}

// Frame draws one frame and commits it. The caller presents it.
// It does nothing while the framebuffer is empty.
func (r *Renderer) Frame() error {
	size := r.Window.FramebufferSize()
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}
	if err := r.Gfx.BeginDefaultPass(&r.PassAction, size.X, size.Y); err != nil {
		return err
	}
	if err := r.Gfx.ApplyPipeline(r.Pipeline); err != nil {
		return err
	}
	if err := r.Gfx.ApplyBindings(&r.Bindings); err != nil {
		return err
	}
	if params := r.Uniforms(); params != nil {
		if err := r.Gfx.ApplyUniforms(gfx.VertexStage, shaders.SlotVSParams, params); err != nil {
			return err
		}
	}
	if err := r.Gfx.Draw(0, 3, 1); err != nil {
		return err
	}
	if err := r.Gfx.EndPass(); err != nil {
		return err
	}
	if err := r.Gfx.Commit(); err != nil {
		return err
	}
	r.Frames++
	return nil
}

// Run polls events, draws and presents frames until a quit is
// requested, or until MaxFrames frames when it is positive. The frame
// in which the quit arrives is still drawn and presented. While the
// window is minimized events are polled but no frame is drawn.
func (r *Renderer) Run() error {
	for !r.quit {
		r.HandleEvents()
		if r.Minimized() {
			time.Sleep(minimizedWait)
			continue
		}
		if err := r.Frame(); err != nil {
			return fmt.Errorf("frame %d: %w", r.Frames, err)
		}
		r.Window.Swap()
		if r.MaxFrames > 0 && r.Frames >= r.MaxFrames {
			slog.Debug("frame: frame limit reached", "frames", r.Frames)
			break
		}
	}
	return nil
}

// Release destroys the gfx resources of the renderer. The window and
// the gfx context stay open.
func (r *Renderer) Release() {
	r.Gfx.DestroyPipeline(r.Pipeline)
	r.Gfx.DestroyShader(r.Shader)
	r.Gfx.DestroyImage(r.Image)
	r.Gfx.DestroyBuffer(r.Buffer)
	r.Pipeline, r.Shader, r.Image, r.Buffer = gfx.Pipeline{}, gfx.Shader{}, gfx.Image{}, gfx.Buffer{}
}
