// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"cogentcore.org/glframe/events"
	"cogentcore.org/glframe/gfx"
	"cogentcore.org/glframe/gfx/gfxtest"
	"cogentcore.org/glframe/shaders"
	"cogentcore.org/glframe/window"
	"cogentcore.org/glframe/window/windowtest"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// platform is a [Platform] of a scripted window and a recording backend
// that logs all calls to both in one list.
type platform struct {
	log   []string
	attrs window.Attributes
	win   *windowtest.Window
	rec   *gfxtest.Recorder

	initErr, openErr, backendErr error
}

func newPlatform(script ...[]events.Event) *platform {
	p := &platform{win: windowtest.New(image.Pt(800, 600), script...), rec: gfxtest.New()}
	p.win.Hook = func(op string) { p.log = append(p.log, op) }
	p.rec.Hook = func(c gfxtest.Call) { p.log = append(p.log, c.Op) }
	return p
}

func (p *platform) Init() error {
	p.log = append(p.log, "Init")
	return p.initErr
}

func (p *platform) OpenWindow(attrs *window.Attributes) (window.Window, error) {
	p.log = append(p.log, "OpenWindow")
	p.attrs = *attrs
	if p.openErr != nil {
		return nil, p.openErr
	}
	return p.win, nil
}

func (p *platform) NewBackend(win window.Window) (gfx.Backend, error) {
	p.log = append(p.log, "NewBackend")
	if p.backendErr != nil {
		return nil, p.backendErr
	}
	return p.rec, nil
}

func (p *platform) Terminate() {
	p.log = append(p.log, "Terminate")
}

// captureLog makes the default logger write to the returned buffer
// for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(old) })
	return &buf
}

// writeImage writes a 1x2 PNG, red on top of blue, and returns its path.
func writeImage(t *testing.T) string {
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	name := filepath.Join(t.TempDir(), "boomer.png")
	f, err := os.Create(name)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return name
}

func config(t *testing.T, v Variants) *Config {
	cfg := DefaultConfig()
	cfg.Variant = v
	cfg.Image = writeImage(t)
	return cfg
}

var (
	quit   = []events.Event{events.QuitEvent{}}
	escape = []events.Event{events.Key{Typ: events.KeyDown, Code: events.KeyEscape}}
)

var frameOps = []string{"PollEvents", "BeginPass", "ApplyPipeline", "ApplyBindings", "Draw", "EndPass", "Commit", "Swap"}

func TestMainColored(t *testing.T) {
	captureLog(t)
	p := newPlatform(nil, nil, quit)
	assert.Equal(t, ExitOK, Main(config(t, Colored), p))

	want := []string{"Init", "OpenWindow", "NewBackend", "Setup", "CreateBuffer", "CreateShader", "CreatePipeline"}
	for range 3 {
		want = append(want, frameOps...)
	}
	want = append(want, "DestroyPipeline", "DestroyShader", "DestroyBuffer", "Shutdown", "ReleaseContext", "Destroy", "Terminate")
	assert.Equal(t, want, p.log)

	assert.Equal(t, image.Pt(800, 600), p.attrs.Size)
	assert.True(t, p.attrs.CoreProfile)
	assert.Equal(t, 3, p.attrs.GLMajor)
	assert.True(t, p.attrs.VSync)
	assert.True(t, p.win.Released)
	assert.True(t, p.win.Destroyed)
	assert.Empty(t, p.rec.Live())

	begin, _ := p.rec.Last("BeginPass")
	assert.Equal(t, gfx.Black, begin.Action.Color.Value)
	assert.Equal(t, gfx.LoadClear, begin.Action.Color.Action)
	assert.Equal(t, []int{800, 600}, begin.Args)
	draw, _ := p.rec.Last("Draw")
	assert.Equal(t, []int{0, 3, 1}, draw.Args)
}

func TestIdleFrames(t *testing.T) {
	captureLog(t)
	for _, n := range []int{0, 1, 10} {
		script := make([][]events.Event, n+1)
		script[n] = quit
		p := newPlatform(script...)
		require.Equal(t, ExitOK, Main(config(t, Textured), p))
		for _, op := range []string{"BeginPass", "Draw", "EndPass", "Commit", "Swap", "PollEvents"} {
			assert.Equal(t, n+1, countOps(p.log, op), "%d idle frames: %s", n, op)
		}
	}
}

func countOps(log []string, op string) int {
	n := 0
	for _, o := range log {
		if o == op {
			n++
		}
	}
	return n
}

func TestEscapeQuits(t *testing.T) {
	captureLog(t)
	p := newPlatform(escape)
	assert.Equal(t, ExitOK, Main(config(t, Colored), p))
	assert.Equal(t, 1, p.win.Swaps, "the frame of the quit is completed")
	assert.Equal(t, 1, p.rec.Count("Commit"))
}

func TestHandleEvents(t *testing.T) {
	other := []events.Event{
		events.Key{Typ: events.KeyUp, Code: events.KeyEscape},
		events.Key{Typ: events.KeyDown, Code: events.KeyQ},
		events.Resize{Size: image.Pt(640, 480)},
	}
	r := &Renderer{Window: windowtest.New(image.Pt(8, 8), other, escape)}
	r.HandleEvents()
	assert.False(t, r.Quitting())
	r.HandleEvents()
	assert.True(t, r.Quitting())

	r = &Renderer{}
	r.Quit()
	assert.True(t, r.Quitting())
}

func TestMaxFrames(t *testing.T) {
	captureLog(t)
	cfg := config(t, Colored)
	cfg.MaxFrames = 5
	p := newPlatform()
	assert.Equal(t, ExitOK, Main(cfg, p))
	assert.Equal(t, 5, p.win.Swaps)
}

func TestMinimized(t *testing.T) {
	captureLog(t)
	old := minimizedWait
	minimizedWait = 0
	t.Cleanup(func() { minimizedWait = old })

	p := newPlatform(nil, nil, nil, nil, quit)
	hook := p.win.Hook
	p.win.Hook = func(op string) {
		hook(op)
		switch {
		case op == "Swap" && p.win.Swaps == 0:
			p.win.Size = image.Pt(0, 0)
		case op == "PollEvents" && p.win.Polls == 3:
			p.win.Size = image.Pt(800, 600)
		}
	}
	assert.Equal(t, ExitOK, Main(config(t, Colored), p))
	assert.Equal(t, 5, p.win.Polls)
	assert.Equal(t, 3, p.win.Swaps, "no frame is drawn or presented while minimized")
	assert.Equal(t, 3, p.rec.Count("BeginPass"))
	assert.Equal(t, 3, p.rec.Count("Commit"))
	assert.True(t, p.win.Destroyed)

	r := &Renderer{Window: windowtest.New(image.Pt(800, 0))}
	assert.True(t, r.Minimized())
	assert.NoError(t, r.Frame(), "an empty framebuffer skips the frame")
	assert.Zero(t, r.Frames)
}

func TestUniforms(t *testing.T) {
	captureLog(t)
	tests := []struct {
		variant Variants
		want    []byte
	}{
		{Transform, (&shaders.TransformParams{MVP: mgl32.Ident4()}).Bytes()},
		{Scaled, (&shaders.VSParams{MVP: mgl32.Ident4(), Scale: mgl32.Vec4{2, 2, 1, 1}}).Bytes()},
	}
	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			p := newPlatform(nil, quit)
			var pushed [][]byte
			p.rec.Hook = func(c gfxtest.Call) {
				if c.Op == "ApplyUniforms" {
					pushed = append(pushed, c.Data)
					assert.Equal(t, []int{int(gfx.VertexStage), shaders.SlotVSParams}, c.Args)
				}
			}
			require.Equal(t, ExitOK, Main(config(t, tt.variant), p))
			require.Len(t, pushed, 2, "one push per frame")
			for _, b := range pushed {
				assert.Equal(t, tt.want, b)
				assert.Len(t, b, tt.variant.UniformSize())
			}
		})
	}
	assert.Len(t, tests[0].want, 64)
	assert.Len(t, tests[1].want, 80)

	p := newPlatform(quit)
	require.Equal(t, ExitOK, Main(config(t, Flipped), p))
	assert.Zero(t, p.rec.Count("ApplyUniforms"))
}

func TestVertexLayout(t *testing.T) {
	captureLog(t)
	for _, v := range VariantsValues() {
		t.Run(v.String(), func(t *testing.T) {
			p := newPlatform(quit)
			require.Equal(t, ExitOK, Main(config(t, v), p))

			var buf, pip *gfxtest.Resource
			for _, res := range p.rec.Resources {
				switch res.Kind {
				case "buffer":
					buf = res
				case "pipeline":
					pip = res
				}
			}
			require.NotNil(t, buf)
			require.NotNil(t, pip)
			bd := buf.Desc.(gfx.BufferDesc)
			pd := pip.Desc.(gfx.PipelineDesc)
			attrs := pd.Layout.Attrs

			if v == Colored {
				assert.Equal(t, 3*ColorVertexStride, bd.Size)
				assert.Equal(t, int(unsafe.Sizeof(ColorVertex{})), ColorVertexStride)
				assert.Equal(t, ColorVertexStride, pd.Layout.Buffers[0].Stride)
				assert.Len(t, attrs, 2)
				assert.Equal(t, int(unsafe.Offsetof(ColorVertex{}.Color)), attrs[1].Offset)
			} else {
				assert.Equal(t, 3*TexVertexStride, bd.Size)
				assert.Equal(t, int(unsafe.Sizeof(TexVertex{})), TexVertexStride)
				assert.Equal(t, TexVertexStride, pd.Layout.Buffers[0].Stride)
				assert.Len(t, attrs, 3)
				assert.Equal(t, int(unsafe.Offsetof(TexVertex{}.Color)), attrs[shaders.AttrVSCol].Offset)
				assert.Equal(t, int(unsafe.Offsetof(TexVertex{}.UV)), attrs[shaders.AttrVSUV].Offset)
			}
			assert.Equal(t, bd.Size, len(buf.Data))
			assert.Equal(t, gfx.Triangles, pd.PrimitiveType)
			assert.Equal(t, gfx.IndexNone, pd.IndexType)
			assert.Equal(t, v.HasTexture(), p.rec.Count("CreateImage") == 1)
		})
	}
}

func TestVertexBytes(t *testing.T) {
	b := vertexBytes(WhiteTriangle)
	require.Len(t, b, 3*TexVertexStride)
	// first vertex: pos 0, 0.5, 0.5
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0x3f, 0, 0, 0, 0x3f}, b[:12])
}

func TestImageFlip(t *testing.T) {
	captureLog(t)
	red := []byte{255, 0, 0, 255}
	blue := []byte{0, 0, 255, 255}
	for v, first := range map[Variants][]byte{Textured: red, Flipped: blue, Transform: blue, Scaled: blue} {
		p := newPlatform(quit)
		require.Equal(t, ExitOK, Main(config(t, v), p))
		var img *gfxtest.Resource
		for _, res := range p.rec.Resources {
			if res.Kind == "image" {
				img = res
			}
		}
		require.NotNil(t, img, v.String())
		d := img.Desc.(gfx.ImageDesc)
		assert.Equal(t, 1, d.Width)
		assert.Equal(t, 2, d.Height)
		assert.Equal(t, "boomer.png", d.Label)
		assert.Equal(t, gfx.FilterNearest, d.MinFilter)
		assert.Equal(t, gfx.FilterNearest, d.MagFilter)
		assert.Equal(t, first, img.Data[:4], v.String())
	}
}

func TestMissingImage(t *testing.T) {
	log := captureLog(t)
	cfg := config(t, Textured)
	cfg.Image = filepath.Join(t.TempDir(), "missing.png")
	p := newPlatform(quit)
	assert.Equal(t, ExitFailure, Main(cfg, p))
	assert.Zero(t, p.rec.Count("CreateImage"))
	assert.Zero(t, p.win.Swaps)
	assert.Equal(t, []string{"Init", "OpenWindow", "NewBackend", "ReleaseContext", "Destroy", "Terminate"}, p.log)
	assert.Contains(t, log.String(), "level=ERROR")
	assert.Contains(t, log.String(), "failed to load image")
}

func TestNotAnImage(t *testing.T) {
	captureLog(t)
	cfg := config(t, Flipped)
	cfg.Image = filepath.Join(t.TempDir(), "boomer.png")
	require.NoError(t, os.WriteFile(cfg.Image, []byte("not a png"), 0o644))
	p := newPlatform(quit)
	assert.Equal(t, ExitFailure, Main(cfg, p))
	assert.Zero(t, p.rec.Count("CreateImage"))
}

func TestStartupFailures(t *testing.T) {
	fail := errors.New("no display")
	tests := []struct {
		name  string
		setup func(p *platform)
		log   []string
		msg   string
	}{
		{"init", func(p *platform) { p.initErr = fail }, []string{"Init"}, "failed to initialize windowing"},
		{"window", func(p *platform) { p.openErr = fail }, []string{"Init", "OpenWindow", "Terminate"}, "failed to open window"},
		{"backend", func(p *platform) { p.backendErr = fail },
			[]string{"Init", "OpenWindow", "NewBackend", "ReleaseContext", "Destroy", "Terminate"}, "failed to initialize GPU backend"},
		{"gfx", func(p *platform) { p.rec.Fail["Setup"] = fail },
			[]string{"Init", "OpenWindow", "NewBackend", "ReleaseContext", "Destroy", "Terminate"}, "no display"},
		{"shader", func(p *platform) { p.rec.Fail["CreateShader"] = fail },
			[]string{"Init", "OpenWindow", "NewBackend", "Setup", "CreateBuffer", "DestroyBuffer", "Shutdown", "ReleaseContext", "Destroy", "Terminate"},
			"failed to create resources"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := captureLog(t)
			p := newPlatform(quit)
			tt.setup(p)
			assert.Equal(t, ExitFailure, Main(config(t, Colored), p))
			assert.Equal(t, tt.log, p.log)
			assert.Contains(t, log.String(), "level=ERROR")
			assert.Contains(t, log.String(), tt.msg)
		})
	}
}

func TestFrameFailure(t *testing.T) {
	captureLog(t)
	p := newPlatform()
	p.rec.Fail["Commit"] = errors.New("GL_OUT_OF_MEMORY")
	assert.Equal(t, ExitFailure, Main(config(t, Colored), p))
	assert.Zero(t, p.win.Swaps, "a failed frame is not presented")
	assert.Equal(t, []string{"Shutdown", "ReleaseContext", "Destroy", "Terminate"}, p.log[len(p.log)-4:])
}

func TestPoolExhausted(t *testing.T) {
	captureLog(t)
	rec := gfxtest.New()
	ctx, err := gfx.Setup(&gfx.Desc{ShaderPoolSize: 1}, rec)
	require.NoError(t, err)
	_, err = ctx.MakeShader(shaders.ColoredShaderDesc())
	require.NoError(t, err)

	_, err = New(windowtest.New(image.Pt(8, 8)), ctx, config(t, Colored), nil)
	assert.ErrorIs(t, err, gfx.ErrPoolExhausted)
	assert.Equal(t, 1, rec.Count("DestroyBuffer"), "resources made before the failure are released")
}

func TestNewNeedsImage(t *testing.T) {
	captureLog(t)
	ctx, err := gfx.Setup(nil, gfxtest.New())
	require.NoError(t, err)
	_, err = New(windowtest.New(image.Pt(8, 8)), ctx, config(t, Textured), nil)
	assert.Error(t, err)
}

func TestScaledNeedsQuadShader(t *testing.T) {
	_, err := variantMesh(Scaled, gfx.Backends(42))
	assert.Error(t, err)
	m, err := variantMesh(Scaled, gfx.BackendGLCore33)
	require.NoError(t, err)
	assert.Equal(t, "quad_shader", m.shader.Label)
}
