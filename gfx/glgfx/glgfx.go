// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgfx implements [gfx.Backend] on OpenGL 3.3 core profile.
// All calls must be made on the thread with the GL context current.
package glgfx

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/glframe/gfx"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Backend is the OpenGL 3.3 core [gfx.Backend].
type Backend struct {
	logger *slog.Logger

	vao uint32

	// pipeline is the applied pipeline
	pipeline *glPipeline

	// enabled is the number of vertex attribute arrays enabled
	enabled int

	indexOffset int

	// scratch holds decoded uniform values, reused across calls
	scratch []float32
}

// New loads the OpenGL function pointers of the current context.
func New() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glgfx: failed to initialize OpenGL: %w", err)
	}
	return &Backend{logger: slog.Default()}, nil
}

func (b *Backend) Type() gfx.Backends { return gfx.BackendGLCore33 }

// Setup creates the vertex array object that holds all vertex state.
// Core profile has no default one.
func (b *Backend) Setup(desc *gfx.Desc) error {
	if desc.Logger != nil {
		b.logger = desc.Logger
	}
	b.logger.Info("glgfx: OpenGL", "version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	return checkError("Setup")
}

func (b *Backend) Shutdown() {
	gl.BindVertexArray(0)
	gl.DeleteVertexArrays(1, &b.vao)
	b.vao = 0
	b.pipeline = nil
}

var errorNames = map[uint32]string{
	gl.INVALID_ENUM:                  "GL_INVALID_ENUM",
	gl.INVALID_VALUE:                 "GL_INVALID_VALUE",
	gl.INVALID_OPERATION:             "GL_INVALID_OPERATION",
	gl.INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
	gl.OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
}

// checkError drains the GL error flags and returns them as one error.
func checkError(op string) error {
	var names []string
	for range 8 {
		e := gl.GetError()
		if e == gl.NO_ERROR {
			break
		}
		name, ok := errorNames[e]
		if !ok {
			name = fmt.Sprintf("GL error %#x", e)
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil
	}
	return fmt.Errorf("glgfx %s: %s", op, strings.Join(names, ", "))
}

// cstr returns a null terminated copy of s for gl.Str.
func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}
