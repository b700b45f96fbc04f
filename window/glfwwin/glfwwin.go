// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glfwwin implements [window.Window] with glfw.
// glfw must be used from the main thread only: importing
// [cogentcore.org/glframe/driver/desktop] locks it in an init function.
package glfwwin

import (
	"fmt"
	"image"

	"cogentcore.org/glframe/events"
	"cogentcore.org/glframe/window"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Init initializes glfw. It must be called before [Open].
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	return nil
}

// Terminate shuts glfw down. Call it last, after every window is destroyed.
func Terminate() {
	glfw.Terminate()
}

var _ window.Window = (*Window)(nil)

// Window is a glfw window with its OpenGL context made current
// on the calling thread.
type Window struct {
	glw   *glfw.Window
	queue events.Queue
}

// Open creates a window and its OpenGL context from the given attributes,
// makes the context current and sets the swap interval.
func Open(attrs *window.Attributes) (*Window, error) {
	if err := attrs.Validate(); err != nil {
		return nil, err
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.RedBits, attrs.RedBits)
	glfw.WindowHint(glfw.GreenBits, attrs.GreenBits)
	glfw.WindowHint(glfw.BlueBits, attrs.BlueBits)
	glfw.WindowHint(glfw.AlphaBits, attrs.AlphaBits)
	glfw.WindowHint(glfw.DoubleBuffer, glfwBool(attrs.DoubleBuffer))
	glfw.WindowHint(glfw.SRGBCapable, glfwBool(attrs.SRGB))
	glfw.WindowHint(glfw.Resizable, glfwBool(attrs.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, attrs.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, attrs.GLMinor)
	if attrs.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		// required on macOS for any core context
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	glw, err := glfw.CreateWindow(attrs.Size.X, attrs.Size.Y, attrs.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window with OpenGL %d.%d context: %w", attrs.GLMajor, attrs.GLMinor, err)
	}
	glw.MakeContextCurrent()
	if attrs.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{glw: glw}
	glw.SetCloseCallback(w.onClose)
	glw.SetKeyCallback(w.onKey)
	glw.SetFramebufferSizeCallback(w.onFramebufferSize)
	return w, nil
}

func (w *Window) PollEvents() []events.Event {
	glfw.PollEvents()
	return w.queue.Drain()
}

func (w *Window) FramebufferSize() image.Point {
	width, height := w.glw.GetFramebufferSize()
	return image.Pt(width, height)
}

func (w *Window) Swap() {
	w.glw.SwapBuffers()
}

func (w *Window) ReleaseContext() {
	glfw.DetachCurrentContext()
}

func (w *Window) Destroy() {
	if w.glw == nil {
		return
	}
	w.glw.Destroy()
	w.glw = nil
}

func (w *Window) onClose(glw *glfw.Window) {
	w.queue.Send(events.QuitEvent{})
}

func (w *Window) onKey(glw *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	ev := events.Key{Code: keyCode(key), Mods: modifiers(mods)}
	switch action {
	case glfw.Press:
		ev.Typ = events.KeyDown
	case glfw.Repeat:
		ev.Typ = events.KeyDown
		ev.Repeat = true
	case glfw.Release:
		ev.Typ = events.KeyUp
	default:
		return
	}
	w.queue.Send(ev)
}

func (w *Window) onFramebufferSize(glw *glfw.Window, width, height int) {
	w.queue.Send(events.Resize{Size: image.Pt(width, height)})
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
