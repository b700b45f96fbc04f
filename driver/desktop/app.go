// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop is the desktop [frame.Platform]: glfw windows with
// OpenGL 3.3 core backends.
package desktop

import (
	"fmt"
	"runtime"

	"cogentcore.org/glframe/frame"
	"cogentcore.org/glframe/gfx"
	"cogentcore.org/glframe/gfx/glgfx"
	"cogentcore.org/glframe/window"
	"cogentcore.org/glframe/window/glfwwin"
)

func init() {
	// glfw and the GL context must stay on the main thread
	runtime.LockOSThread()
}

// ThePlatform is the single desktop platform.
var ThePlatform = &Platform{}

// Platform is the [frame.Platform] for the desktop.
type Platform struct{}

func (p *Platform) Init() error {
	return glfwwin.Init()
}

func (p *Platform) OpenWindow(attrs *window.Attributes) (window.Window, error) {
	w, err := glfwwin.Open(attrs)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// NewBackend returns a glgfx backend for the context of win, which
// must be current.
func (p *Platform) NewBackend(win window.Window) (gfx.Backend, error) {
	if _, ok := win.(*glfwwin.Window); !ok {
		return nil, fmt.Errorf("desktop: %T is not a glfw window", win)
	}
	return glgfx.New()
}

func (p *Platform) Terminate() {
	glfwwin.Terminate()
}

// Main runs the frame renderer with the given config on the desktop
// and returns the process exit code.
func Main(cfg *frame.Config) int {
	return frame.Main(cfg, ThePlatform)
}
