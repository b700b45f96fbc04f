// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window defines the contract between the frame loop and a native
// window that owns an OpenGL context.
package window

import (
	"fmt"
	"image"

	"cogentcore.org/glframe/events"
)

// Window is a native window with a current OpenGL context.
// All methods must be called on the thread that opened it.
type Window interface {
	// PollEvents processes pending native events without blocking
	// and returns the resulting events in order.
	PollEvents() []events.Event

	// FramebufferSize returns the size of the default framebuffer in pixels.
	FramebufferSize() image.Point

	// Swap presents the back buffer.
	Swap()

	// ReleaseContext releases the OpenGL context of the window.
	// No GL calls may be made after it.
	ReleaseContext()

	// Destroy closes the window. It must be the last call on the window.
	Destroy()
}

// Attributes are the window and pixel format settings used to open
// a [Window].
type Attributes struct {
	Title string
	Size  image.Point

	// Bit depths of the color channels of the default framebuffer.
	RedBits, GreenBits, BlueBits, AlphaBits int

	DoubleBuffer bool

	// SRGB asks for an sRGB-capable default framebuffer.
	SRGB bool

	// GLMajor and GLMinor are the requested OpenGL context version.
	GLMajor, GLMinor int

	// CoreProfile requests a core (not compatibility) profile context.
	CoreProfile bool

	// VSync sets a swap interval of 1 when on, 0 when off.
	VSync bool

	Resizable bool
}

// DefaultAttributes returns an 800x600 non-resizable window with an
// 8-bit RGBA, double-buffered, non-sRGB framebuffer and an OpenGL 3.3
// core context with vsync.
func DefaultAttributes() Attributes {
	return Attributes{
		Title:        "glframe",
		Size:         image.Pt(800, 600),
		RedBits:      8,
		GreenBits:    8,
		BlueBits:     8,
		AlphaBits:    8,
		DoubleBuffer: true,
		GLMajor:      3,
		GLMinor:      3,
		CoreProfile:  true,
		VSync:        true,
	}
}

// Validate checks that the attributes can describe a window.
func (a *Attributes) Validate() error {
	if a.Size.X <= 0 || a.Size.Y <= 0 {
		return fmt.Errorf("window: invalid size %v", a.Size)
	}
	for _, b := range [...]int{a.RedBits, a.GreenBits, a.BlueBits, a.AlphaBits} {
		if b < 0 || b > 16 {
			return fmt.Errorf("window: invalid color bit depth %d", b)
		}
	}
	if a.GLMajor < 1 || a.GLMinor < 0 {
		return fmt.Errorf("window: invalid OpenGL version %d.%d", a.GLMajor, a.GLMinor)
	}
	if a.CoreProfile && (a.GLMajor < 3 || (a.GLMajor == 3 && a.GLMinor < 2)) {
		return fmt.Errorf("window: core profile needs OpenGL 3.2 or later, not %d.%d", a.GLMajor, a.GLMinor)
	}
	return nil
}
