// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame is the frame renderer: it opens a window with an
// OpenGL context, creates the resources of one [Variants] and draws one
// triangle per frame until the window is closed or Escape is pressed.
package frame

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/glframe/base/errors"
	"cogentcore.org/glframe/base/iox/imagex"
	"cogentcore.org/glframe/gfx"
	"cogentcore.org/glframe/window"
)

// Exit codes returned by [Main].
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Platform provides the native collaborators of [Main].
type Platform interface {
	// Init initializes the windowing library.
	Init() error

	// OpenWindow opens a window and makes its OpenGL context current.
	OpenWindow(attrs *window.Attributes) (window.Window, error)

	// NewBackend returns the gfx backend for the current context of win.
	NewBackend(win window.Window) (gfx.Backend, error)

	// Terminate shuts the windowing library down.
	Terminate()
}

// Main runs the renderer on the platform until it quits, and returns
// the process exit code. Failures are logged at error level. Whatever
// was created is torn down in reverse order: gfx resources, GL context,
// window, windowing library.
func Main(cfg *Config, pf Platform) int {
	if errors.Log(Run(cfg, pf)) != nil {
		return ExitFailure
	}
	return ExitOK
}

// Run is [Main] returning the error instead of an exit code.
func Run(cfg *Config, pf Platform) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := pf.Init(); err != nil {
		return fmt.Errorf("failed to initialize windowing: %w", err)
	}
	defer pf.Terminate()

	attrs := cfg.WindowAttributes()
	win, err := pf.OpenWindow(&attrs)
	if err != nil {
		return fmt.Errorf("failed to open window: %w", err)
	}
	defer func() {
		win.ReleaseContext()
		win.Destroy()
	}()

	backend, err := pf.NewBackend(win)
	if err != nil {
		return fmt.Errorf("failed to initialize GPU backend: %w", err)
	}

	var img *image.RGBA
	if cfg.Variant.HasTexture() {
		img, err = imagex.OpenRGBA(cfg.Image, cfg.Variant.FlipImage())
		if err != nil {
			return fmt.Errorf("failed to load image: %w", err)
		}
		slog.Debug("frame: loaded image", "file", cfg.Image, "size", img.Bounds().Size(), "flipped", cfg.Variant.FlipImage())
	}

	desc := cfg.GfxDesc(slog.Default())
	ctx, err := gfx.Setup(&desc, backend)
	if err != nil {
		return err
	}
	defer ctx.Shutdown()

	r, err := New(win, ctx, cfg, img)
	if err != nil {
		return fmt.Errorf("failed to create resources: %w", err)
	}
	defer r.Release()
	return r.Run()
}
