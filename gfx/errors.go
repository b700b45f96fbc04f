// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gfx is a small descriptor-based GPU library. Resources are
// created from plain descriptor structs into fixed-size pools and are
// referred to by generation-checked handles. Rendering is a sequence of
// order-checked pass commands that a [Backend] turns into API calls.
//
// A frame is:
//
//	ctx.BeginDefaultPass(&action, width, height)
//	ctx.ApplyPipeline(pip)
//	ctx.ApplyBindings(&bind)
//	ctx.ApplyUniforms(gfx.VertexStage, 0, params)
//	ctx.Draw(0, 3, 1)
//	ctx.EndPass()
//	ctx.Commit()
//
// A [Context] is not safe for concurrent use; it belongs to the thread
// that owns the graphics context.
package gfx

import (
	"errors"
	"fmt"
)

var (
	// ErrPoolExhausted is returned when creating a resource whose pool
	// has no free slot.
	ErrPoolExhausted = errors.New("gfx: resource pool exhausted")

	// ErrInvalidHandle is returned for handles that do not refer to a
	// live resource.
	ErrInvalidHandle = errors.New("gfx: invalid resource handle")

	// ErrValidation is wrapped by every descriptor and command
	// validation error.
	ErrValidation = errors.New("gfx: validation failed")

	// ErrShutdown is returned by every call after [Context.Shutdown].
	ErrShutdown = errors.New("gfx: context is shut down")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
