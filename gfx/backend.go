// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

// Backend turns validated [Context] calls into graphics API calls.
// The values returned by the Create methods are opaque to [Context]
// and are passed back unchanged to the other methods.
//
// A Backend is only called with descriptors and commands that passed
// validation, so it only needs to report errors of the API itself.
type Backend interface {
	Type() Backends

	// Setup is called once by [Setup], with the graphics context current.
	Setup(desc *Desc) error

	// Shutdown is called once by [Context.Shutdown], after every
	// resource was destroyed.
	Shutdown()

	CreateBuffer(desc *BufferDesc) (any, error)
	DestroyBuffer(buf any)

	CreateImage(desc *ImageDesc) (any, error)
	DestroyImage(img any)

	CreateShader(desc *ShaderDesc) (any, error)
	DestroyShader(shd any)

	// CreatePipeline gets the resolved descriptor, with all layout
	// offsets and strides filled in, and the backend shader.
	CreatePipeline(desc *PipelineDesc, shd any) (any, error)
	DestroyPipeline(pip any)

	BeginPass(action *PassAction, width, height int)
	ApplyPipeline(pip any)
	ApplyBindings(bind *BackendBindings)
	ApplyUniforms(stage ShaderStages, slot int, data []byte)
	Draw(base, count, instances int)
	EndPass()

	// Commit ends the frame. Errors of the API raised during the frame
	// are reported here.
	Commit() error
}

// BackendBindings are [Bindings] with handles resolved to backend
// resources. VertexBuffers and VertexBufferOffsets have one entry per
// buffer of the pipeline layout.
type BackendBindings struct {
	Pipeline            any
	VertexBuffers       []any
	VertexBufferOffsets []int
	IndexBuffer         any
	IndexBufferOffset   int
	VSImages            []any
	FSImages            []any
}
