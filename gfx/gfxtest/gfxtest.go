// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gfxtest provides a [gfx.Backend] that records calls, for tests
// that run without a GPU.
package gfxtest

import (
	"slices"

	"cogentcore.org/glframe/gfx"
)

// Resource is the backend value of a resource created by a [Recorder].
type Resource struct {
	Kind  string
	Label string

	// Desc is a copy of the descriptor the resource was created from:
	// a gfx.BufferDesc, gfx.ImageDesc, gfx.ShaderDesc or gfx.PipelineDesc.
	Desc any

	// Data is a copy of the initial content of buffers and images.
	Data []byte

	Destroyed bool
}

// Call is one recorded backend call.
type Call struct {
	Op string

	// Res is the resource created, destroyed or applied.
	Res *Resource

	// Args are the integer arguments: pass size, uniform stage and
	// slot, draw base, count and instances.
	Args []int

	// Data is a copy of the uniform data.
	Data []byte

	Action   gfx.PassAction
	Bindings gfx.BackendBindings
}

// Recorder is a [gfx.Backend] that records every call in order.
type Recorder struct {
	Calls []Call

	// Fail makes the named operation return the error, for operations
	// that return one.
	Fail map[string]error

	// Hook is called with every call as it is recorded.
	Hook func(Call)

	Resources []*Resource
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{Fail: map[string]error{}}
}

func (r *Recorder) record(c Call) {
	r.Calls = append(r.Calls, c)
	if r.Hook != nil {
		r.Hook(c)
	}
}

func (r *Recorder) create(op, kind, label string, desc any, data []byte) (any, error) {
	if err := r.Fail[op]; err != nil {
		return nil, err
	}
	res := &Resource{Kind: kind, Label: label, Desc: desc, Data: slices.Clone(data)}
	r.Resources = append(r.Resources, res)
	r.record(Call{Op: op, Res: res})
	return res, nil
}

func (r *Recorder) destroy(op string, v any) {
	res := v.(*Resource)
	res.Destroyed = true
	r.record(Call{Op: op, Res: res})
}

// Ops returns the names of the recorded calls in order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how many times op was called.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Last returns the last call of op, and false if there is none.
func (r *Recorder) Last(op string) (Call, bool) {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if r.Calls[i].Op == op {
			return r.Calls[i], true
		}
	}
	return Call{}, false
}

// Live returns the resources that were created and not destroyed.
func (r *Recorder) Live() []*Resource {
	var live []*Resource
	for _, res := range r.Resources {
		if !res.Destroyed {
			live = append(live, res)
		}
	}
	return live
}

// Reset forgets the recorded calls, keeping the resources.
func (r *Recorder) Reset() {
	r.Calls = nil
}

func (r *Recorder) Type() gfx.Backends { return gfx.BackendDummy }

func (r *Recorder) Setup(desc *gfx.Desc) error {
	if err := r.Fail["Setup"]; err != nil {
		return err
	}
	r.record(Call{Op: "Setup"})
	return nil
}

func (r *Recorder) Shutdown() {
	r.record(Call{Op: "Shutdown"})
}

func (r *Recorder) CreateBuffer(desc *gfx.BufferDesc) (any, error) {
	d := *desc
	d.Data = nil
	return r.create("CreateBuffer", "buffer", desc.Label, d, desc.Data)
}

func (r *Recorder) DestroyBuffer(buf any) { r.destroy("DestroyBuffer", buf) }

func (r *Recorder) CreateImage(desc *gfx.ImageDesc) (any, error) {
	d := *desc
	d.Data = nil
	return r.create("CreateImage", "image", desc.Label, d, desc.Data)
}

func (r *Recorder) DestroyImage(img any) { r.destroy("DestroyImage", img) }

func (r *Recorder) CreateShader(desc *gfx.ShaderDesc) (any, error) {
	return r.create("CreateShader", "shader", desc.Label, *desc, nil)
}

func (r *Recorder) DestroyShader(shd any) { r.destroy("DestroyShader", shd) }

func (r *Recorder) CreatePipeline(desc *gfx.PipelineDesc, shd any) (any, error) {
	d := *desc
	d.Layout.Attrs = slices.Clone(desc.Layout.Attrs)
	d.Layout.Buffers = slices.Clone(desc.Layout.Buffers)
	return r.create("CreatePipeline", "pipeline", desc.Label, d, nil)
}

func (r *Recorder) DestroyPipeline(pip any) { r.destroy("DestroyPipeline", pip) }

func (r *Recorder) BeginPass(action *gfx.PassAction, width, height int) {
	r.record(Call{Op: "BeginPass", Action: *action, Args: []int{width, height}})
}

func (r *Recorder) ApplyPipeline(pip any) {
	r.record(Call{Op: "ApplyPipeline", Res: pip.(*Resource)})
}

func (r *Recorder) ApplyBindings(bind *gfx.BackendBindings) {
	b := *bind
	b.VertexBuffers = slices.Clone(bind.VertexBuffers)
	b.VertexBufferOffsets = slices.Clone(bind.VertexBufferOffsets)
	b.VSImages = slices.Clone(bind.VSImages)
	b.FSImages = slices.Clone(bind.FSImages)
	r.record(Call{Op: "ApplyBindings", Res: bind.Pipeline.(*Resource), Bindings: b})
}

func (r *Recorder) ApplyUniforms(stage gfx.ShaderStages, slot int, data []byte) {
	r.record(Call{Op: "ApplyUniforms", Args: []int{int(stage), slot}, Data: slices.Clone(data)})
}

func (r *Recorder) Draw(base, count, instances int) {
	r.record(Call{Op: "Draw", Args: []int{base, count, instances}})
}

func (r *Recorder) EndPass() {
	r.record(Call{Op: "EndPass"})
}

func (r *Recorder) Commit() error {
	r.record(Call{Op: "Commit"})
	return r.Fail["Commit"]
}
