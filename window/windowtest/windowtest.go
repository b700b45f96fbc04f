// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package windowtest provides a scripted [window.Window] for tests.
package windowtest

import (
	"image"

	"cogentcore.org/glframe/events"
)

// Window is a [window.Window] that returns scripted events.
type Window struct {
	// Script holds the events returned by each call to PollEvents, in
	// order. Polls past the end of the script return no events.
	Script [][]events.Event

	// Size is the framebuffer size.
	Size image.Point

	// Ops are the names of the calls made, in order.
	Ops []string

	// Hook is called with the name of every call as it is made.
	Hook func(op string)

	Polls int
	Swaps int

	Released  bool
	Destroyed bool
}

// New returns a window of the given framebuffer size with the given
// events for successive polls.
func New(size image.Point, script ...[]events.Event) *Window {
	return &Window{Size: size, Script: script}
}

func (w *Window) record(op string) {
	w.Ops = append(w.Ops, op)
	if w.Hook != nil {
		w.Hook(op)
	}
}

func (w *Window) PollEvents() []events.Event {
	w.record("PollEvents")
	i := w.Polls
	w.Polls++
	if i < len(w.Script) {
		return w.Script[i]
	}
	return nil
}

func (w *Window) FramebufferSize() image.Point {
	return w.Size
}

func (w *Window) Swap() {
	w.record("Swap")
	w.Swaps++
}

func (w *Window) ReleaseContext() {
	w.record("ReleaseContext")
	w.Released = true
}

func (w *Window) Destroy() {
	w.record("Destroy")
	w.Destroyed = true
}
