// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events that a window delivers
// to its polling loop, as a small tagged union over the [Event] interface.
package events

import (
	"fmt"
	"image"
)

// Types is the kind of an [Event].
type Types int32 //enums:enum

const (
	// UnknownType is the zero value.
	UnknownType Types = iota

	// Quit is sent when the user asks the application to quit,
	// typically by closing the window.
	Quit

	// KeyDown is sent when a key is pressed, and again for key repeats.
	KeyDown

	// KeyUp is sent when a key is released.
	KeyUp

	// WindowResize is sent when the framebuffer of the window
	// changes size.
	WindowResize
)

// Event is an input event. Switch on the concrete type, or on
// [Event.Type] when only the kind matters.
type Event interface {
	Type() Types
}

// QuitEvent asks the application to quit.
type QuitEvent struct{}

func (QuitEvent) Type() Types { return Quit }

// Key is a key press or release.
type Key struct {
	// Typ is [KeyDown] or [KeyUp].
	Typ Types

	// Code is the key that changed state.
	Code Codes

	// Mods are the modifier keys held at the time.
	Mods Modifiers

	// Repeat is set on a [KeyDown] generated by key auto-repeat.
	Repeat bool
}

func (ev Key) Type() Types { return ev.Typ }

func (ev Key) String() string {
	return fmt.Sprintf("%s %s", ev.Typ, ev.Code)
}

// Resize reports a new framebuffer size in pixels.
type Resize struct {
	Size image.Point
}

func (Resize) Type() Types { return WindowResize }

// IsQuitRequest returns whether the event asks the application to stop:
// a [QuitEvent], or a key press of [KeyEscape].
func IsQuitRequest(ev Event) bool {
	switch ev := ev.(type) {
	case QuitEvent:
		return true
	case Key:
		return ev.Typ == KeyDown && ev.Code == KeyEscape
	}
	return false
}
