// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glfwwin

import (
	"cogentcore.org/glframe/events"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var keyCodes = map[glfw.Key]events.Codes{
	glfw.KeyEscape:    events.KeyEscape,
	glfw.KeyEnter:     events.KeyEnter,
	glfw.KeyKPEnter:   events.KeyEnter,
	glfw.KeyTab:       events.KeyTab,
	glfw.KeyBackspace: events.KeyBackspace,
	glfw.KeySpace:     events.KeySpace,
	glfw.KeyLeft:      events.KeyLeftArrow,
	glfw.KeyRight:     events.KeyRightArrow,
	glfw.KeyUp:        events.KeyUpArrow,
	glfw.KeyDown:      events.KeyDownArrow,
}

// keyCode maps a glfw key to a key code. glfw letters, digits and
// function keys are contiguous ranges, as are ours.
func keyCode(key glfw.Key) events.Codes {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return events.KeyA + events.Codes(key-glfw.KeyA)
	case key >= glfw.Key0 && key <= glfw.Key9:
		return events.Key0 + events.Codes(key-glfw.Key0)
	case key >= glfw.KeyF1 && key <= glfw.KeyF12:
		return events.KeyF1 + events.Codes(key-glfw.KeyF1)
	}
	if c, ok := keyCodes[key]; ok {
		return c
	}
	return events.KeyUnknown
}

func modifiers(mods glfw.ModifierKey) events.Modifiers {
	var m events.Modifiers
	if mods&glfw.ModShift != 0 {
		m |= events.Shift
	}
	if mods&glfw.ModControl != 0 {
		m |= events.Control
	}
	if mods&glfw.ModAlt != 0 {
		m |= events.Alt
	}
	if mods&glfw.ModSuper != 0 {
		m |= events.Meta
	}
	return m
}
