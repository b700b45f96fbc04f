// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Codes identify physical keys.
type Codes int32

const (
	KeyUnknown Codes = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeySpace
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeyA through KeyZ are contiguous.
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Key0 through Key9 are contiguous.
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

var codeNames = [...]string{
	"Unknown", "Escape", "Enter", "Tab", "Backspace", "Space",
	"Left", "Right", "Up", "Down",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
}

func (c Codes) String() string {
	switch {
	case c >= KeyA && c <= KeyZ:
		return string(rune('A' + c - KeyA))
	case c >= Key0 && c <= Key9:
		return string(rune('0' + c - Key0))
	case c >= 0 && int(c) < len(codeNames):
		return codeNames[c]
	}
	return fmt.Sprintf("Codes(%d)", int32(c))
}

// Modifiers is a bit set of held modifier keys.
type Modifiers int32

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
	Meta
)

// Has returns whether all the modifiers in m are held.
func (mods Modifiers) Has(m Modifiers) bool {
	return mods&m == m
}
