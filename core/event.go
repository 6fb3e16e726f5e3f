// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/event.go
// Summary: Runtime-level events delivered by the backend driver.

package core

import "github.com/gdamore/tcell/v2"

// Event is a runtime-level occurrence, distinct from an application
// message. The user-supplied mapper decides which events become messages.
type Event interface {
	isEvent()
}

// KeyEvent is a key press. Key and Mod follow tcell's encoding; Rune is
// meaningful when Key == tcell.KeyRune.
type KeyEvent struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// ResizeEvent reports a new terminal size.
type ResizeEvent struct {
	W, H int
}

// TickEvent is synthesized when no other event arrives within the
// configured tick interval.
type TickEvent struct{}

func (KeyEvent) isEvent()    {}
func (ResizeEvent) isEvent() {}
func (TickEvent) isEvent()   {}
