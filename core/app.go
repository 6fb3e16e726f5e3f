// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/app.go
// Summary: The contracts a host application satisfies to be driven by the
// runtime.

package core

// App is the host application contract. The runtime never inspects Msg; it
// is an opaque payload threaded between Update calls.
type App[Msg any] interface {
	// Init is called once before the first render and may seed startup
	// messages. Returning None is the common case.
	Init() Command[Msg]

	// Update applies one message and describes what should follow it.
	Update(Msg) Command[Msg]

	// View paints the application into a fresh frame.
	View(*Frame)
}

// Component is an embeddable app fragment that draws into a region instead
// of the whole frame. Parents route messages with UpdateChild and draw with
// Frame.RenderIn.
type Component[Msg any] interface {
	Update(Msg) Command[Msg]
	View(f *Frame, area Rect)
}
