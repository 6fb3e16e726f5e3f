// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/driver.go
// Summary: The backend driver contract between the runtime and a terminal.

package core

import (
	"errors"
	"time"
)

// ErrDriverClosed is returned by Poll once the driver's event source is
// gone, typically because the screen was finalized underneath the loop.
var ErrDriverClosed = errors.New("core: driver closed")

// Driver is the terminal backend the runtime draws through. Init acquires
// the terminal (raw mode, alternate screen) and Fini releases it; the
// runtime guarantees Fini runs on every exit path, including panics.
type Driver interface {
	Init() error
	Fini()

	// Size reports the current terminal dimensions in cells.
	Size() (int, int)

	// Poll blocks for the next event, up to timeout. A nil event with a
	// nil error means the timeout elapsed.
	Poll(timeout time.Duration) (Event, error)

	// Apply stages a set of cell updates.
	Apply(updates []CellUpdate)

	// Flush makes staged updates visible.
	Flush() error
}
