// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/statusbar.go
// Summary: Single-row bar with left- and right-aligned segments.

package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelkit/core"
)

// StatusBar fills one row and prints a left and a right segment. The right
// segment wins when they would overlap.
type StatusBar struct {
	Left       string
	Right      string
	Style      core.Style
	LeftStyle  core.Style
	RightStyle core.Style
}

func (s StatusBar) Render(f *core.Frame, area core.Rect) {
	if area.H < 1 {
		return
	}
	row := core.Rect{X: area.X, Y: area.Y, W: area.W, H: 1}
	f.RenderIn(row, func(f *core.Frame) {
		f.Fill(core.Rect{W: area.W, H: 1}, ' ', s.Style)
		f.Print(0, 0, s.Left, s.Style.Patch(s.LeftStyle))
		rightW := runewidth.StringWidth(s.Right)
		f.Print(area.W-rightW, 0, s.Right, s.Style.Patch(s.RightStyle))
	})
}
