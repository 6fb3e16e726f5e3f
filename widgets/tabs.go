// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/tabs.go
// Summary: Horizontal tab strip.

package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelkit/core"
)

// Tabs renders titles in a row, the active one highlighted.
type Tabs struct {
	Titles      []string
	Active      int
	Divider     string // defaults to " │ "
	Style       core.Style
	ActiveStyle core.Style
}

func (t Tabs) Render(f *core.Frame, area core.Rect) {
	if area.H < 1 {
		return
	}
	divider := t.Divider
	if divider == "" {
		divider = " │ "
	}
	f.RenderIn(core.Rect{X: area.X, Y: area.Y, W: area.W, H: 1}, func(f *core.Frame) {
		x := 0
		for i, title := range t.Titles {
			if i > 0 {
				f.Print(x, 0, divider, t.Style)
				x += runewidth.StringWidth(divider)
			}
			style := t.Style
			if i == t.Active {
				style = t.Style.Patch(t.ActiveStyle)
			}
			f.Print(x, 0, title, style)
			x += runewidth.StringWidth(title)
		}
	})
}
