// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/list.go
// Summary: Scrollable item list with a highlighted selection.

package widgets

import (
	"github.com/framegrace/texelkit/core"
)

// List renders a window of items starting at Offset, painting the selected
// row full-width with SelectedStyle layered over Style.
type List struct {
	Items         []string
	Selected      int
	Offset        int
	Style         core.Style
	SelectedStyle core.Style
}

// ClampOffset returns the offset adjusted so the selection is visible in a
// viewport of the given height. Callers keep the offset in their model and
// feed it back on the next render.
func (l List) ClampOffset(height int) int {
	if height <= 0 || len(l.Items) == 0 {
		return 0
	}
	offset := l.Offset
	if l.Selected < offset {
		offset = l.Selected
	}
	if l.Selected >= offset+height {
		offset = l.Selected - height + 1
	}
	return max(0, min(offset, len(l.Items)-1))
}

func (l List) Render(f *core.Frame, area core.Rect) {
	f.RenderIn(area, func(f *core.Frame) {
		for row := 0; row < area.H; row++ {
			idx := l.Offset + row
			if idx < 0 || idx >= len(l.Items) {
				break
			}
			style := l.Style
			if idx == l.Selected {
				style = l.Style.Patch(l.SelectedStyle)
				f.Fill(core.Rect{Y: row, W: area.W, H: 1}, ' ', style)
			}
			f.Print(0, row, l.Items[idx], style)
		}
	})
}
