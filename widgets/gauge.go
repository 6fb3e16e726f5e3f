// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/gauge.go
// Summary: Horizontal ratio bar with an optional centered label.

package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelkit/core"
)

// Gauge fills Ratio (clamped to 0..1) of its row with BarStyle.
type Gauge struct {
	Ratio    float64
	Label    string
	Style    core.Style
	BarStyle core.Style
}

func (g Gauge) Render(f *core.Frame, area core.Rect) {
	if area.H < 1 || area.W < 1 {
		return
	}
	ratio := min(max(g.Ratio, 0), 1)
	filled := int(ratio * float64(area.W))

	f.RenderIn(core.Rect{X: area.X, Y: area.Y, W: area.W, H: 1}, func(f *core.Frame) {
		f.Fill(core.Rect{W: area.W, H: 1}, ' ', g.Style)
		f.Fill(core.Rect{W: filled, H: 1}, '█', g.Style.Patch(g.BarStyle))
		if g.Label != "" {
			x := (area.W - runewidth.StringWidth(g.Label)) / 2
			f.Print(max(x, 0), 0, g.Label, g.Style)
		}
	})
}
