// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/block.go
// Summary: Box-drawing container with an optional title.

package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelkit/core"
	"github.com/framegrace/texelkit/layout"
)

// BorderType selects the box-drawing glyph set.
type BorderType int

const (
	BorderPlain BorderType = iota
	BorderRounded
	BorderThick
)

type borderSet struct {
	tl, tr, bl, br, h, v rune
}

var borderSets = map[BorderType]borderSet{
	BorderPlain:   {'┌', '┐', '└', '┘', '─', '│'},
	BorderRounded: {'╭', '╮', '╰', '╯', '─', '│'},
	BorderThick:   {'┏', '┓', '┗', '┛', '━', '┃'},
}

// Block draws a one-cell border around its area. Content goes into
// Inner(area), typically via Frame.RenderIn.
type Block struct {
	Title      string
	Border     BorderType
	Style      core.Style
	TitleStyle core.Style
}

// Inner returns the area inside the border.
func (b Block) Inner(area core.Rect) core.Rect {
	return layout.PadAll(1).Apply(area)
}

func (b Block) Render(f *core.Frame, area core.Rect) {
	if area.W < 2 || area.H < 2 {
		return
	}
	set := borderSets[b.Border]

	f.RenderIn(area, func(f *core.Frame) {
		for x := 1; x < area.W-1; x++ {
			f.Print(x, 0, string(set.h), b.Style)
			f.Print(x, area.H-1, string(set.h), b.Style)
		}
		for y := 1; y < area.H-1; y++ {
			f.Print(0, y, string(set.v), b.Style)
			f.Print(area.W-1, y, string(set.v), b.Style)
		}
		f.Print(0, 0, string(set.tl), b.Style)
		f.Print(area.W-1, 0, string(set.tr), b.Style)
		f.Print(0, area.H-1, string(set.bl), b.Style)
		f.Print(area.W-1, area.H-1, string(set.br), b.Style)

		if b.Title != "" && area.W > 4 {
			title := runewidth.Truncate(b.Title, area.W-4, "…")
			f.Print(2, 0, title, b.Style.Patch(b.TitleStyle))
		}
	})
}
