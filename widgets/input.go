// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/input.go
// Summary: Single-line text input rendering plus the pure edit helper the
// host application applies to its own value/cursor state.

package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelkit/core"
)

// Input renders a single-line editor. The widget holds no state; the host
// keeps Value and Cursor in its model and mutates them with ApplyEdit.
type Input struct {
	Value            string
	Cursor           int // rune index, 0..len
	Placeholder      string
	Focused          bool
	Style            core.Style
	PlaceholderStyle core.Style
	CursorStyle      core.Style
}

func (in Input) Render(f *core.Frame, area core.Rect) {
	if area.H < 1 {
		return
	}
	f.RenderIn(area, func(f *core.Frame) {
		f.Fill(core.Rect{W: area.W, H: area.H}, ' ', in.Style)

		if in.Value == "" && !in.Focused {
			f.Print(0, 0, in.Placeholder, in.Style.Patch(in.PlaceholderStyle))
			return
		}
		f.Print(0, 0, in.Value, in.Style)

		if !in.Focused {
			return
		}
		cursorStyle := in.CursorStyle
		if cursorStyle == (core.Style{}) {
			cursorStyle = core.Style{Attrs: core.AttrReverse}
		}
		runes := []rune(in.Value)
		cursor := max(0, min(in.Cursor, len(runes)))
		under := " "
		if cursor < len(runes) {
			under = string(runes[cursor])
		}
		col := runewidth.StringWidth(string(runes[:cursor]))
		f.Print(col, 0, under, in.Style.Patch(cursorStyle))
	})
}

// EditKind tags an Input edit operation.
type EditKind int

const (
	EditInsert EditKind = iota
	EditBackspace
	EditDelete
	EditLeft
	EditRight
	EditHome
	EditEnd
)

// Edit is one editing operation against a value/cursor pair.
type Edit struct {
	Kind EditKind
	Rune rune // payload for EditInsert
}

// InsertRune builds an insert edit.
func InsertRune(r rune) Edit {
	return Edit{Kind: EditInsert, Rune: r}
}

// ApplyEdit returns the value and rune-cursor after applying one edit. The
// cursor is clamped into range first, so stale positions never panic.
func ApplyEdit(value string, cursor int, edit Edit) (string, int) {
	runes := []rune(value)
	cursor = max(0, min(cursor, len(runes)))

	switch edit.Kind {
	case EditInsert:
		runes = append(runes[:cursor], append([]rune{edit.Rune}, runes[cursor:]...)...)
		cursor++
	case EditBackspace:
		if cursor > 0 {
			runes = append(runes[:cursor-1], runes[cursor:]...)
			cursor--
		}
	case EditDelete:
		if cursor < len(runes) {
			runes = append(runes[:cursor], runes[cursor+1:]...)
		}
	case EditLeft:
		if cursor > 0 {
			cursor--
		}
	case EditRight:
		if cursor < len(runes) {
			cursor++
		}
	case EditHome:
		cursor = 0
	case EditEnd:
		cursor = len(runes)
	}
	return string(runes), cursor
}
