// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/text.go
// Summary: Plain and word-wrapped text widgets.

package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelkit/core"
	"github.com/framegrace/texelkit/layout"
)

// Text draws its content line by line, clipped to the area. Widgets are
// plain draw values: configure the fields, call Render, discard.
type Text struct {
	Content string
	Style   core.Style
	Padding layout.Padding
}

func (t Text) Render(f *core.Frame, area core.Rect) {
	f.RenderIn(t.Padding.Apply(area), func(f *core.Frame) {
		for i, line := range strings.Split(t.Content, "\n") {
			f.Print(0, i, line, t.Style)
		}
	})
}

// WrapMode selects how Paragraph treats long lines.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapWord
)

// Paragraph is Text with optional word wrapping against the area width.
type Paragraph struct {
	Content string
	Style   core.Style
	Wrap    WrapMode
	Padding layout.Padding
}

func (p Paragraph) Render(f *core.Frame, area core.Rect) {
	inner := p.Padding.Apply(area)
	f.RenderIn(inner, func(f *core.Frame) {
		y := 0
		for _, line := range strings.Split(p.Content, "\n") {
			if p.Wrap == WrapWord && inner.W > 0 {
				for _, wrapped := range wrapLine(line, inner.W) {
					f.Print(0, y, wrapped, p.Style)
					y++
				}
				continue
			}
			f.Print(0, y, line, p.Style)
			y++
		}
	})
}

// wrapLine breaks a line into pieces no wider than width, preferring word
// boundaries. A single word wider than the line is broken mid-word.
func wrapLine(line string, width int) []string {
	if runewidth.StringWidth(line) <= width {
		return []string{line}
	}

	var out []string
	var cur strings.Builder
	curW := 0
	for _, word := range strings.Fields(line) {
		wordW := runewidth.StringWidth(word)
		if curW > 0 && curW+1+wordW > width {
			out = append(out, cur.String())
			cur.Reset()
			curW = 0
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		for wordW > width {
			// Hard break an oversized word.
			head := runewidth.Truncate(word, width-curW, "")
			if head == "" {
				// A glyph wider than the line; give up on this word.
				break
			}
			cur.WriteString(head)
			out = append(out, cur.String())
			cur.Reset()
			curW = 0
			word = strings.TrimPrefix(word, head)
			wordW = runewidth.StringWidth(word)
		}
		cur.WriteString(word)
		curW += wordW
	}
	if cur.Len() > 0 || len(out) == 0 {
		out = append(out, cur.String())
	}
	return out
}
