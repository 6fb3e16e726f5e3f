// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/codeview.go
// Summary: Read-only source viewer with chroma syntax highlighting and
// enry-based language detection.

package widgets

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelkit/core"
)

const defaultChromaStyle = "catppuccin-mocha"

// CodeView renders highlighted source. Language wins over Filename
// detection; with neither, the source renders plain.
type CodeView struct {
	Source      string
	Language    string // chroma lexer name, e.g. "go"
	Filename    string // used for detection when Language is empty
	StyleName   string // chroma style, defaults to catppuccin-mocha
	Offset      int    // first visible line
	Style       core.Style
}

// styledSpan is a run of same-styled text within one line.
type styledSpan struct {
	text  string
	style core.Style
}

func (cv CodeView) Render(f *core.Frame, area core.Rect) {
	lines := cv.highlight()
	f.RenderIn(area, func(f *core.Frame) {
		for row := 0; row < area.H; row++ {
			idx := cv.Offset + row
			if idx < 0 || idx >= len(lines) {
				break
			}
			x := 0
			for _, span := range lines[idx] {
				f.Print(x, row, span.text, span.style)
				x += runewidth.StringWidth(span.text)
			}
		}
	})
}

// Lines reports how many lines the source renders to, for scroll clamping.
func (cv CodeView) Lines() int {
	return strings.Count(cv.Source, "\n") + 1
}

func (cv CodeView) highlight() [][]styledSpan {
	// Tabs have no cell width of their own; expand before measuring.
	source := strings.ReplaceAll(cv.Source, "\t", "    ")

	lexer := cv.lexer()
	if lexer == nil {
		return plainLines(source, cv.Style)
	}
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, source)
	if err != nil {
		return plainLines(source, cv.Style)
	}

	styleName := cv.StyleName
	if styleName == "" {
		styleName = defaultChromaStyle
	}
	chromaStyle := styles.Get(styleName)

	lines := [][]styledSpan{nil}
	for token := iterator(); token != chroma.EOF; token = iterator() {
		style := cv.Style.Patch(entryStyle(chromaStyle.Get(token.Type)))
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			last := len(lines) - 1
			lines[last] = append(lines[last], styledSpan{text: part, style: style})
		}
	}
	return lines
}

func (cv CodeView) lexer() chroma.Lexer {
	if cv.Language != "" {
		return lexers.Get(cv.Language)
	}
	if cv.Filename != "" {
		if lang := enry.GetLanguage(cv.Filename, []byte(cv.Source)); lang != "" {
			if lexer := lexers.Get(lang); lexer != nil {
				return lexer
			}
		}
		return lexers.Match(cv.Filename)
	}
	return nil
}

func entryStyle(entry chroma.StyleEntry) core.Style {
	var out core.Style
	if entry.Colour.IsSet() {
		out.Fg = core.RGBColor(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
	}
	if entry.Bold == chroma.Yes {
		out.Attrs |= core.AttrBold
	}
	if entry.Italic == chroma.Yes {
		out.Attrs |= core.AttrItalic
	}
	if entry.Underline == chroma.Yes {
		out.Attrs |= core.AttrUnderline
	}
	return out
}

func plainLines(source string, style core.Style) [][]styledSpan {
	raw := strings.Split(source, "\n")
	lines := make([][]styledSpan, len(raw))
	for i, line := range raw {
		if line != "" {
			lines[i] = []styledSpan{{text: line, style: style}}
		}
	}
	return lines
}
