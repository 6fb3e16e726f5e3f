// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/frame.go
// Summary: The clipped, diffable frame buffer. One Frame is one full-screen
// snapshot; the runtime diffs consecutive frames so only changed cells reach
// the driver.

package core

import "github.com/mattn/go-runewidth"

// clipState is one entry of the frame's clip stack. The clip rect is held in
// grid coordinates and is always the running intersection of every enclosing
// scope plus the frame bounds. ox/oy translate scope-local print coordinates
// to grid coordinates.
type clipState struct {
	clip   Rect
	ox, oy int
}

// Frame is a row-major grid of styled cells with a stack of active clip
// regions. Writes outside the innermost clip are silently dropped; no frame
// operation ever fails on out-of-range coordinates.
type Frame struct {
	w, h  int
	cells []Cell
	stack []clipState
}

// NewFrame allocates a frame of blank default-style cells. Negative
// dimensions are treated as zero.
func NewFrame(w, h int) *Frame {
	f := &Frame{}
	f.Resize(w, h)
	return f
}

// Size returns the frame dimensions.
func (f *Frame) Size() (int, int) {
	return f.w, f.h
}

// Resize reallocates the grid and resets the clip stack. Prior content is
// discarded; the caller is expected to repaint everything on the next view.
func (f *Frame) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	f.w, f.h = w, h
	f.cells = make([]Cell, w*h)
	f.Clear()
	f.stack = f.stack[:0]
	f.stack = append(f.stack, clipState{clip: Rect{W: w, H: h}})
}

// Clear resets every cell to blank with default styling.
func (f *Frame) Clear() {
	blank := BlankCell()
	for i := range f.cells {
		f.cells[i] = blank
	}
}

// CellAt returns the cell at grid coordinates, or false when out of range.
func (f *Frame) CellAt(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return Cell{}, false
	}
	return f.cells[y*f.w+x], true
}

func (f *Frame) top() clipState {
	return f.stack[len(f.stack)-1]
}

// PushClip narrows the active clip to the intersection of the given
// scope-local rect with the current clip. Pair with PopClip.
func (f *Frame) PushClip(r Rect) {
	t := f.top()
	abs := Rect{X: t.ox + r.X, Y: t.oy + r.Y, W: r.W, H: r.H}
	f.stack = append(f.stack, clipState{
		clip: t.clip.Intersect(abs),
		ox:   t.ox,
		oy:   t.oy,
	})
}

// PopClip restores the previous clip. Popping with nothing pushed is a
// no-op; the frame-bounds root entry can never be removed.
func (f *Frame) PopClip() {
	if len(f.stack) > 1 {
		f.stack = f.stack[:len(f.stack)-1]
	}
}

// RenderIn runs draw with the clip narrowed to area and print coordinates
// translated to area's origin, so independent widgets compose into
// sub-regions without manual offset math. The previous clip scope is
// restored unconditionally, even if draw panics.
func (f *Frame) RenderIn(area Rect, draw func(*Frame)) {
	t := f.top()
	abs := Rect{X: t.ox + area.X, Y: t.oy + area.Y, W: area.W, H: area.H}
	f.stack = append(f.stack, clipState{
		clip: t.clip.Intersect(abs),
		ox:   abs.X,
		oy:   abs.Y,
	})
	defer f.PopClip()
	draw(f)
}

// Print writes text left to right starting at the scope-local position,
// dropping every glyph that lands outside the active clip. Wide glyphs
// occupy their display width and are dropped whole when they straddle a
// clip edge; their trailing columns hold zero-rune continuation cells.
func (f *Frame) Print(x, y int, text string, style Style) {
	if f.w == 0 || f.h == 0 {
		return
	}
	t := f.top()
	clip := t.clip
	if clip.Empty() {
		return
	}
	gy := t.oy + y
	if gy < clip.Y || gy >= clip.Y+clip.H {
		return
	}
	gx := t.ox + x
	right := clip.X + clip.W
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if gx >= right {
			break
		}
		if gx < clip.X || gx+w > right {
			gx += w
			continue
		}
		idx := gy*f.w + gx
		f.cells[idx] = Cell{Rune: r, Style: style}
		for i := 1; i < w; i++ {
			f.cells[idx+i] = Cell{Rune: 0, Style: style}
		}
		gx += w
	}
}

// Fill paints every cell of the scope-local area with the given rune and
// style, clipped like any other write. The rune is assumed single-width.
func (f *Frame) Fill(area Rect, r rune, style Style) {
	if f.w == 0 || f.h == 0 {
		return
	}
	t := f.top()
	abs := Rect{X: t.ox + area.X, Y: t.oy + area.Y, W: area.W, H: area.H}
	reg := t.clip.Intersect(abs)
	if reg.Empty() {
		return
	}
	cell := Cell{Rune: r, Style: style}
	for y := reg.Y; y < reg.Y+reg.H; y++ {
		row := y * f.w
		for x := reg.X; x < reg.X+reg.W; x++ {
			f.cells[row+x] = cell
		}
	}
}

// Diff compares the frame against a previous snapshot and returns the cells
// that changed, in row-major order. When the frames disagree on size (or
// prev is nil) every cell of the current frame is returned, forcing a full
// repaint. A frame diffed against itself yields nothing.
func (f *Frame) Diff(prev *Frame) []CellUpdate {
	if prev == nil || prev.w != f.w || prev.h != f.h {
		out := make([]CellUpdate, len(f.cells))
		for i, c := range f.cells {
			out[i] = CellUpdate{X: i % f.w, Y: i / f.w, Cell: c}
		}
		return out
	}
	var out []CellUpdate
	for i, c := range f.cells {
		if c != prev.cells[i] {
			out = append(out, CellUpdate{X: i % f.w, Y: i / f.w, Cell: c})
		}
	}
	return out
}

// Apply writes a set of updates into the frame, ignoring anything out of
// range. Used by drivers and tests to replay a diff onto a snapshot.
func (f *Frame) Apply(updates []CellUpdate) {
	for _, u := range updates {
		if u.X < 0 || u.Y < 0 || u.X >= f.w || u.Y >= f.h {
			continue
		}
		f.cells[u.Y*f.w+u.X] = u.Cell
	}
}
