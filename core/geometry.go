// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/geometry.go
// Summary: Integer rectangle primitive shared by the frame, layout, and widgets.

package core

// Rect is an axis-aligned region of the cell grid. Zero or negative
// dimensions describe an empty region; empty rects are valid everywhere and
// simply mean "nothing to draw".
type Rect struct {
	X, Y, W, H int
}

// NewRect builds a rect, clamping negative dimensions to zero.
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the overlap of two rects. Disjoint rects produce an
// empty rect positioned at the would-be overlap corner.
func (r Rect) Intersect(o Rect) Rect {
	left := max(r.X, o.X)
	top := max(r.Y, o.Y)
	right := min(r.X+r.W, o.X+o.W)
	bottom := min(r.Y+r.H, o.Y+o.H)
	if right <= left || bottom <= top {
		return Rect{X: left, Y: top}
	}
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}
