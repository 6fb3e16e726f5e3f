// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/cell.go
// Summary: The styled character cell and the diff update record.

package core

// Cell is one character position of the grid. A rune of 0 marks the
// continuation column of a wide glyph; drivers must not write it.
type Cell struct {
	Rune  rune
	Style Style
}

// BlankCell is the value every cell starts as: a space with no styling.
func BlankCell() Cell {
	return Cell{Rune: ' '}
}

// CellUpdate is one changed cell produced by Frame.Diff, in grid
// coordinates.
type CellUpdate struct {
	X, Y int
	Cell Cell
}
