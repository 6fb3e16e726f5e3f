// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/theme.go
// Summary: Token lookups resolving widget styles from a theme. Every helper
// tolerates a nil theme and falls back to usable defaults.

package widgets

import (
	"github.com/framegrace/texelkit/core"
	"github.com/framegrace/texelkit/theme"
)

// BlockStyle bundles the styles a Block consumes.
type BlockStyle struct {
	Border core.Style
	Title  core.Style
}

// BlockStyleFromTheme resolves block.border and block.title.
func BlockStyleFromTheme(t *theme.Theme) BlockStyle {
	var s BlockStyle
	s.Border, _ = t.Style("block.border")
	if title, ok := t.Style("block.title"); ok {
		s.Title = title
	} else {
		s.Title = core.Style{Attrs: core.AttrBold}
	}
	return s
}

// ListStyle bundles the styles a List consumes.
type ListStyle struct {
	Item     core.Style
	Selected core.Style
}

// ListStyleFromTheme resolves list.item and list.selected.
func ListStyleFromTheme(t *theme.Theme) ListStyle {
	var s ListStyle
	s.Item, _ = t.Style("list.item")
	if sel, ok := t.Style("list.selected"); ok {
		s.Selected = sel
	} else {
		s.Selected = core.Style{Attrs: core.AttrReverse}
	}
	return s
}

// StatusBarStyle bundles the styles a StatusBar consumes.
type StatusBarStyle struct {
	Base  core.Style
	Left  core.Style
	Right core.Style
}

// StatusBarStyleFromTheme resolves statusbar.base/left/right.
func StatusBarStyleFromTheme(t *theme.Theme) StatusBarStyle {
	var s StatusBarStyle
	if base, ok := t.Style("statusbar.base"); ok {
		s.Base = base
	} else {
		s.Base = core.Style{Attrs: core.AttrReverse}
	}
	s.Left, _ = t.Style("statusbar.left")
	s.Right, _ = t.Style("statusbar.right")
	return s
}

// InputStyle bundles the styles an Input consumes.
type InputStyle struct {
	Text        core.Style
	Placeholder core.Style
	Cursor      core.Style
}

// InputStyleFromTheme resolves input.text/placeholder/cursor.
func InputStyleFromTheme(t *theme.Theme) InputStyle {
	var s InputStyle
	s.Text, _ = t.Style("input.text")
	if ph, ok := t.Style("input.placeholder"); ok {
		s.Placeholder = ph
	} else {
		s.Placeholder = core.Style{Attrs: core.AttrDim}
	}
	if cur, ok := t.Style("input.cursor"); ok {
		s.Cursor = cur
	} else {
		s.Cursor = core.Style{Attrs: core.AttrReverse}
	}
	return s
}

// TabsStyle bundles the styles a Tabs strip consumes.
type TabsStyle struct {
	Item   core.Style
	Active core.Style
}

// TabsStyleFromTheme resolves tabs.item and tabs.active.
func TabsStyleFromTheme(t *theme.Theme) TabsStyle {
	var s TabsStyle
	s.Item, _ = t.Style("tabs.item")
	if active, ok := t.Style("tabs.active"); ok {
		s.Active = active
	} else {
		s.Active = core.Style{Attrs: core.AttrBold | core.AttrUnderline}
	}
	return s
}
