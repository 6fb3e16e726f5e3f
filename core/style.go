// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/style.go
// Summary: Colors, attribute flags, and the patch-combining Style type.

package core

// ColorKind tags how a Color value is encoded.
type ColorKind uint8

const (
	// ColorUnset is the zero value: the color says nothing and is
	// transparent to Style.Patch.
	ColorUnset ColorKind = iota
	// ColorTermDefault explicitly selects the terminal's default color.
	ColorTermDefault
	// ColorANSI selects one of the 256 palette colors.
	ColorANSI
	// ColorRGB selects a 24-bit color.
	ColorRGB
)

// Color is a tagged color value. The zero value is "unset", which is
// distinct from the terminal default: an unset color never overrides
// anything when styles are combined.
type Color struct {
	Kind    ColorKind
	Index   uint8 // palette index when Kind == ColorANSI
	R, G, B uint8 // channels when Kind == ColorRGB
}

// DefaultColor returns the explicit terminal-default color.
func DefaultColor() Color {
	return Color{Kind: ColorTermDefault}
}

// ANSIColor returns a 256-palette color.
func ANSIColor(index uint8) Color {
	return Color{Kind: ColorANSI, Index: index}
}

// RGBColor returns a 24-bit color.
func RGBColor(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// Set reports whether the color carries a value.
func (c Color) Set() bool {
	return c.Kind != ColorUnset
}

// AttrMask is a bit set of display attributes.
type AttrMask uint16

const (
	AttrBold AttrMask = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrReverse
	AttrBlink
)

// Has reports whether every attribute in flags is set.
func (m AttrMask) Has(flags AttrMask) bool {
	return m&flags == flags
}

// Style describes how a cell is painted. The zero value sets nothing and
// renders with the terminal defaults.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs AttrMask
}

// Patch combines two style layers: attributes that over sets replace the
// receiver's, everything else is kept. Attribute flags accumulate. This is
// the widget-default → theme → inline-override precedence primitive.
func (s Style) Patch(over Style) Style {
	out := s
	if over.Fg.Set() {
		out.Fg = over.Fg
	}
	if over.Bg.Set() {
		out.Bg = over.Bg
	}
	out.Attrs |= over.Attrs
	return out
}

// Foreground returns a copy of the style with the foreground replaced.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy of the style with the background replaced.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// With returns a copy of the style with the given attributes added.
func (s Style) With(flags AttrMask) Style {
	s.Attrs |= flags
	return s
}

// Without returns a copy of the style with the given attributes removed.
func (s Style) Without(flags AttrMask) Style {
	s.Attrs &^= flags
	return s
}
