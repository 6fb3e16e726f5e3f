// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme.go
// Summary: Strict JSON theme loading. A theme maps string tokens to styles;
// malformed or unknown input fails the whole load, it never degrades
// partially. A missing theme is a valid state — lookups just miss.

package theme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/framegrace/texelkit/core"
)

// Theme resolves style tokens for widget-layer code. The nil theme is
// usable and resolves nothing.
type Theme struct {
	tokens map[string]core.Style
}

// Style returns the style registered for a token.
func (t *Theme) Style(token string) (core.Style, bool) {
	if t == nil {
		return core.Style{}, false
	}
	style, ok := t.tokens[token]
	return style, ok
}

// Tokens returns the number of registered tokens.
func (t *Theme) Tokens() int {
	if t == nil {
		return 0
	}
	return len(t.tokens)
}

// Parse decodes a theme document. Unknown fields, unknown modifiers, mixed
// color forms, and out-of-range values are all errors.
func Parse(data []byte) (*Theme, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var file themeFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("theme: invalid JSON: %w", err)
	}
	if file.Tokens == nil {
		return nil, errors.New("theme: missing \"tokens\" object")
	}

	tokens := make(map[string]core.Style, len(file.Tokens))
	for name, spec := range file.Tokens {
		style, err := spec.style()
		if err != nil {
			return nil, fmt.Errorf("theme: token %q: %w", name, err)
		}
		tokens[name] = style
	}
	return &Theme{tokens: tokens}, nil
}

// Load reads and parses a theme file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return Parse(data)
}

// DefaultPath is the conventional theme location under the user config
// directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelkit", "theme.json"), nil
}

type themeFile struct {
	Tokens map[string]styleSpec `json:"tokens"`
}

type styleSpec struct {
	Fg        *colorSpec `json:"fg"`
	Bg        *colorSpec `json:"bg"`
	Modifiers []string   `json:"modifiers"`
}

func (s styleSpec) style() (core.Style, error) {
	var out core.Style
	if s.Fg != nil {
		out.Fg = s.Fg.color
	}
	if s.Bg != nil {
		out.Bg = s.Bg.color
	}
	for _, name := range s.Modifiers {
		attr, ok := modifierNames[name]
		if !ok {
			return core.Style{}, fmt.Errorf("unknown modifier %q", name)
		}
		out.Attrs |= attr
	}
	return out, nil
}

var modifierNames = map[string]core.AttrMask{
	"bold":      core.AttrBold,
	"dim":       core.AttrDim,
	"italic":    core.AttrItalic,
	"underline": core.AttrUnderline,
	"reverse":   core.AttrReverse,
}

// colorSpec accepts exactly one of the three color forms:
// {"default": true}, {"ansi": 0..255}, {"rgb": [r, g, b]}.
type colorSpec struct {
	color core.Color
}

func (c *colorSpec) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("color must be an object: %w", err)
	}
	if len(fields) != 1 {
		return errors.New("color must have exactly one of \"default\", \"ansi\", \"rgb\"")
	}

	if raw, ok := fields["default"]; ok {
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("\"default\" must be a boolean: %w", err)
		}
		if !v {
			return errors.New("\"default\" color must be true")
		}
		c.color = core.DefaultColor()
		return nil
	}

	if raw, ok := fields["ansi"]; ok {
		var v int
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("\"ansi\" must be an integer: %w", err)
		}
		if v < 0 || v > 255 {
			return fmt.Errorf("\"ansi\" index %d out of range 0..255", v)
		}
		c.color = core.ANSIColor(uint8(v))
		return nil
	}

	if raw, ok := fields["rgb"]; ok {
		var v []int
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("\"rgb\" must be an array: %w", err)
		}
		if len(v) != 3 {
			return fmt.Errorf("\"rgb\" needs 3 channels, got %d", len(v))
		}
		for _, ch := range v {
			if ch < 0 || ch > 255 {
				return fmt.Errorf("\"rgb\" channel %d out of range 0..255", ch)
			}
		}
		c.color = core.RGBColor(uint8(v[0]), uint8(v[1]), uint8(v[2]))
		return nil
	}

	for name := range fields {
		return fmt.Errorf("unknown color form %q", name)
	}
	return nil
}
