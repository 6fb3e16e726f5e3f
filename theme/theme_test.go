// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme_test.go

package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/framegrace/texelkit/core"
)

func TestParseResolvesTokens(t *testing.T) {
	data := []byte(`{
		"tokens": {
			"statusbar.base": {
				"fg": {"ansi": 15},
				"bg": {"rgb": [30, 30, 46]},
				"modifiers": ["bold", "italic"]
			},
			"list.selected": {
				"fg": {"default": true},
				"modifiers": ["reverse"]
			}
		}
	}`)

	th, err := Parse(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if th.Tokens() != 2 {
		t.Fatalf("tokens = %d, want 2", th.Tokens())
	}

	bar, ok := th.Style("statusbar.base")
	if !ok {
		t.Fatal("statusbar.base missing")
	}
	if bar.Fg != core.ANSIColor(15) {
		t.Fatalf("fg = %+v", bar.Fg)
	}
	if bar.Bg != core.RGBColor(30, 30, 46) {
		t.Fatalf("bg = %+v", bar.Bg)
	}
	if !bar.Attrs.Has(core.AttrBold) || !bar.Attrs.Has(core.AttrItalic) {
		t.Fatalf("attrs = %v", bar.Attrs)
	}

	sel, ok := th.Style("list.selected")
	if !ok {
		t.Fatal("list.selected missing")
	}
	if sel.Fg != core.DefaultColor() {
		t.Fatalf("fg = %+v, want terminal default", sel.Fg)
	}
	if sel.Bg.Set() {
		t.Fatalf("bg should stay unset when omitted, got %+v", sel.Bg)
	}
	if !sel.Attrs.Has(core.AttrReverse) {
		t.Fatalf("attrs = %v", sel.Attrs)
	}
}

func TestParseUnknownTokenLookupMisses(t *testing.T) {
	th, err := Parse([]byte(`{"tokens": {}}`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, ok := th.Style("nope"); ok {
		t.Fatal("unknown token should miss")
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"unknown top-level field", `{"tokens": {}, "extra": 1}`},
		{"unknown style field", `{"tokens": {"x": {"fgg": {"ansi": 1}}}}`},
		{"missing tokens object", `{}`},
		{"unknown modifier", `{"tokens": {"x": {"modifiers": ["blinky"]}}}`},
		{"mixed color forms", `{"tokens": {"x": {"fg": {"ansi": 1, "default": true}}}}`},
		{"empty color object", `{"tokens": {"x": {"fg": {}}}}`},
		{"unknown color form", `{"tokens": {"x": {"fg": {"hex": "#fff"}}}}`},
		{"default false", `{"tokens": {"x": {"fg": {"default": false}}}}`},
		{"ansi out of range", `{"tokens": {"x": {"fg": {"ansi": 256}}}}`},
		{"ansi negative", `{"tokens": {"x": {"fg": {"ansi": -1}}}}`},
		{"rgb wrong arity", `{"tokens": {"x": {"fg": {"rgb": [1, 2]}}}}`},
		{"rgb channel out of range", `{"tokens": {"x": {"fg": {"rgb": [0, 0, 300]}}}}`},
		{"color not an object", `{"tokens": {"x": {"fg": "red"}}}`},
		{"not JSON at all", `{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Fatalf("expected %s to fail", tc.name)
			}
		})
	}
}

func TestNilThemeIsUsable(t *testing.T) {
	var th *Theme
	if _, ok := th.Style("anything"); ok {
		t.Fatal("nil theme should resolve nothing")
	}
	if th.Tokens() != 0 {
		t.Fatal("nil theme should have no tokens")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	data := []byte(`{"tokens": {"block.border": {"fg": {"ansi": 39}}}}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	th, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	border, ok := th.Style("block.border")
	if !ok || border.Fg != core.ANSIColor(39) {
		t.Fatalf("block.border = %+v ok=%v", border, ok)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected missing file to fail")
	}
}
