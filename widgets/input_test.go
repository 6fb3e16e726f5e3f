// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/input_test.go

package widgets

import (
	"testing"

	"github.com/framegrace/texelkit/core"
)

func TestApplyEdit(t *testing.T) {
	cases := []struct {
		name       string
		value      string
		cursor     int
		edit       Edit
		wantValue  string
		wantCursor int
	}{
		{"insert at end", "ab", 2, InsertRune('c'), "abc", 3},
		{"insert in middle", "ac", 1, InsertRune('b'), "abc", 2},
		{"insert into empty", "", 0, InsertRune('x'), "x", 1},
		{"backspace", "abc", 2, Edit{Kind: EditBackspace}, "ac", 1},
		{"backspace at start", "abc", 0, Edit{Kind: EditBackspace}, "abc", 0},
		{"delete", "abc", 1, Edit{Kind: EditDelete}, "ac", 1},
		{"delete at end", "abc", 3, Edit{Kind: EditDelete}, "abc", 3},
		{"left", "abc", 2, Edit{Kind: EditLeft}, "abc", 1},
		{"left at start", "abc", 0, Edit{Kind: EditLeft}, "abc", 0},
		{"right", "abc", 1, Edit{Kind: EditRight}, "abc", 2},
		{"right at end", "abc", 3, Edit{Kind: EditRight}, "abc", 3},
		{"home", "abc", 2, Edit{Kind: EditHome}, "abc", 0},
		{"end", "abc", 0, Edit{Kind: EditEnd}, "abc", 3},
		{"stale cursor clamps", "ab", 99, Edit{Kind: EditBackspace}, "a", 1},
		{"multibyte aware", "héllo", 2, Edit{Kind: EditBackspace}, "hllo", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value, cursor := ApplyEdit(tc.value, tc.cursor, tc.edit)
			if value != tc.wantValue || cursor != tc.wantCursor {
				t.Fatalf("ApplyEdit(%q, %d) = (%q, %d), want (%q, %d)",
					tc.value, tc.cursor, value, cursor, tc.wantValue, tc.wantCursor)
			}
		})
	}
}

func TestInputShowsPlaceholderWhenEmptyAndUnfocused(t *testing.T) {
	f := core.NewFrame(10, 1)
	Input{Placeholder: "type..."}.Render(f, core.NewRect(0, 0, 10, 1))
	if got := rowText(t, f, 0, 10); got != "type...   " {
		t.Fatalf("input = %q", got)
	}
}

func TestInputHidesPlaceholderWhenFocused(t *testing.T) {
	f := core.NewFrame(10, 1)
	Input{Placeholder: "type...", Focused: true}.Render(f, core.NewRect(0, 0, 10, 1))
	if got := rowText(t, f, 0, 10); got != "          " {
		t.Fatalf("input = %q", got)
	}
	// An empty focused input still shows the cursor block.
	if !cellStyle(t, f, 0, 0).Attrs.Has(core.AttrReverse) {
		t.Fatal("cursor cell should be reversed")
	}
}

func TestInputCursorAtDisplayColumn(t *testing.T) {
	f := core.NewFrame(10, 1)
	// '世' is two columns wide; a cursor after it lands at column 2.
	Input{Value: "世x", Cursor: 1, Focused: true}.Render(f, core.NewRect(0, 0, 10, 1))
	if cellStyle(t, f, 0, 0).Attrs.Has(core.AttrReverse) {
		t.Fatal("cursor should not sit on the wide rune's first column")
	}
	if !cellStyle(t, f, 2, 0).Attrs.Has(core.AttrReverse) {
		t.Fatal("cursor should land after the wide rune")
	}
}

func TestInputUnfocusedShowsNoCursor(t *testing.T) {
	f := core.NewFrame(10, 1)
	Input{Value: "abc", Cursor: 1}.Render(f, core.NewRect(0, 0, 10, 1))
	for x := 0; x < 10; x++ {
		if cellStyle(t, f, x, 0).Attrs.Has(core.AttrReverse) {
			t.Fatalf("unfocused input drew a cursor at column %d", x)
		}
	}
}
