package core

import "testing"

func TestPatchOverridesOnlySetAttributes(t *testing.T) {
	base := Style{
		Fg:    ANSIColor(252),
		Bg:    ANSIColor(16),
		Attrs: AttrDim,
	}
	over := Style{
		Fg:    RGBColor(255, 255, 255),
		Attrs: AttrBold,
	}

	got := base.Patch(over)

	if got.Fg != RGBColor(255, 255, 255) {
		t.Fatalf("fg not overridden: %+v", got.Fg)
	}
	if got.Bg != ANSIColor(16) {
		t.Fatalf("bg should be kept from base: %+v", got.Bg)
	}
	if !got.Attrs.Has(AttrBold) || !got.Attrs.Has(AttrDim) {
		t.Fatalf("attrs should accumulate, got %b", got.Attrs)
	}
}

func TestPatchWithZeroStyleIsIdentity(t *testing.T) {
	base := Style{Fg: DefaultColor(), Attrs: AttrUnderline}
	if got := base.Patch(Style{}); got != base {
		t.Fatalf("patch with zero style changed %+v to %+v", base, got)
	}
}

func TestExplicitDefaultColorOverrides(t *testing.T) {
	base := Style{Fg: ANSIColor(39)}
	got := base.Patch(Style{Fg: DefaultColor()})
	if got.Fg.Kind != ColorTermDefault {
		t.Fatalf("explicit default should override, got %+v", got.Fg)
	}
}

func TestAttrBuilders(t *testing.T) {
	s := Style{}.With(AttrBold | AttrItalic).Without(AttrBold)
	if s.Attrs.Has(AttrBold) {
		t.Fatal("bold should have been removed")
	}
	if !s.Attrs.Has(AttrItalic) {
		t.Fatal("italic should remain")
	}
}

func TestUnsetColorNeverOverrides(t *testing.T) {
	if (Color{}).Set() {
		t.Fatal("zero color must be unset")
	}
	base := Style{Fg: RGBColor(1, 2, 3)}
	if got := base.Patch(Style{Bg: ANSIColor(4)}); got.Fg != base.Fg {
		t.Fatalf("fg clobbered by unset override: %+v", got)
	}
}
