package view

import (
	"strings"
	"testing"
)

func TestButtonIconsOrderAndUniqueness(t *testing.T) {
	icons := ButtonIcons()
	if len(icons) != 20 {
		t.Fatalf("expected 20 icons, got %d", len(icons))
	}
	if icons[0].Value != "chevron-right" || icons[len(icons)-1].Value != "wordpress" {
		t.Fatalf("unexpected catalog order: first %q last %q", icons[0].Value, icons[len(icons)-1].Value)
	}

	seen := make(map[string]bool, len(icons))
	for _, icon := range icons {
		if seen[icon.Value] {
			t.Fatalf("duplicate icon %q", icon.Value)
		}
		seen[icon.Value] = true
		if !strings.HasPrefix(icon.SVG, "<svg") || !strings.HasSuffix(icon.SVG, "</svg>") {
			t.Fatalf("icon %q has malformed glyph", icon.Value)
		}
	}
}

func TestButtonIconsReturnsCopy(t *testing.T) {
	icons := ButtonIcons()
	icons[0].Value = "changed"
	if ButtonIcons()[0].Value != "chevron-right" {
		t.Fatal("expected catalog to be immutable through the returned slice")
	}
}

func TestFindButtonIcon(t *testing.T) {
	icon, ok := FindButtonIcon("external-arrow")
	if !ok {
		t.Fatal("expected external-arrow to exist")
	}
	if icon.Label != "External Arrow" {
		t.Fatalf("unexpected label %q", icon.Label)
	}

	if _, ok := FindButtonIcon("custom"); ok {
		t.Fatal("expected custom not to be a catalog icon")
	}
	if IsButtonIcon("Chevron-Right") {
		t.Fatal("expected lookup to be exact")
	}
}

func TestButtonIconOptionsLocalized(t *testing.T) {
	english := ButtonIconOptions("en-US")
	chinese := ButtonIconOptions("zh")

	if english[4].Label != "Shuffle" {
		t.Fatalf("expected english label, got %q", english[4].Label)
	}
	if chinese[4].Label != "随机" {
		t.Fatalf("expected chinese label, got %q", chinese[4].Label)
	}
	if english[4].Value != chinese[4].Value {
		t.Fatal("expected identical values across languages")
	}
}
