package buttonicon

import (
	"reflect"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestResolveDefaults(t *testing.T) {
	attrs := ResolveDefaults(AttributeBag{})
	if attrs.IconSource != SourceLibrary {
		t.Fatalf("expected default source library, got %q", attrs.IconSource)
	}
	if attrs.Icon != "" || attrs.CustomIconSVG != "" || attrs.IconPositionLeft || attrs.JustifySpaceBetween {
		t.Fatalf("expected zero defaults, got %+v", attrs)
	}

	attrs = ResolveDefaults(AttributeBag{IconSource: strPtr("")})
	if attrs.IconSource != SourceLibrary {
		t.Fatalf("expected empty source to fall back to library, got %q", attrs.IconSource)
	}
}

func TestResolveWithoutIconSlug(t *testing.T) {
	bags := []AttributeBag{
		{},
		{IconPositionLeft: boolPtr(true)},
		{JustifySpaceBetween: boolPtr(true), CustomIconSVG: strPtr("<svg></svg>")},
		{IconSource: strPtr("library"), Icon: strPtr(""), IconPositionLeft: boolPtr(true), JustifySpaceBetween: boolPtr(true)},
	}

	for _, bag := range bags {
		got := ResolveBag(bag)
		for _, class := range got.ClassNames {
			if strings.HasPrefix(class, classIconPrefix) {
				t.Fatalf("expected no icon class for %+v, got %v", bag, got.ClassNames)
			}
		}
		if got.HasCSSVar() {
			t.Fatalf("expected no css var for %+v, got %q", bag, got.CSSVar)
		}
		if got.EffectiveIconSlug != "" {
			t.Fatalf("expected empty slug, got %q", got.EffectiveIconSlug)
		}
	}
}

func TestResolveLayoutTogglesWithoutIcon(t *testing.T) {
	got := ResolveBag(AttributeBag{IconPositionLeft: boolPtr(true), JustifySpaceBetween: boolPtr(true)})
	expected := []string{classIconPositionLeft, classJustifySpaceBetween}
	if !reflect.DeepEqual(got.ClassNames, expected) {
		t.Fatalf("expected %v, got %v", expected, got.ClassNames)
	}
}

func TestResolveLibraryIcon(t *testing.T) {
	got := Resolve(Attributes{IconSource: SourceLibrary, Icon: "chevron-right", CustomIconSVG: "<svg></svg>"})
	if !got.HasClass("has-icon__chevron-right") {
		t.Fatalf("expected icon class, got %v", got.ClassNames)
	}
	if got.HasCSSVar() {
		t.Fatalf("expected library icon to ignore custom svg, got %q", got.CSSVar)
	}
	if got.EffectiveIconSlug != "chevron-right" {
		t.Fatalf("unexpected slug %q", got.EffectiveIconSlug)
	}
}

func TestResolveUnknownLibraryIconPassesThrough(t *testing.T) {
	got := Resolve(Attributes{IconSource: SourceLibrary, Icon: "not-in-catalog"})
	if !got.HasClass("has-icon__not-in-catalog") {
		t.Fatalf("expected unknown icon class to be emitted, got %v", got.ClassNames)
	}
}

func TestResolveCustomIcon(t *testing.T) {
	got := Resolve(Attributes{IconSource: SourceCustom, Icon: IconSlugCustom, CustomIconSVG: "<svg></svg>"})
	if !got.HasClass("has-icon__custom") {
		t.Fatalf("expected custom icon class, got %v", got.ClassNames)
	}
	if got.CSSVar != EncodeSVGForCSS("<svg></svg>") {
		t.Fatalf("unexpected css var %q", got.CSSVar)
	}
}

func TestResolveCustomSourceWithoutMarkup(t *testing.T) {
	attrs := Attributes{IconSource: SourceCustom}
	got := Resolve(attrs)
	if got.EffectiveIconSlug != IconSlugCustom {
		t.Fatalf("expected custom slug, got %q", got.EffectiveIconSlug)
	}
	if !got.HasClass("has-icon__custom") {
		t.Fatalf("expected custom icon class, got %v", got.ClassNames)
	}
	if got.HasCSSVar() {
		t.Fatalf("expected no css var, got %q", got.CSSVar)
	}
}

func TestResolveCustomMarkupCleanedAway(t *testing.T) {
	got := Resolve(Attributes{IconSource: SourceCustom, Icon: IconSlugCustom, CustomIconSVG: "\n\t  \r"})
	if got.HasCSSVar() {
		t.Fatalf("expected css var to be suppressed, got %q", got.CSSVar)
	}
}

func TestResolveClassOrder(t *testing.T) {
	got := Resolve(Attributes{
		IconSource:          SourceLibrary,
		Icon:                "next",
		IconPositionLeft:    true,
		JustifySpaceBetween: true,
	})
	expected := []string{"has-icon__next", classIconPositionLeft, classJustifySpaceBetween}
	if !reflect.DeepEqual(got.ClassNames, expected) {
		t.Fatalf("expected %v, got %v", expected, got.ClassNames)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	attrs := Attributes{IconSource: SourceCustom, Icon: IconSlugCustom, CustomIconSVG: "<svg>\n<g/></svg>", IconPositionLeft: true}
	first := Resolve(attrs)
	second := Resolve(attrs)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output, got %+v and %+v", first, second)
	}
}
