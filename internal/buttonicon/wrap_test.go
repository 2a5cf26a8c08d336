package buttonicon

import "testing"

func TestWrapRenderPropsMergesClassesAndStyle(t *testing.T) {
	style := map[string]string{"color": "red"}
	props := RenderProps{
		Name:      ButtonBlockName,
		ClassName: "wp-block-button is-style-outline",
		Style:     style,
		Extra:     map[string]any{"clientId": "abc"},
		Attributes: AttributeBag{
			IconSource:       strPtr("custom"),
			Icon:             strPtr("custom"),
			CustomIconSVG:    strPtr("<svg></svg>"),
			IconPositionLeft: boolPtr(true),
		},
	}

	got := WrapRenderProps(props)

	expectedClass := "wp-block-button is-style-outline has-icon__custom has-icon-position__left"
	if got.ClassName != expectedClass {
		t.Fatalf("expected %q, got %q", expectedClass, got.ClassName)
	}
	if got.Style["color"] != "red" {
		t.Fatal("expected caller style entries to be kept")
	}
	if got.Style[CustomIconProperty] != EncodeSVGForCSS("<svg></svg>") {
		t.Fatalf("unexpected css var %q", got.Style[CustomIconProperty])
	}
	if _, ok := style[CustomIconProperty]; ok {
		t.Fatal("expected caller style map to stay untouched")
	}
	if got.Extra["clientId"] != "abc" {
		t.Fatal("expected extra props to pass through")
	}
}

func TestWrapRenderPropsSkipsOtherBlocks(t *testing.T) {
	props := RenderProps{
		Name:       "core/paragraph",
		ClassName:  "lead",
		Attributes: AttributeBag{Icon: strPtr("next")},
	}
	got := WrapRenderProps(props)
	if got.ClassName != "lead" {
		t.Fatalf("expected class name unchanged, got %q", got.ClassName)
	}
}

func TestWrapRenderPropsLibraryIconHasNoStyle(t *testing.T) {
	got := WrapRenderProps(RenderProps{
		Name:       ButtonBlockName,
		Attributes: AttributeBag{Icon: strPtr("next"), CustomIconSVG: strPtr("<svg/>")},
	})
	if got.ClassName != "has-icon__next" {
		t.Fatalf("unexpected class name %q", got.ClassName)
	}
	if got.Style != nil {
		t.Fatalf("expected no style, got %v", got.Style)
	}
}

func TestJoinClassNames(t *testing.T) {
	got := JoinClassNames("  a b ", "", "b", "c  a", "d")
	if got != "a b c d" {
		t.Fatalf("unexpected class names %q", got)
	}
}
