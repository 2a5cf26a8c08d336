package buttonicon

import "testing"

func TestRegisterAttributesExtendsButton(t *testing.T) {
	original := map[string]AttributeSpec{
		"text": {Type: "string"},
		"url":  {Type: "string"},
	}
	got := RegisterAttributes(BlockType{Name: ButtonBlockName, Attributes: original})

	if len(got.Attributes) != 7 {
		t.Fatalf("expected 7 attributes, got %d", len(got.Attributes))
	}
	if got.Attributes["iconSource"].Default != "library" {
		t.Fatalf("unexpected iconSource default %v", got.Attributes["iconSource"].Default)
	}
	if got.Attributes["justifySpaceBetween"].Default != false {
		t.Fatalf("unexpected justifySpaceBetween default %v", got.Attributes["justifySpaceBetween"].Default)
	}
	if _, ok := got.Attributes["text"]; !ok {
		t.Fatal("expected existing attributes to be kept")
	}
	if len(original) != 2 {
		t.Fatal("expected input attributes to stay untouched")
	}
}

func TestRegisterAttributesIgnoresOtherBlocks(t *testing.T) {
	attrs := map[string]AttributeSpec{"content": {Type: "string"}}
	got := RegisterAttributes(BlockType{Name: "core/paragraph", Attributes: attrs})
	if len(got.Attributes) != 1 {
		t.Fatalf("expected paragraph attributes unchanged, got %v", got.Attributes)
	}
	if _, ok := got.Attributes["icon"]; ok {
		t.Fatal("expected no icon attribute on other blocks")
	}
}
