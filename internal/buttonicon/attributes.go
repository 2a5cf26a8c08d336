// Package buttonicon holds the icon logic for button blocks: the attribute schema,
// the editor panel actions, the presentation resolver and the SVG encoder.
// Everything here is a pure function of the attribute bag handed in by the editor.
package buttonicon

// IconSource 表示图标的选择模式。
type IconSource string

const (
	// SourceLibrary selects an icon from the built-in catalog.
	SourceLibrary IconSource = "library"
	// SourceCustom uses the pasted customIconSvg markup.
	SourceCustom IconSource = "custom"
)

// IconSlugCustom is the icon value stored while a custom SVG is active.
const IconSlugCustom = "custom"

// AttributeBag is the editor-persisted attribute set of one button block.
// Nil fields are absent and take their defaults in ResolveDefaults.
type AttributeBag struct {
	Icon                *string `json:"icon"`
	IconSource          *string `json:"iconSource,omitempty"`
	CustomIconSVG       *string `json:"customIconSvg,omitempty"`
	IconPositionLeft    *bool   `json:"iconPositionLeft,omitempty"`
	JustifySpaceBetween *bool   `json:"justifySpaceBetween,omitempty"`
}

// Attributes is an AttributeBag with every default applied.
type Attributes struct {
	Icon                string     `json:"icon"`
	IconSource          IconSource `json:"iconSource"`
	CustomIconSVG       string     `json:"customIconSvg"`
	IconPositionLeft    bool       `json:"iconPositionLeft"`
	JustifySpaceBetween bool       `json:"justifySpaceBetween"`
}

// IsCustomSource reports whether the custom SVG mode is active.
func (a Attributes) IsCustomSource() bool {
	return a.IconSource == SourceCustom
}

// ResolveDefaults 统一补齐缺省值：布尔缺省为 false，iconSource 缺省为 library。
func ResolveDefaults(bag AttributeBag) Attributes {
	attrs := Attributes{IconSource: SourceLibrary}
	if bag.Icon != nil {
		attrs.Icon = *bag.Icon
	}
	if bag.IconSource != nil && *bag.IconSource != "" {
		attrs.IconSource = IconSource(*bag.IconSource)
	}
	if bag.CustomIconSVG != nil {
		attrs.CustomIconSVG = *bag.CustomIconSVG
	}
	if bag.IconPositionLeft != nil {
		attrs.IconPositionLeft = *bag.IconPositionLeft
	}
	if bag.JustifySpaceBetween != nil {
		attrs.JustifySpaceBetween = *bag.JustifySpaceBetween
	}
	return attrs
}

// Bag converts resolved attributes back to a fully populated bag. An empty icon becomes null.
func (a Attributes) Bag() AttributeBag {
	source := string(a.IconSource)
	svg := a.CustomIconSVG
	left := a.IconPositionLeft
	justify := a.JustifySpaceBetween

	bag := AttributeBag{
		IconSource:          &source,
		CustomIconSVG:       &svg,
		IconPositionLeft:    &left,
		JustifySpaceBetween: &justify,
	}
	if a.Icon != "" {
		icon := a.Icon
		bag.Icon = &icon
	}
	return bag
}
