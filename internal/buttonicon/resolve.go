package buttonicon

// CustomIconProperty is the CSS custom property carrying the encoded custom SVG.
const CustomIconProperty = "--enable-button-icons-custom"

const (
	classIconPrefix          = "has-icon__"
	classIconPositionLeft    = "has-icon-position__left"
	classJustifySpaceBetween = "has-justified-space-between"
)

// Presentation is what a button needs to show its icon.
type Presentation struct {
	ClassNames        []string `json:"classNames"`
	CSSVar            string   `json:"cssVar,omitempty"`
	EffectiveIconSlug string   `json:"effectiveIconSlug,omitempty"`
}

// HasCSSVar reports whether CustomIconProperty should be set.
func (p Presentation) HasCSSVar() bool {
	return p.CSSVar != ""
}

// HasClass reports whether name is one of the resolved class names.
func (p Presentation) HasClass(name string) bool {
	for _, class := range p.ClassNames {
		if class == name {
			return true
		}
	}
	return false
}

type classRule struct {
	applies  func(Attributes, string) bool
	fragment func(string) string
}

// classRules 按固定顺序求值，输出顺序与规则顺序一致。
var classRules = []classRule{
	{
		applies:  func(_ Attributes, slug string) bool { return slug != "" },
		fragment: func(slug string) string { return classIconPrefix + slug },
	},
	{
		applies:  func(a Attributes, _ string) bool { return a.IconPositionLeft },
		fragment: func(string) string { return classIconPositionLeft },
	},
	{
		applies:  func(a Attributes, _ string) bool { return a.JustifySpaceBetween },
		fragment: func(string) string { return classJustifySpaceBetween },
	},
}

// EffectiveIconSlug returns "custom" in custom mode, otherwise the stored icon.
func EffectiveIconSlug(attrs Attributes) string {
	if attrs.IsCustomSource() {
		return IconSlugCustom
	}
	return attrs.Icon
}

// Resolve derives the class names and CSS variable for attrs. Library identifiers
// are not checked against the catalog.
func Resolve(attrs Attributes) Presentation {
	slug := EffectiveIconSlug(attrs)
	presentation := Presentation{
		ClassNames:        make([]string, 0, len(classRules)),
		EffectiveIconSlug: slug,
	}

	for _, rule := range classRules {
		if rule.applies(attrs, slug) {
			presentation.ClassNames = append(presentation.ClassNames, rule.fragment(slug))
		}
	}

	if slug == "" {
		return presentation
	}

	if attrs.IsCustomSource() && attrs.CustomIconSVG != "" {
		// 清理后为空时不输出变量，避免出现空的 url()
		presentation.CSSVar = EncodeSVGForCSS(attrs.CustomIconSVG)
	}
	return presentation
}

// ResolveBag applies defaults to bag and resolves it.
func ResolveBag(bag AttributeBag) Presentation {
	return Resolve(ResolveDefaults(bag))
}
