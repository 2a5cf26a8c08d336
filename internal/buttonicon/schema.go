package buttonicon

// ButtonBlockName is the block type extended with icon attributes.
const ButtonBlockName = "core/button"

// AttributeSpec declares one persisted block attribute.
type AttributeSpec struct {
	Type    string `json:"type"`
	Default any    `json:"default,omitempty"`
}

// BlockType is the block settings object passed through the registration hook.
type BlockType struct {
	Name       string                   `json:"name"`
	Title      string                   `json:"title,omitempty"`
	Attributes map[string]AttributeSpec `json:"attributes"`
}

// IconAttributes returns the attribute declarations contributed to button blocks.
func IconAttributes() map[string]AttributeSpec {
	return map[string]AttributeSpec{
		"icon":                {Type: "string"},
		"iconSource":          {Type: "string", Default: string(SourceLibrary)},
		"customIconSvg":       {Type: "string"},
		"iconPositionLeft":    {Type: "boolean", Default: false},
		"justifySpaceBetween": {Type: "boolean", Default: false},
	}
}

// RegisterAttributes adds the icon attributes to the button block settings. Other
// block types are returned as is. The input map is never modified.
func RegisterAttributes(settings BlockType) BlockType {
	if settings.Name != ButtonBlockName {
		return settings
	}

	icon := IconAttributes()
	merged := make(map[string]AttributeSpec, len(settings.Attributes)+len(icon))
	for name, spec := range settings.Attributes {
		merged[name] = spec
	}
	for name, spec := range icon {
		merged[name] = spec
	}

	settings.Attributes = merged
	return settings
}
