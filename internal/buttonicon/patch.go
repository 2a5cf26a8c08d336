package buttonicon

import (
	"bytes"
	"encoding/json"
)

// Patch is a partial attribute update, the argument the editor passes to setAttributes.
// Only fields that are set are merged; IconSet with a nil Icon clears the icon.
type Patch struct {
	IconSet             bool
	Icon                *string
	IconSource          *string
	CustomIconSVG       *string
	IconPositionLeft    *bool
	JustifySpaceBetween *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return !p.IconSet && p.IconSource == nil && p.CustomIconSVG == nil &&
		p.IconPositionLeft == nil && p.JustifySpaceBetween == nil
}

// WithIcon sets icon; an empty id stores null.
func (p Patch) WithIcon(id string) Patch {
	p.IconSet = true
	p.Icon = nil
	if id != "" {
		p.Icon = &id
	}
	return p
}

// WithIconSource sets iconSource.
func (p Patch) WithIconSource(source IconSource) Patch {
	value := string(source)
	p.IconSource = &value
	return p
}

// WithCustomIconSVG sets customIconSvg.
func (p Patch) WithCustomIconSVG(svg string) Patch {
	p.CustomIconSVG = &svg
	return p
}

// WithIconPositionLeft sets iconPositionLeft.
func (p Patch) WithIconPositionLeft(v bool) Patch {
	p.IconPositionLeft = &v
	return p
}

// WithJustifySpaceBetween sets justifySpaceBetween.
func (p Patch) WithJustifySpaceBetween(v bool) Patch {
	p.JustifySpaceBetween = &v
	return p
}

// Merge applies patch on top of bag and returns the new bag. bag is not modified.
func Merge(bag AttributeBag, patch Patch) AttributeBag {
	merged := bag
	if patch.IconSet {
		merged.Icon = cloneString(patch.Icon)
	}
	if patch.IconSource != nil {
		merged.IconSource = cloneString(patch.IconSource)
	}
	if patch.CustomIconSVG != nil {
		merged.CustomIconSVG = cloneString(patch.CustomIconSVG)
	}
	if patch.IconPositionLeft != nil {
		v := *patch.IconPositionLeft
		merged.IconPositionLeft = &v
	}
	if patch.JustifySpaceBetween != nil {
		v := *patch.JustifySpaceBetween
		merged.JustifySpaceBetween = &v
	}
	return merged
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// MarshalJSON 只输出被设置的字段，icon 被清空时输出 null。
func (p Patch) MarshalJSON() ([]byte, error) {
	fields := map[string]any{}
	if p.IconSet {
		if p.Icon == nil {
			fields["icon"] = nil
		} else {
			fields["icon"] = *p.Icon
		}
	}
	if p.IconSource != nil {
		fields["iconSource"] = *p.IconSource
	}
	if p.CustomIconSVG != nil {
		fields["customIconSvg"] = *p.CustomIconSVG
	}
	if p.IconPositionLeft != nil {
		fields["iconPositionLeft"] = *p.IconPositionLeft
	}
	if p.JustifySpaceBetween != nil {
		fields["justifySpaceBetween"] = *p.JustifySpaceBetween
	}
	return json.Marshal(fields)
}

// UnmarshalJSON distinguishes an absent key from an explicit null. A null icon clears
// the icon; null on any other key resets it to its registered default.
func (p *Patch) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = Patch{}
	if icon, ok := raw["icon"]; ok {
		var value string
		if err := decodeNullable(icon, &value); err != nil {
			return err
		}
		p.IconSet = true
		if value != "" {
			p.Icon = &value
		}
	}
	if source, ok := raw["iconSource"]; ok {
		value := string(SourceLibrary)
		if err := decodeNullable(source, &value); err != nil {
			return err
		}
		p.IconSource = &value
	}
	if svg, ok := raw["customIconSvg"]; ok {
		var value string
		if err := decodeNullable(svg, &value); err != nil {
			return err
		}
		p.CustomIconSVG = &value
	}
	if left, ok := raw["iconPositionLeft"]; ok {
		var value bool
		if err := decodeNullable(left, &value); err != nil {
			return err
		}
		p.IconPositionLeft = &value
	}
	if justify, ok := raw["justifySpaceBetween"]; ok {
		var value bool
		if err := decodeNullable(justify, &value); err != nil {
			return err
		}
		p.JustifySpaceBetween = &value
	}
	return nil
}

// decodeNullable 解码 raw 到 target；raw 为 null 时保持 target 不变。
func decodeNullable(raw json.RawMessage, target any) error {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	return json.Unmarshal(raw, target)
}
