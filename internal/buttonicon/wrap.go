package buttonicon

import "strings"

// RenderProps are the props of a block about to render in the editor list.
type RenderProps struct {
	Name       string            `json:"name"`
	Attributes AttributeBag      `json:"attributes"`
	ClassName  string            `json:"className,omitempty"`
	Style      map[string]string `json:"style,omitempty"`
	Extra      map[string]any    `json:"extra,omitempty"`
}

// WrapRenderProps merges the icon presentation into props. Non-button blocks and
// unknown fields pass through untouched. Caller class names and style entries are
// kept; the returned Style is a copy.
func WrapRenderProps(props RenderProps) RenderProps {
	if props.Name != ButtonBlockName {
		return props
	}

	presentation := ResolveBag(props.Attributes)
	props.ClassName = JoinClassNames(append([]string{props.ClassName}, presentation.ClassNames...)...)

	if presentation.HasCSSVar() {
		style := make(map[string]string, len(props.Style)+1)
		for key, value := range props.Style {
			style[key] = value
		}
		style[CustomIconProperty] = presentation.CSSVar
		props.Style = style
	}
	return props
}

// JoinClassNames joins class tokens with single spaces, dropping empties and repeats.
// Each argument may itself hold several space separated tokens.
func JoinClassNames(names ...string) string {
	seen := make(map[string]struct{})
	tokens := make([]string, 0, len(names))
	for _, name := range names {
		for _, token := range strings.Fields(name) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
	}
	return strings.Join(tokens, " ")
}
