package view

import "github.com/buttonicons/internal/locale"

// ButtonIcon 描述按钮图标库中的一个条目。
type ButtonIcon struct {
	Value   string
	Label   string
	LabelZH string
	SVG     string
}

// ButtonIconOption is the picker grid payload for one icon.
type ButtonIconOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	SVG   string `json:"svg"`
}

const svgOpen = `<svg width="24" height="24" viewBox="0 0 24 24" xmlns="http://www.w3.org/2000/svg">`

// buttonIconDefinitions 的顺序即为选择面板中的展示顺序。
var (
	buttonIconDefinitions = []ButtonIcon{
		{Value: "chevron-right", Label: "Chevron Right", LabelZH: "右箭头", SVG: svgOpen + `<path d="M10.6 6L9.4 7l4.6 5-4.6 5 1.2 1 5.4-6z"/></svg>`},
		{Value: "chevron-left", Label: "Chevron Left", LabelZH: "左箭头", SVG: svgOpen + `<path d="M14.6 7l-1.2-1L8 12l5.4 6 1.2-1-4.6-5z"/></svg>`},
		{Value: "chevron-right-small", Label: "Chevron Right (Small)", LabelZH: "右箭头（小）", SVG: svgOpen + `<path d="M10.8622 8.04053L14.2805 12.0286L10.8622 16.0167L9.72327 15.0405L12.3049 12.0286L9.72327 9.01672L10.8622 8.04053Z"/></svg>`},
		{Value: "chevron-left-small", Label: "Chevron Left (Small)", LabelZH: "左箭头（小）", SVG: svgOpen + `<path d="m13.1 16-3.4-4 3.4-4 1.1 1-2.6 3 2.6 3-1.1 1z"/></svg>`},
		{Value: "shuffle", Label: "Shuffle", LabelZH: "随机", SVG: svgOpen + `<path d="M17.192 6.75L15.47 5.03l1.06-1.06 3.537 3.53-3.537 3.53-1.06-1.06 1.723-1.72h-3.19c-.602 0-.993.202-1.28.498-.309.319-.538.792-.695 1.383-.13.488-.222 1.023-.296 1.508l-.039.31c-.072.57-.14 1.105-.288 1.662-.193.721-.513 1.467-1.068 2.04-.575.594-1.359.954-2.357.954H4v-1.5h4.003c.601 0 .993-.202 1.28-.498.308-.319.538-.792.695-1.383.149-.557.216-1.093.288-1.662l.039-.31a9.653 9.653 0 0 1 .272-1.653c.193-.722.513-1.467 1.067-2.04.576-.594 1.36-.954 2.358-.954h3.19zM8.004 6.75c.8 0 1.46.23 1.988.628a6.24 6.24 0 0 0-.684 1.396 1.725 1.725 0 0 0-.024-.026c-.287-.296-.679-.498-1.28-.498H4v-1.5h4.003zM12.699 14.726c-.161.459-.38.94-.684 1.396.527.397 1.188.628 1.988.628h3.19l-1.722 1.72 1.06 1.06L20.067 16l-3.537-3.53-1.06 1.06 1.723 1.72h-3.19c-.602 0-.993-.202-1.28-.498a1.96 1.96 0 0 1-.024-.026z"/></svg>`},
		{Value: "arrow-right", Label: "Arrow Right", LabelZH: "向右", SVG: svgOpen + `<path d="m14.5 6.5-1 1 3.7 3.7H4v1.6h13.2l-3.7 3.7 1 1 5.6-5.5z"/></svg>`},
		{Value: "arrow-left", Label: "Arrow Left", LabelZH: "向左", SVG: svgOpen + `<path d="M20 11.2H6.8l3.7-3.7-1-1L3.9 12l5.6 5.5 1-1-3.7-3.7H20z"/></svg>`},
		{Value: "next", Label: "Next", LabelZH: "下一个", SVG: svgOpen + `<path d="M6.6 6L5.4 7l4.5 5-4.5 5 1.1 1 5.5-6-5.4-6zm6 0l-1.1 1 4.5 5-4.5 5 1.1 1 5.5-6-5.5-6z"/></svg>`},
		{Value: "previous", Label: "Previous", LabelZH: "上一个", SVG: svgOpen + `<path d="M11.6 7l-1.1-1L5 12l5.5 6 1.1-1L7 12l4.6-5zm6 0l-1.1-1-5.5 6 5.5 6 1.1-1-4.6-5 4.6-5z"/></svg>`},
		{Value: "download", Label: "Download", LabelZH: "下载", SVG: svgOpen + `<path d="M18 11.3l-1-1.1-4 4V3h-1.5v11.3L7 10.2l-1 1.1 6.2 5.8 5.8-5.8zm.5 3.7v3.5h-13V15H4v5h16v-5h-1.5z"/></svg>`},
		{Value: "external-arrow", Label: "External Arrow", LabelZH: "外链箭头", SVG: svgOpen + `<polygon points="18 6 8.15240328 6 8.15240328 8.1101993 14.3985932 8.1101993 6 16.5087925 7.4912075 18 15.8898007 9.6014068 15.8898007 15.8475967 18 15.8475967"></polygon></svg>`},
		{Value: "external", Label: "External", LabelZH: "外部链接", SVG: svgOpen + `<path d="M19.5 4.5h-7V6h4.44l-5.97 5.97 1.06 1.06L18 7.06v4.44h1.5v-7Zm-13 1a2 2 0 0 0-2 2v10a2 2 0 0 0 2 2h10a2 2 0 0 0 2-2v-3H17v3a.5.5 0 0 1-.5.5h-10a.5.5 0 0 1-.5-.5v-10a.5.5 0 0 1 .5-.5h3V5.5h-3Z"/></svg>`},
		{Value: "login", Label: "Login", LabelZH: "登录", SVG: svgOpen + `<path d="M11 14.5l1.1 1.1 3-3 .5-.5-.6-.6-3-3-1 1 1.7 1.7H5v1.5h7.7L11 14.5zM16.8 5h-7c-1.1 0-2 .9-2 2v1.5h1.5V7c0-.3.2-.5.5-.5h7c.3 0 .5.2.5.5v10c0 .3-.2.5-.5.5h-7c-.3 0-.5-.2-.5-.5v-1.5H7.8V17c0 1.1.9 2 2 2h7c1.1 0 2-.9 2-2V7c0-1.1-.9-2-2-2z"/></svg>`},
		{Value: "lock-outline", Label: "Lock", LabelZH: "锁定", SVG: svgOpen + `<path d="M17 10h-1.2V7c0-2.1-1.7-3.8-3.8-3.8-2.1 0-3.8 1.7-3.8 3.8v3H7c-.6 0-1 .4-1 1v8c0 .6.4 1 1 1h10c.6 0 1-.4 1-1v-8c0-.6-.4-1-1-1zM9.8 7c0-1.2 1-2.2 2.2-2.2 1.2 0 2.2 1 2.2 2.2v3H9.8V7zm6.7 11.5h-9v-7h9v7z"/></svg>`},
		{Value: "comment-author-avatar", Label: "Avatar", LabelZH: "头像", SVG: svgOpen + `<path fill-rule="evenodd" clip-rule="evenodd" d="M7.25 16.437a6.5 6.5 0 1 1 9.5 0V16A2.75 2.75 0 0 0 14 13.25h-4A2.75 2.75 0 0 0 7.25 16v.437Zm1.5 1.193a6.47 6.47 0 0 0 3.25.87 6.47 6.47 0 0 0 3.25-.87V16c0-.69-.56-1.25-1.25-1.25h-4c-.69 0-1.25.56-1.25 1.25v1.63ZM4 12a8 8 0 1 1 16 0 8 8 0 0 1-16 0Zm10-2a2 2 0 1 1-4 0 2 2 0 0 1 4 0Z"/></svg>`},
		{Value: "cloud", Label: "Cloud", LabelZH: "云", SVG: svgOpen + `<path d="M17.3 10.1c0-2.5-2.1-4.4-4.8-4.4-2.2 0-4.1 1.4-4.6 3.3h-.2C5.7 9 4 10.7 4 12.8c0 2.1 1.7 3.8 3.7 3.8h9c1.8 0 3.2-1.5 3.2-3.3.1-1.6-1.1-2.9-2.6-3.2zm-.5 5.1h-9c-1.2 0-2.2-1.1-2.2-2.3s1-2.4 2.2-2.4h1.3l.3-1.1c.4-1.3 1.7-2.2 3.2-2.2 1.8 0 3.3 1.3 3.3 2.9v1.3l1.3.2c.8.1 1.4.9 1.4 1.8-.1 1-.9 1.8-1.8 1.8z"/></svg>`},
		{Value: "cloud-upload", Label: "Cloud Upload", LabelZH: "上传到云", SVG: svgOpen + `<path d="M17.3 10.1c0-2.5-2.1-4.4-4.8-4.4-2.2 0-4.1 1.4-4.6 3.3h-.2C5.7 9 4 10.7 4 12.8c0 2.1 1.7 3.8 3.7 3.8h9c1.8 0 3.2-1.5 3.2-3.3.1-1.6-1.1-2.9-2.6-3.2zm-.5 5.1h-4v-2.4L14 14l1-1-3-3-3 3 1 1 1.2-1.2v2.4H7.7c-1.2 0-2.2-1.1-2.2-2.3s1-2.4 2.2-2.4H9l.3-1.1c.4-1.3 1.7-2.2 3.2-2.2 1.8 0 3.3 1.3 3.3 2.9v1.3l1.3.2c.8.1 1.4.9 1.4 1.8 0 1-.8 1.8-1.7 1.8z"/></svg>`},
		{Value: "help", Label: "Help", LabelZH: "帮助", SVG: svgOpen + `<path d="M12 4.75a7.25 7.25 0 100 14.5 7.25 7.25 0 000-14.5zM3.25 12a8.75 8.75 0 1117.5 0 8.75 8.75 0 01-17.5 0zM12 8.75a1.5 1.5 0 01.167 2.99c-.465.052-.917.44-.917 1.01V14h1.5v-.845A3 3 0 109 10.25h1.5a1.5 1.5 0 011.5-1.5zM11.25 15v1.5h1.5V15h-1.5z"/></svg>`},
		{Value: "info", Label: "Info", LabelZH: "信息", SVG: svgOpen + `<path d="M12 3.2c-4.8 0-8.8 3.9-8.8 8.8 0 4.8 3.9 8.8 8.8 8.8 4.8 0 8.8-3.9 8.8-8.8 0-4.8-4-8.8-8.8-8.8zm0 16c-4 0-7.2-3.3-7.2-7.2C4.8 8 8 4.8 12 4.8s7.2 3.3 7.2 7.2c0 4-3.2 7.2-7.2 7.2zM11 17h2v-6h-2v6zm0-8h2V7h-2v2z"/></svg>`},
		{Value: "wordpress", Label: "WordPress", LabelZH: "WordPress", SVG: `<svg width="24" height="24" viewBox="-2 -2 24 24" xmlns="http://www.w3.org/2000/svg"><path d="M20 10c0-5.51-4.49-10-10-10C4.48 0 0 4.49 0 10c0 5.52 4.48 10 10 10 5.51 0 10-4.48 10-10zM7.78 15.37L4.37 6.22c.55-.02 1.17-.08 1.17-.08.5-.06.44-1.13-.06-1.11 0 0-1.45.11-2.37.11-.18 0-.37 0-.58-.01C4.12 2.69 6.87 1.11 10 1.11c2.33 0 4.45.87 6.05 2.34-.68-.11-1.65.39-1.65 1.58 0 .74.45 1.36.9 2.1.35.61.55 1.36.55 2.46 0 1.49-1.4 5-1.4 5l-3.03-8.37c.54-.02.82-.17.82-.17.5-.05.44-1.25-.06-1.22 0 0-1.44.12-2.38.12-.87 0-2.33-.12-2.33-.12-.5-.03-.56 1.2-.06 1.22l.92.08 1.26 3.41zM17.41 10c.24-.64.74-1.87.43-4.25.7 1.29 1.05 2.71 1.05 4.25 0 3.29-1.73 6.24-4.4 7.78.97-2.59 1.94-5.2 2.92-7.78zM6.1 18.09C3.12 16.65 1.11 13.53 1.11 10c0-1.3.23-2.48.72-3.59C3.25 10.3 4.67 14.2 6.1 18.09zm4.03-6.63l2.58 6.98c-.86.29-1.76.45-2.71.45-.79 0-1.57-.11-2.29-.33.81-2.38 1.62-4.74 2.42-7.1z"/></svg>`},
	}
	buttonIconLookup = func() map[string]int {
		lookup := make(map[string]int, len(buttonIconDefinitions))
		for i, icon := range buttonIconDefinitions {
			lookup[icon.Value] = i
		}
		return lookup
	}()
)

// ButtonIcons returns the catalog in presentation order.
func ButtonIcons() []ButtonIcon {
	icons := make([]ButtonIcon, len(buttonIconDefinitions))
	copy(icons, buttonIconDefinitions)
	return icons
}

// FindButtonIcon looks an icon up by its exact identifier.
func FindButtonIcon(value string) (ButtonIcon, bool) {
	index, ok := buttonIconLookup[value]
	if !ok {
		return ButtonIcon{}, false
	}
	return buttonIconDefinitions[index], true
}

// IsButtonIcon reports whether value names a catalog icon.
func IsButtonIcon(value string) bool {
	_, ok := buttonIconLookup[value]
	return ok
}

// LocalizedLabel 根据语言返回图标名称。
func (i ButtonIcon) LocalizedLabel(language string) string {
	return locale.Pick(language, i.Label, i.LabelZH)
}

// ButtonIconOptions exposes the picker metadata for the editor panel.
func ButtonIconOptions(language string) []ButtonIconOption {
	options := make([]ButtonIconOption, 0, len(buttonIconDefinitions))
	for _, icon := range buttonIconDefinitions {
		options = append(options, ButtonIconOption{
			Value: icon.Value,
			Label: icon.LocalizedLabel(language),
			SVG:   icon.SVG,
		})
	}
	return options
}
