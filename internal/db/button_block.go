package db

import (
	"github.com/buttonicons/internal/buttonicon"
	"gorm.io/gorm"
)

// ButtonBlock 持久化一个按钮区块及其图标属性。
type ButtonBlock struct {
	gorm.Model
	ClientID            string            `gorm:"size:36;uniqueIndex;not null"`
	Name                string            `gorm:"size:100;not null"`
	Text                string            `gorm:"type:text"`
	URL                 string            `gorm:"size:2048"`
	ClassName           string            `gorm:"size:512"`
	Style               map[string]string `gorm:"serializer:json"`
	Icon                *string           `gorm:"size:100"`
	IconSource          string            `gorm:"size:20;not null"`
	CustomIconSVG       string            `gorm:"type:text"`
	IconPositionLeft    bool              `gorm:"not null"`
	JustifySpaceBetween bool              `gorm:"not null"`
}

// TableName 自定义表名以保持命名一致。
func (ButtonBlock) TableName() string {
	return "button_blocks"
}

// AttributeBag returns a copy of the stored icon attributes.
func (b *ButtonBlock) AttributeBag() buttonicon.AttributeBag {
	source := b.IconSource
	svg := b.CustomIconSVG
	left := b.IconPositionLeft
	justify := b.JustifySpaceBetween

	bag := buttonicon.AttributeBag{
		IconSource:          &source,
		CustomIconSVG:       &svg,
		IconPositionLeft:    &left,
		JustifySpaceBetween: &justify,
	}
	if b.Icon != nil {
		icon := *b.Icon
		bag.Icon = &icon
	}
	return bag
}

// Attributes returns the stored icon attributes with defaults applied.
func (b *ButtonBlock) Attributes() buttonicon.Attributes {
	return buttonicon.ResolveDefaults(b.AttributeBag())
}

// SetAttributeBag overwrites the icon columns from bag, applying defaults.
func (b *ButtonBlock) SetAttributeBag(bag buttonicon.AttributeBag) {
	attrs := buttonicon.ResolveDefaults(bag)
	b.Icon = nil
	if bag.Icon != nil {
		icon := *bag.Icon
		b.Icon = &icon
	}
	b.IconSource = string(attrs.IconSource)
	b.CustomIconSVG = attrs.CustomIconSVG
	b.IconPositionLeft = attrs.IconPositionLeft
	b.JustifySpaceBetween = attrs.JustifySpaceBetween
}
