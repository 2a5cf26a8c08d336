package buttonicon

// Editor panel actions. Each returns the partial update the icon panel hands to
// setAttributes; ok is false when the action would not change anything.

// SelectLibrarySource switches the panel to the icon library.
func SelectLibrarySource(attrs Attributes) (Patch, bool) {
	if attrs.IconSource == SourceLibrary {
		return Patch{}, false
	}
	return Patch{}.WithIconSource(SourceLibrary), true
}

// SelectCustomSource switches the panel to the custom SVG textarea. The icon becomes
// "custom" only when markup is already stored.
func SelectCustomSource(attrs Attributes) (Patch, bool) {
	if attrs.IconSource == SourceCustom {
		return Patch{}, false
	}
	return Patch{}.WithIconSource(SourceCustom).WithIcon(CustomIconFor(attrs.CustomIconSVG)), true
}

// ChangeCustomSVG stores edited markup and keeps icon consistent with it.
func ChangeCustomSVG(svg string) Patch {
	return Patch{}.
		WithCustomIconSVG(svg).
		WithIconSource(SourceCustom).
		WithIcon(CustomIconFor(svg))
}

// RemoveCustomIcon clears the custom markup but stays in custom mode.
func RemoveCustomIcon() Patch {
	return Patch{}.
		WithCustomIconSVG("").
		WithIcon("").
		WithIconSource(SourceCustom)
}

// PickLibraryIcon selects a catalog icon. Picking the icon that is already active
// clears it. Catalog membership is checked by the caller.
func PickLibraryIcon(attrs Attributes, id string) Patch {
	next := id
	if attrs.Icon == id {
		next = ""
	}
	return Patch{}.
		WithIcon(next).
		WithIconSource(SourceLibrary).
		WithCustomIconSVG("")
}

// TogglePositionLeft flips iconPositionLeft.
func TogglePositionLeft(attrs Attributes) Patch {
	return Patch{}.WithIconPositionLeft(!attrs.IconPositionLeft)
}

// ToggleJustifySpaceBetween flips justifySpaceBetween.
func ToggleJustifySpaceBetween(attrs Attributes) Patch {
	return Patch{}.WithJustifySpaceBetween(!attrs.JustifySpaceBetween)
}

// CustomIconFor returns the icon value a custom-source block must carry for svg:
// "custom" when markup is present, empty (null) otherwise.
func CustomIconFor(svg string) string {
	if svg == "" {
		return ""
	}
	return IconSlugCustom
}
