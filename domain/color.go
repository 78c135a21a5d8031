package domain

import "strings"

// ColorPreference is a sender's chosen chat color, owned by an external
// color store. Custom holds a hex or gradient spec, Tag a named color tag
// such as "<red>". Both may be empty.
type ColorPreference struct {
	Custom string
	Tag    string
}

// IsGradient reports whether the custom spec is a gradient opening tag.
func (p ColorPreference) IsGradient() bool {
	return strings.HasPrefix(p.Custom, "<gradient:")
}

// IsHex reports whether the custom spec is a #RRGGBB color.
func (p ColorPreference) IsHex() bool {
	return strings.HasPrefix(p.Custom, "#")
}
