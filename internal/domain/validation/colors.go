package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value is a "#RRGGBB" color.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}
