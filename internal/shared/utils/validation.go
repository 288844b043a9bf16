package utils

import "regexp"

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsValidHexColor reports whether s is a #RRGGBB color string.
func IsValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}
