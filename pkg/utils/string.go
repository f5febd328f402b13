package utils

import "unicode/utf8"

// Truncate shortens s to at most maxLen characters, appending an
// ellipsis when anything was cut. Counts runes, not bytes, so the cut
// never lands inside a multi-byte character.
func Truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen]) + "..."
}
