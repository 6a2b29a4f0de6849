// text.go - Rune-safe string helpers shared by the extractors

package extraction

import "unicode/utf8"

// runeLen counts characters, not bytes
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// truncateRunes caps s at max characters without splitting a rune
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
