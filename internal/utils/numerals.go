package utils

import "strings"

// ToArabicNumerals replaces every ASCII digit with its Arabic-Indic glyph
// (U+0660..U+0669). All other runes pass through unchanged.
func ToArabicNumerals(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return '٠' + (r - '0')
		}
		return r
	}, s)
}

// ToEnglishNumerals is the inverse mapping, Arabic-Indic digits back to ASCII.
func ToEnglishNumerals(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '٠' && r <= '٩' {
			return '0' + (r - '٠')
		}
		return r
	}, s)
}
