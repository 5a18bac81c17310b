package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount with two decimal places, Arabic-Indic
// digits and the given currency symbol as suffix.
// Example: 1250.5 with "ج.م" -> "١٢٥٠.٥٠ ج.م".
func FormatCurrency(amount decimal.Decimal, symbol string) string {
	return ToArabicNumerals(amount.StringFixed(2)) + " " + symbol
}

// ParseCurrency extracts a numeric amount from a formatted string. Digits may
// be Arabic-Indic or ASCII; every other rune except '.' and '-' is dropped,
// then the longest leading numeric run is parsed. The currency symbol "ج.م"
// itself contains a dot, so trailing junk after the amount must be ignored.
// Unparseable input yields zero.
func ParseCurrency(s string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, ToEnglishNumerals(s))

	d, err := decimal.NewFromString(numericPrefix(cleaned))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// numericPrefix returns the longest prefix of s shaped like an optional minus
// sign, digits, and at most one decimal point.
func numericPrefix(s string) string {
	end := 0
	sawDot := false
	for i, r := range s {
		switch {
		case r == '-' && i == 0:
		case r == '.' && !sawDot:
			sawDot = true
		case r >= '0' && r <= '9':
		default:
			return s[:end]
		}
		end = i + 1
	}
	return s[:end]
}
