package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsValidPhone reports whether the string contains 10 to 15 digits after
// normalizing Arabic-Indic numerals and dropping separators.
func IsValidPhone(phone string) bool {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, ToEnglishNumerals(phone))
	return len(cleaned) >= 10 && len(cleaned) <= 15
}

// IsValidEmail reports whether the string is a plausible email address.
func IsValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
