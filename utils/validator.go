// utils/validator.go - Input validation
package utils

import (
	"strings"
)

// SanitizeInput trims surrounding whitespace and strips null bytes.
func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")
	return input
}

// SanitizeOptional sanitizes a pointer value, keeping nil as nil.
func SanitizeOptional(input *string) *string {
	if input == nil {
		return nil
	}
	v := SanitizeInput(*input)
	return &v
}

// ClampPage applies the listing defaults: limit 20, capped at 100.
func ClampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	} else if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
