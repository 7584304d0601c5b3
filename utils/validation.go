// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows optional + prefix followed by 7-15 digits, or local 0-prefixed numbers
	regex := `^(\+?[1-9]\d{6,14}|0\d{9,10})$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}
