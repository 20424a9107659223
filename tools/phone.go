package tools

import (
	"regexp"
	"strings"
)

var israeliPhone = regexp.MustCompile(`^(0?5[0-9]|0?[2-4]|0?7[0-9]|0?8|0?9)[0-9]{7,8}$`)

// NormalizePhone drops the spaces and dashes people type into phone numbers.
func NormalizePhone(raw string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(raw))
}

// IsValidIsraeliPhone accepts landline and mobile numbers, with or without
// the leading zero, once normalized to 9 or 10 digits.
func IsValidIsraeliPhone(raw string) bool {
	phone := NormalizePhone(raw)
	if len(phone) < 9 || len(phone) > 10 {
		return false
	}
	return israeliPhone.MatchString(phone)
}
