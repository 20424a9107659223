package tools

import (
	"strings"

	"learnhub/apperr"
)

// RequiredString trims value and rejects it when nothing is left.
func RequiredString(value, field string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", apperr.Validation("%s is required", field)
	}
	return trimmed, nil
}

// OptionalString is RequiredString for fields that may be omitted. A nil
// value stays nil; a present value must not be blank.
func OptionalString(value *string, field string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, apperr.Validation("%s cannot be empty", field)
	}
	return &trimmed, nil
}

// PositiveID rejects ids that cannot name a row.
func PositiveID(id int64, field string) error {
	if id <= 0 {
		return apperr.Validation("%s must be a positive number", field)
	}
	return nil
}

// OptionalPositiveID is PositiveID for ids that may be omitted.
func OptionalPositiveID(id *int64, field string) error {
	if id == nil {
		return nil
	}
	return PositiveID(*id, field)
}
