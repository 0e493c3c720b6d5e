package application

import (
	"fmt"
	"strings"

	"tokdex/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming
// whitespace). Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateCode checks that a ToK code is non-empty and strictly
// alphanumeric.
func ValidateCode(fieldName, code string) error {
	if err := ValidateRequired(fieldName, code); err != nil {
		return err
	}
	if !domain.ValidCode(code) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("code %q must contain only letters and digits", code),
		}
	}
	return nil
}

// ValidateUniqueCode checks that a code does not collide with an existing
// entry. An entry may keep its own code: pass its current code as except.
func ValidateUniqueCode(fieldName, code, except string, entries []domain.TokEntry) error {
	if code == except {
		return nil
	}
	if domain.FindEntry(entries, code) >= 0 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("code %q already exists", code),
		}
	}
	return nil
}
