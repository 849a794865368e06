package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateMin checks an integer field against a lower bound.
// Returns a ValidationError if the value is below min.
func ValidateMin(fieldName string, value, min int) error {
	if value < min {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("must be at least %d", min),
		}
	}
	return nil
}

// ValidateNonNegative checks that an integer field is not negative.
func ValidateNonNegative(fieldName string, value int) error {
	if value < 0 {
		return &ValidationError{
			Field:   fieldName,
			Message: "must not be negative",
		}
	}
	return nil
}
