package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrRootNotFound = errors.New("root not found")
)

// ValidationError represents a rejected command input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
