package values

import "fmt"

// ValidationError indicates a value was rejected by a rule.
// The rejected value is never stored.
type ValidationError struct {
	Value   any    // Rejected value
	Field   string // Field that failed validation
	Message string // Rule message
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s=%v: %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NotFoundError indicates a named attribute does not exist.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("attribute not found: %s", e.Key)
}

// TypeMismatchError indicates an attribute exists but holds another type.
type TypeMismatchError struct {
	Key  string
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("attribute %s: expected %s, got %s", e.Key, e.Want, e.Got)
}
