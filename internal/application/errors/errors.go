// Package apperrors defines application-level error types.
package apperrors

import (
	"fmt"
)

// ConfigurationError indicates a sheet or system config could not be used.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}

// AssignmentError indicates a requested assignment could not be applied.
// The target attribute keeps its previous value.
type AssignmentError struct {
	Cause     error
	Attribute string
	Input     string
}

func (e *AssignmentError) Error() string {
	if e.Attribute == "" {
		return fmt.Sprintf("assignment %q failed: %v", e.Input, e.Cause)
	}
	return fmt.Sprintf("assignment to %s (%q) failed: %v", e.Attribute, e.Input, e.Cause)
}

func (e *AssignmentError) Unwrap() error {
	return e.Cause
}

// NewAssignmentError creates a new assignment error.
func NewAssignmentError(attribute, input string, cause error) *AssignmentError {
	return &AssignmentError{
		Attribute: attribute,
		Input:     input,
		Cause:     cause,
	}
}
