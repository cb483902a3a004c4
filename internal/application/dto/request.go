// Package dto contains data transfer objects for application layer use cases.
package dto

// EvaluateSheetRequest encapsulates all inputs needed to evaluate a sheet.
type EvaluateSheetRequest struct {
	SheetPath   string
	Assignments []Assignment
	Metadata    RequestMetadata
}

// Assignment sets one attribute's raw value.
type Assignment struct {
	// Name of the target attribute
	Name string

	// Value to assign
	Value float64

	// Input is the text the assignment was parsed from, if any
	Input string
}

// RequestMetadata contains metadata for request tracking.
type RequestMetadata struct {
	// RequestID uniquely identifies this request
	RequestID string
}
