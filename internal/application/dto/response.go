package dto

import (
	"time"
)

// SheetReport contains the result of evaluating a sheet.
type SheetReport struct {
	SheetName    string              `json:"sheet" yaml:"sheet"`
	SheetVersion string              `json:"version" yaml:"version"`
	SheetPath    string              `json:"path,omitempty" yaml:"path,omitempty"`
	Attributes   []AttributeReport   `json:"attributes" yaml:"attributes"`
	Assignments  []AssignmentOutcome `json:"assignments,omitempty" yaml:"assignments,omitempty"`
	Metadata     ResponseMetadata    `json:"metadata" yaml:"metadata"`
}

// AttributeReport is the final state of one attribute.
type AttributeReport struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Raw         float64 `json:"raw" yaml:"raw"`

	// Derived is nil when the derivation could not be evaluated
	Derived *float64 `json:"derived" yaml:"derived"`
}

// AssignmentOutcome records whether an assignment was applied.
type AssignmentOutcome struct {
	Attribute string  `json:"attribute" yaml:"attribute"`
	Input     string  `json:"input,omitempty" yaml:"input,omitempty"`
	Value     float64 `json:"value" yaml:"value"`
	Applied   bool    `json:"applied" yaml:"applied"`
	Error     string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// ResponseMetadata contains metadata about the response.
type ResponseMetadata struct {
	// RequestID from the original request
	RequestID string `json:"request_id,omitempty" yaml:"request_id,omitempty"`

	// ProcessedAt is when the request was processed
	ProcessedAt time.Time `json:"processed_at" yaml:"processed_at"`

	// Duration is how long the request took
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Rejected returns the outcomes that were not applied.
func (r *SheetReport) Rejected() []AssignmentOutcome {
	var out []AssignmentOutcome
	for _, a := range r.Assignments {
		if !a.Applied {
			out = append(out, a)
		}
	}
	return out
}
