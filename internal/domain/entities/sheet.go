package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Sheet is a declarative set of numeric attributes.
// This is an aggregate root: attribute definitions only exist inside a sheet.
//
// Invariants Enforced:
// - Sheet name is required and version is a semantic version
// - At least one attribute, with unique identifier names
// - Every attribute has a validate and a derive expression
type Sheet struct {
	Metadata   SheetMetadata         `yaml:"sheet" json:"sheet"`
	Attributes []AttributeDefinition `yaml:"attributes" json:"attributes"`
}

// SheetMetadata contains metadata about the sheet.
type SheetMetadata struct {
	Name        string `yaml:"name" json:"name"`
	Version     string `yaml:"version" json:"version"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// AttributeDefinition declares one attribute.
// ValidateExpr and DeriveExpr are expressions over `value` and `pi`.
type AttributeDefinition struct {
	Name         string  `yaml:"name" json:"name"`
	Description  string  `yaml:"description,omitempty" json:"description,omitempty"`
	Initial      float64 `yaml:"initial" json:"initial"`
	ValidateExpr string  `yaml:"validate" json:"validate"`
	DeriveExpr   string  `yaml:"derive" json:"derive"`
}

// Validate checks the aggregate invariants and reports every problem found.
func (s *Sheet) Validate() error {
	var errs []string

	if s.Metadata.Name == "" {
		errs = append(errs, "sheet name is required")
	}
	if s.Metadata.Version == "" {
		errs = append(errs, "sheet version is required")
	} else if _, err := semver.StrictNewVersion(s.Metadata.Version); err != nil {
		errs = append(errs, fmt.Sprintf("sheet version %q is not valid (expected format: X.Y.Z)", s.Metadata.Version))
	}

	if len(s.Attributes) == 0 {
		errs = append(errs, "at least one attribute is required")
	}

	seen := make(map[string]bool, len(s.Attributes))
	for i, def := range s.Attributes {
		if err := def.Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("attribute %d: %s", i, err.Error()))
		}
		if seen[def.Name] {
			errs = append(errs, fmt.Sprintf("duplicate attribute name: %s", def.Name))
		}
		seen[def.Name] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("sheet validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Validate checks a single definition.
func (d AttributeDefinition) Validate() error {
	var errs []string

	if d.Name == "" {
		errs = append(errs, "attribute name is required")
	} else if !attributeNamePattern.MatchString(d.Name) {
		errs = append(errs, fmt.Sprintf("attribute name %q is invalid (must be an identifier)", d.Name))
	}
	if strings.TrimSpace(d.ValidateExpr) == "" {
		errs = append(errs, "validate expression is required")
	}
	if strings.TrimSpace(d.DeriveExpr) == "" {
		errs = append(errs, "derive expression is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Attribute returns the definition with the given name.
func (s *Sheet) Attribute(name string) (AttributeDefinition, bool) {
	for _, def := range s.Attributes {
		if def.Name == name {
			return def, true
		}
	}
	return AttributeDefinition{}, false
}
