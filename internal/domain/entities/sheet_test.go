package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSheet() Sheet {
	return Sheet{
		Metadata: SheetMetadata{Name: "geometry", Version: "1.0.0"},
		Attributes: []AttributeDefinition{
			{Name: "radius", Initial: 10, ValidateExpr: "value > 0", DeriveExpr: "pi * value ** 2"},
		},
	}
}

func Test_Sheet_Validate(t *testing.T) {
	s := validSheet()
	require.NoError(t, s.Validate())
}

func Test_Sheet_ValidateAggregatesErrors(t *testing.T) {
	s := Sheet{
		Metadata: SheetMetadata{Version: "one"},
		Attributes: []AttributeDefinition{
			{Name: "radius", ValidateExpr: "value > 0", DeriveExpr: "value"},
			{Name: "radius", ValidateExpr: "value > 0", DeriveExpr: "value"},
			{Name: "bad-name", ValidateExpr: " ", DeriveExpr: ""},
		},
	}

	err := s.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "sheet name is required")
	assert.Contains(t, msg, `sheet version "one" is not valid`)
	assert.Contains(t, msg, "duplicate attribute name: radius")
	assert.Contains(t, msg, `attribute name "bad-name" is invalid`)
	assert.Contains(t, msg, "validate expression is required")
	assert.Contains(t, msg, "derive expression is required")
}

func Test_Sheet_ValidateRequiresAttributes(t *testing.T) {
	s := Sheet{Metadata: SheetMetadata{Name: "empty", Version: "1.0.0"}}

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one attribute is required")
}

func Test_Sheet_Attribute(t *testing.T) {
	s := validSheet()

	def, ok := s.Attribute("radius")
	require.True(t, ok)
	assert.Equal(t, 10.0, def.Initial)

	_, ok = s.Attribute("missing")
	assert.False(t, ok)
}
