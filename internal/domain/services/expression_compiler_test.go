package services

import (
	"math"
	"strings"
	"testing"

	"github.com/reglet-dev/attrkit/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpressionCompiler_CompileRule(t *testing.T) {
	c := NewExpressionCompiler()

	tests := []struct {
		name   string
		source string
		input  float64
		want   bool
	}{
		{"positive accepts", "value > 0", 10, true},
		{"positive rejects", "value > 0", -5, false},
		{"range lower", "value >= 0 && value <= 100", 0, true},
		{"range above", "value >= 0 && value <= 100", 150, false},
		{"uses pi", "value < pi", 3, true},
		{"uses sqrt", "sqrt(value) == 3", 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := c.CompileRule(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rule.Allows(tt.input))
		})
	}
}

func TestExpressionCompiler_RuleMessage(t *testing.T) {
	c := NewExpressionCompiler()

	rule, err := c.CompileRule("value > 0")
	require.NoError(t, err)

	attr, err := values.NewAttribute("radius", -1.0, rule, func(v float64) float64 { return v })
	require.Error(t, err)
	assert.Nil(t, attr)
	assert.Contains(t, err.Error(), `must satisfy "value > 0"`)
}

func TestExpressionCompiler_CompileDerivation(t *testing.T) {
	c := NewExpressionCompiler()

	derive, err := c.CompileDerivation("pi * value ** 2")
	require.NoError(t, err)
	assert.InDelta(t, 314.159, derive(10), 0.001)

	constant, err := c.CompileDerivation("2")
	require.NoError(t, err)
	assert.Equal(t, 2.0, constant(123))
}

func TestExpressionCompiler_CompileErrors(t *testing.T) {
	c := NewExpressionCompiler()

	_, err := c.CompileRule("value +")
	assert.Error(t, err)

	_, err = c.CompileRule("value * 2")
	assert.Error(t, err, "rule must be boolean")

	_, err = c.CompileDerivation("unknown_var * 2")
	assert.Error(t, err)

	_, err = c.CompileRule(strings.Repeat("1 + ", 300) + "1 > 0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too long")

	assert.Equal(t, 0, c.CacheSize())
}

func TestExpressionCompiler_Caching(t *testing.T) {
	c := NewExpressionCompiler()

	_, err := c.CompileRule("value > 0")
	require.NoError(t, err)
	_, err = c.CompileRule("value > 0")
	require.NoError(t, err)
	assert.Equal(t, 1, c.CacheSize())

	_, err = c.CompileDerivation("value * 2")
	require.NoError(t, err)
	assert.Equal(t, 2, c.CacheSize())
}

func TestExpressionCompiler_DerivationAsAttribute(t *testing.T) {
	c := NewExpressionCompiler()

	rule, err := c.CompileRule("value > 0")
	require.NoError(t, err)
	derive, err := c.CompileDerivation("pi * value ** 2")
	require.NoError(t, err)

	attr, err := values.NewAttribute("radius", 10.0, rule, derive)
	require.NoError(t, err)
	assert.InDelta(t, 314.159, attr.Derived(), 0.001)

	require.NoError(t, attr.Set(20))
	assert.InDelta(t, 1256.637, attr.Derived(), 0.001)

	require.Error(t, attr.Set(-5))
	assert.Equal(t, 20.0, attr.Raw())
	assert.False(t, math.IsNaN(attr.Derived()))
}
