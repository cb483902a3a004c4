package services

import (
	"fmt"
	"math"

	"github.com/reglet-dev/attrkit/internal/domain/entities"
	"github.com/reglet-dev/attrkit/internal/domain/values"
)

// NumericAttribute is the attribute type every sheet definition produces.
type NumericAttribute = values.Attribute[float64, float64]

// SheetInstance holds live attributes built from a sheet, in declaration
// order.
type SheetInstance struct {
	sheet *entities.Sheet
	attrs []*NumericAttribute
	index map[string]int
}

// finite rejects NaN and Inf ahead of the sheet's own rule.
var finite = values.NewRule("must be a finite number", func(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
})

// SheetBuilder turns sheet definitions into attributes.
type SheetBuilder struct {
	compiler *ExpressionCompiler
}

// NewSheetBuilder creates a builder. A nil compiler gets a fresh one.
func NewSheetBuilder(compiler *ExpressionCompiler) *SheetBuilder {
	if compiler == nil {
		compiler = NewExpressionCompiler()
	}
	return &SheetBuilder{compiler: compiler}
}

// Build compiles every definition and constructs its attribute from the
// initial value. The first failure aborts the build.
func (b *SheetBuilder) Build(sheet *entities.Sheet) (*SheetInstance, error) {
	inst := &SheetInstance{
		sheet: sheet,
		attrs: make([]*NumericAttribute, 0, len(sheet.Attributes)),
		index: make(map[string]int, len(sheet.Attributes)),
	}

	for _, def := range sheet.Attributes {
		rule, err := b.compiler.CompileRule(def.ValidateExpr)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", def.Name, err)
		}
		derive, err := b.compiler.CompileDerivation(def.DeriveExpr)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", def.Name, err)
		}

		attr, err := values.NewAttribute(def.Name, def.Initial, values.AllOf(finite, rule), derive)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: initial value: %w", def.Name, err)
		}

		inst.index[def.Name] = len(inst.attrs)
		inst.attrs = append(inst.attrs, attr)
	}

	return inst, nil
}

// Sheet returns the definition the instance was built from.
func (s *SheetInstance) Sheet() *entities.Sheet {
	return s.sheet
}

// Attribute returns the attribute with the given name.
func (s *SheetInstance) Attribute(name string) (*NumericAttribute, error) {
	i, ok := s.index[name]
	if !ok {
		return nil, &values.NotFoundError{Key: name}
	}
	return s.attrs[i], nil
}

// Assign sets the raw value of the named attribute.
func (s *SheetInstance) Assign(name string, v float64) error {
	attr, err := s.Attribute(name)
	if err != nil {
		return err
	}
	return attr.Set(v)
}

// Attributes returns the attributes in declaration order.
func (s *SheetInstance) Attributes() []*NumericAttribute {
	out := make([]*NumericAttribute, len(s.attrs))
	copy(out, s.attrs)
	return out
}
