package services

import (
	"context"
	"errors"
	"testing"

	"github.com/reglet-dev/attrkit/internal/application/dto"
	apperrors "github.com/reglet-dev/attrkit/internal/application/errors"
	"github.com/reglet-dev/attrkit/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSheetLoader struct {
	sheet *entities.Sheet
	err   error
}

func (l *stubSheetLoader) LoadSheet(_ string) (*entities.Sheet, error) {
	return l.sheet, l.err
}

func testSheet() *entities.Sheet {
	return &entities.Sheet{
		Metadata: entities.SheetMetadata{Name: "geometry", Version: "1.2.0"},
		Attributes: []entities.AttributeDefinition{
			{Name: "radius", Description: "circle radius", Initial: 10, ValidateExpr: "value > 0", DeriveExpr: "pi * value ** 2"},
			{Name: "bonus", Initial: 10, ValidateExpr: "value >= 0 && value <= 100", DeriveExpr: "value / 100"},
			{Name: "ratio", Initial: 1, ValidateExpr: "true", DeriveExpr: "1 / (value - 1)"},
		},
	}
}

func TestEvaluateSheetUseCase_Execute(t *testing.T) {
	uc := NewEvaluateSheetUseCase(&stubSheetLoader{sheet: testSheet()}, nil, nil)

	report, err := uc.Execute(context.Background(), dto.EvaluateSheetRequest{
		SheetPath: "geometry.yaml",
		Assignments: []dto.Assignment{
			{Name: "radius", Value: 20},
			{Name: "radius", Value: -5},
			{Name: "bonus", Value: 150},
			{Name: "bonus", Value: 20},
			{Name: "missing", Value: 1},
		},
		Metadata: dto.RequestMetadata{RequestID: "req-1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "geometry", report.SheetName)
	assert.Equal(t, "1.2.0", report.SheetVersion)
	assert.Equal(t, "geometry.yaml", report.SheetPath)
	assert.Equal(t, "req-1", report.Metadata.RequestID)

	require.Len(t, report.Attributes, 3)
	radius := report.Attributes[0]
	assert.Equal(t, "circle radius", radius.Description)
	assert.Equal(t, 20.0, radius.Raw)
	require.NotNil(t, radius.Derived)
	assert.InDelta(t, 1256.637, *radius.Derived, 0.001)

	bonus := report.Attributes[1]
	assert.Equal(t, 20.0, bonus.Raw)

	require.Len(t, report.Assignments, 5)
	applied := []bool{true, false, false, true, false}
	for i, want := range applied {
		assert.Equal(t, want, report.Assignments[i].Applied, "assignment %d", i)
	}
	assert.Contains(t, report.Assignments[4].Error, "attribute not found: missing")
	assert.Len(t, report.Rejected(), 3)
}

func TestEvaluateSheetUseCase_NonFiniteDerivation(t *testing.T) {
	uc := NewEvaluateSheetUseCase(&stubSheetLoader{sheet: testSheet()}, nil, nil)

	report, err := uc.Execute(context.Background(), dto.EvaluateSheetRequest{})
	require.NoError(t, err)

	ratio := report.Attributes[2]
	assert.Equal(t, "ratio", ratio.Name)
	assert.Nil(t, ratio.Derived)
}

func TestEvaluateSheetUseCase_LoaderError(t *testing.T) {
	loadErr := errors.New("boom")
	uc := NewEvaluateSheetUseCase(&stubSheetLoader{err: loadErr}, nil, nil)

	_, err := uc.Execute(context.Background(), dto.EvaluateSheetRequest{SheetPath: "x.yaml"})
	assert.ErrorIs(t, err, loadErr)
}

func TestEvaluateSheetUseCase_BuildError(t *testing.T) {
	sheet := testSheet()
	sheet.Attributes[0].Initial = 0
	uc := NewEvaluateSheetUseCase(&stubSheetLoader{sheet: sheet}, nil, nil)

	_, err := uc.Execute(context.Background(), dto.EvaluateSheetRequest{})

	var cfgErr *apperrors.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "sheet", cfgErr.Aspect)
}

func TestEvaluateSheetUseCase_CanceledContext(t *testing.T) {
	uc := NewEvaluateSheetUseCase(&stubSheetLoader{sheet: testSheet()}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, dto.EvaluateSheetRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    dto.Assignment
		wantErr bool
	}{
		{"simple", "radius=20", dto.Assignment{Name: "radius", Value: 20, Input: "radius=20"}, false},
		{"spaces", " bonus = 12.5 ", dto.Assignment{Name: "bonus", Value: 12.5, Input: " bonus = 12.5 "}, false},
		{"negative", "radius=-5", dto.Assignment{Name: "radius", Value: -5, Input: "radius=-5"}, false},
		{"missing equals", "radius", dto.Assignment{}, true},
		{"missing name", "=3", dto.Assignment{}, true},
		{"not a number", "radius=big", dto.Assignment{}, true},
		{"nan", "x=NaN", dto.Assignment{}, true},
		{"inf", "x=Inf", dto.Assignment{}, true},
		{"negative inf", "x=-inf", dto.Assignment{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAssignment(tt.input)

			if tt.wantErr {
				var aErr *apperrors.AssignmentError
				require.True(t, errors.As(err, &aErr))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseAssignments_StopsAtFirstError(t *testing.T) {
	_, err := ParseAssignments([]string{"a=1", "b", "c=3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"b"`)

	got, err := ParseAssignments([]string{"a=1", "b=2"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

type pathSheetLoader map[string]*entities.Sheet

func (l pathSheetLoader) LoadSheet(path string) (*entities.Sheet, error) {
	sheet, ok := l[path]
	if !ok {
		return nil, errors.New("no such sheet")
	}
	return sheet, nil
}

func TestEvaluateSheetUseCase_ExecuteAll(t *testing.T) {
	other := testSheet()
	other.Metadata.Name = "payroll"
	loader := pathSheetLoader{"a.yaml": testSheet(), "b.yaml": other}
	uc := NewEvaluateSheetUseCase(loader, nil, nil)

	reports, err := uc.ExecuteAll(context.Background(), []dto.EvaluateSheetRequest{
		{SheetPath: "a.yaml", Assignments: []dto.Assignment{{Name: "radius", Value: 20}}},
		{SheetPath: "b.yaml"},
	}, 1)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "geometry", reports[0].SheetName)
	assert.Equal(t, 20.0, reports[0].Attributes[0].Raw)
	assert.Equal(t, "payroll", reports[1].SheetName)
	assert.Equal(t, 10.0, reports[1].Attributes[0].Raw)
}

func TestEvaluateSheetUseCase_ExecuteAllError(t *testing.T) {
	uc := NewEvaluateSheetUseCase(pathSheetLoader{"a.yaml": testSheet()}, nil, nil)

	_, err := uc.ExecuteAll(context.Background(), []dto.EvaluateSheetRequest{
		{SheetPath: "a.yaml"},
		{SheetPath: "missing.yaml"},
	}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml: no such sheet")
}
