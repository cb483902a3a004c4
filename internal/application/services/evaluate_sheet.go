// Package services contains application use cases.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/reglet-dev/attrkit/internal/application/dto"
	apperrors "github.com/reglet-dev/attrkit/internal/application/errors"
	"github.com/reglet-dev/attrkit/internal/application/ports"
	"github.com/reglet-dev/attrkit/internal/domain/services"
	"golang.org/x/sync/errgroup"
)

// EvaluateSheetUseCase loads a sheet, applies assignments in order and
// reports the resulting attribute values.
// This is a pure application layer component that depends only on ports.
type EvaluateSheetUseCase struct {
	sheetLoader ports.SheetLoader
	builder     *services.SheetBuilder
	logger      *slog.Logger
}

// NewEvaluateSheetUseCase creates a new evaluate sheet use case.
func NewEvaluateSheetUseCase(
	sheetLoader ports.SheetLoader,
	builder *services.SheetBuilder,
	logger *slog.Logger,
) *EvaluateSheetUseCase {
	if builder == nil {
		builder = services.NewSheetBuilder(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &EvaluateSheetUseCase{
		sheetLoader: sheetLoader,
		builder:     builder,
		logger:      logger,
	}
}

// Execute runs the evaluation. Rejected assignments are recorded on the
// report and do not fail the call; sheet loading or building errors do.
func (uc *EvaluateSheetUseCase) Execute(ctx context.Context, req dto.EvaluateSheetRequest) (*dto.SheetReport, error) {
	startTime := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uc.logger.Debug("loading sheet", "path", req.SheetPath)

	sheet, err := uc.sheetLoader.LoadSheet(req.SheetPath)
	if err != nil {
		return nil, err
	}

	inst, err := uc.builder.Build(sheet)
	if err != nil {
		return nil, apperrors.NewConfigurationError("sheet", "failed to build attributes", err)
	}

	uc.logger.Debug("sheet built", "name", sheet.Metadata.Name, "attributes", len(sheet.Attributes))

	report := &dto.SheetReport{
		SheetName:    sheet.Metadata.Name,
		SheetVersion: sheet.Metadata.Version,
		SheetPath:    req.SheetPath,
		Assignments:  make([]dto.AssignmentOutcome, 0, len(req.Assignments)),
	}

	for _, a := range req.Assignments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		outcome := dto.AssignmentOutcome{
			Attribute: a.Name,
			Input:     a.Input,
			Value:     a.Value,
		}
		if err := inst.Assign(a.Name, a.Value); err != nil {
			outcome.Error = err.Error()
			uc.logger.Debug("assignment rejected", "attribute", a.Name, "value", a.Value, "error", err)
		} else {
			outcome.Applied = true
			uc.logger.Debug("assignment applied", "attribute", a.Name, "value", a.Value)
		}
		report.Assignments = append(report.Assignments, outcome)
	}

	for _, attr := range inst.Attributes() {
		def, _ := sheet.Attribute(attr.Name())
		row := dto.AttributeReport{
			Name:        attr.Name(),
			Description: def.Description,
			Raw:         attr.Raw(),
		}
		if derived := attr.Derived(); !math.IsNaN(derived) && !math.IsInf(derived, 0) {
			row.Derived = &derived
		}
		report.Attributes = append(report.Attributes, row)
	}

	report.Metadata = dto.ResponseMetadata{
		RequestID:   req.Metadata.RequestID,
		ProcessedAt: time.Now(),
		Duration:    time.Since(startTime),
	}

	return report, nil
}

// ExecuteAll evaluates several sheets concurrently, at most limit at a time
// (no limit when limit <= 0). Reports keep the order of reqs. The first
// failing sheet cancels the rest.
func (uc *EvaluateSheetUseCase) ExecuteAll(ctx context.Context, reqs []dto.EvaluateSheetRequest, limit int) ([]*dto.SheetReport, error) {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	reports := make([]*dto.SheetReport, len(reqs))
	for i, req := range reqs {
		g.Go(func() error {
			report, err := uc.Execute(gctx, req)
			if err != nil {
				return fmt.Errorf("%s: %w", req.SheetPath, err)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// ParseAssignment parses "name=value" into an assignment.
func ParseAssignment(input string) (dto.Assignment, error) {
	name, raw, ok := strings.Cut(input, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return dto.Assignment{}, apperrors.NewAssignmentError("", input, fmt.Errorf("expected name=value"))
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return dto.Assignment{}, apperrors.NewAssignmentError(name, input, err)
	}
	// Reports carry raw values; NaN and Inf cannot be encoded as JSON.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return dto.Assignment{}, apperrors.NewAssignmentError(name, input, fmt.Errorf("value must be a finite number"))
	}

	return dto.Assignment{Name: name, Value: v, Input: input}, nil
}

// ParseAssignments parses every input, stopping at the first error.
func ParseAssignments(inputs []string) ([]dto.Assignment, error) {
	out := make([]dto.Assignment, 0, len(inputs))
	for _, in := range inputs {
		a, err := ParseAssignment(in)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
