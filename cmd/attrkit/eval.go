package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/reglet-dev/attrkit/internal/application/dto"
	"github.com/reglet-dev/attrkit/internal/application/ports"
	"github.com/reglet-dev/attrkit/internal/application/services"
	"github.com/reglet-dev/attrkit/internal/infrastructure/container"
	"github.com/spf13/cobra"
)

type evalOptions struct {
	OutputOptions
	root         *rootOptions
	assignments  []string
	allowRejects bool
	parallel     int
}

func newEvalCmd(root *rootOptions) *cobra.Command {
	opts := &evalOptions{root: root}

	cmd := &cobra.Command{
		Use:   "eval <sheet.yaml>...",
		Short: "Evaluate attribute sheets",
		Long: `Load attribute sheets, apply --set assignments in order and report
each attribute's raw and derived value. Several sheets are evaluated
concurrently and reported in argument order; assignments apply to every
sheet.

Assignments that violate an attribute's rule are reported and leave the
attribute unchanged. The command exits non-zero when any assignment was
rejected unless --allow-rejects is given.`,
		Example: `  attrkit eval geometry.yaml
  attrkit eval geometry.yaml --set radius=20 --format json
  attrkit eval geometry.yaml --set radius=-5 --allow-rejects
  attrkit eval sheets/*.yaml --parallel 8`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, opts, args)
		},
	}

	opts.RegisterFlags(cmd)
	cmd.Flags().StringArrayVar(&opts.assignments, "set", nil, "Assign name=value (repeatable, applied in order)")
	cmd.Flags().BoolVar(&opts.allowRejects, "allow-rejects", false, "Exit zero even when assignments are rejected")
	cmd.Flags().IntVar(&opts.parallel, "parallel", 4, "Maximum sheets evaluated at once (0 for no limit)")

	return cmd
}

func runEval(cmd *cobra.Command, opts *evalOptions, sheetPaths []string) error {
	format := opts.ResolveFormat(opts.root.v.GetString("format"))
	if err := ValidateFormat(format); err != nil {
		return err
	}

	assignments, err := services.ParseAssignments(opts.assignments)
	if err != nil {
		return err
	}

	c := container.New(container.Options{Logger: slog.Default()})

	reqs := make([]dto.EvaluateSheetRequest, 0, len(sheetPaths))
	for _, path := range sheetPaths {
		requestID := uuid.NewString()
		slog.Debug("evaluating sheet", "path", path, "request_id", requestID, "assignments", len(assignments))
		reqs = append(reqs, dto.EvaluateSheetRequest{
			SheetPath:   path,
			Assignments: assignments,
			Metadata:    dto.RequestMetadata{RequestID: requestID},
		})
	}

	var reports []*dto.SheetReport
	if len(reqs) == 1 {
		report, err := c.EvaluateSheetUseCase().Execute(cmd.Context(), reqs[0])
		if err != nil {
			return err
		}
		reports = []*dto.SheetReport{report}
	} else {
		reports, err = c.EvaluateSheetUseCase().ExecuteAll(cmd.Context(), reqs, opts.parallel)
		if err != nil {
			return err
		}
	}

	w, closeFn, err := opts.Writer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); cerr != nil {
			slog.Error("failed to close output", "error", cerr)
		}
	}()

	formatter, err := c.FormatterFactory().Create(format, w, ports.FormatterOptions{
		Indent: true,
		Color:  opts.root.v.GetBool("color") && !opts.NoColor && opts.OutFile == "",
	})
	if err != nil {
		return err
	}

	if err := formatter.FormatAll(reports); err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	rejected := 0
	for _, report := range reports {
		rejected += len(report.Rejected())
	}

	if rejected > 0 && !opts.allowRejects {
		return fmt.Errorf("%d assignment(s) rejected", rejected)
	}
	return nil
}
