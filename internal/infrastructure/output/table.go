package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/reglet-dev/attrkit/internal/application/dto"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// TableFormatter formats sheet reports as a human-readable table.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Format writes the report as a table.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Format(report *dto.SheetReport) error {
	rule := f.colorize(strings.Repeat("─", 60), colorGray)

	fmt.Fprintln(f.writer, rule)
	fmt.Fprintf(f.writer, "Sheet: %s (v%s)\n", f.colorize(report.SheetName, colorBold), report.SheetVersion)
	if report.SheetPath != "" {
		fmt.Fprintf(f.writer, "Path: %s\n", report.SheetPath)
	}
	if !report.Metadata.ProcessedAt.IsZero() {
		fmt.Fprintf(f.writer, "Evaluated: %s\n", report.Metadata.ProcessedAt.Format(time.RFC3339))
	}
	fmt.Fprintln(f.writer)

	if len(report.Assignments) > 0 {
		fmt.Fprintln(f.writer, f.colorize("Assignments:", colorBold))
		for _, a := range report.Assignments {
			f.formatAssignment(a)
		}
		fmt.Fprintln(f.writer)
	}

	fmt.Fprintln(f.writer, f.colorize("Attributes:", colorBold))
	fmt.Fprintln(f.writer, rule)
	fmt.Fprintf(f.writer, "%-20s %18s %18s\n", "NAME", "RAW", "DERIVED")
	for _, attr := range report.Attributes {
		fmt.Fprintf(f.writer, "%-20s %18s %18s\n", attr.Name, formatNumber(attr.Raw), formatDerived(attr.Derived))
	}
	fmt.Fprintln(f.writer, rule)

	return nil
}

// FormatAll writes one table per report, separated by a blank line.
func (f *TableFormatter) FormatAll(reports []*dto.SheetReport) error {
	for i, report := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(f.writer); err != nil {
				return err
			}
		}
		if err := f.Format(report); err != nil {
			return err
		}
	}
	return nil
}

// formatAssignment formats a single assignment outcome.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatAssignment(a dto.AssignmentOutcome) {
	if a.Applied {
		fmt.Fprintf(f.writer, "  %s %s = %s\n", f.colorize("✓", colorGreen), a.Attribute, formatNumber(a.Value))
		return
	}
	fmt.Fprintf(f.writer, "  %s %s = %s\n", f.colorize("✗", colorRed), a.Attribute, formatNumber(a.Value))
	fmt.Fprintf(f.writer, "      %s\n", a.Error)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

func formatDerived(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return formatNumber(*v)
}
