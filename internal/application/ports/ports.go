// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"io"

	"github.com/reglet-dev/attrkit/internal/application/dto"
	"github.com/reglet-dev/attrkit/internal/domain/entities"
)

// SheetLoader loads sheets from storage.
type SheetLoader interface {
	LoadSheet(path string) (*entities.Sheet, error)
}

// ReportFormatter writes sheet reports.
type ReportFormatter interface {
	Format(report *dto.SheetReport) error

	// FormatAll writes several reports as one valid document of the format
	FormatAll(reports []*dto.SheetReport) error
}

// FormatterOptions tunes formatter output.
type FormatterOptions struct {
	// Indent enables pretty printing where the format supports it
	Indent bool

	// Color enables ANSI colours in table output
	Color bool
}

// ReportFormatterFactory creates formatters by name.
type ReportFormatterFactory interface {
	Create(format string, w io.Writer, options FormatterOptions) (ReportFormatter, error)
	SupportedFormats() []string
}
