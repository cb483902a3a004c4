package output

import (
	"encoding/json"
	"io"

	"github.com/reglet-dev/attrkit/internal/application/dto"
)

// JSONFormatter formats sheet reports as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{writer: w, indent: indent}
}

// Format writes the report as a JSON object.
func (f *JSONFormatter) Format(report *dto.SheetReport) error {
	return f.encode(report)
}

// FormatAll writes a single report as an object and several as an array.
func (f *JSONFormatter) FormatAll(reports []*dto.SheetReport) error {
	if len(reports) == 1 {
		return f.encode(reports[0])
	}
	return f.encode(reports)
}

func (f *JSONFormatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	if f.indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}
