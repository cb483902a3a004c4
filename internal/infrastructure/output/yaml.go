package output

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/attrkit/internal/application/dto"
)

// yamlDocumentSeparator starts every document after the first.
const yamlDocumentSeparator = "---\n"

// YAMLFormatter formats sheet reports as a YAML stream, one document per
// sheet.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the report as a single YAML document.
func (f *YAMLFormatter) Format(report *dto.SheetReport) error {
	return f.FormatAll([]*dto.SheetReport{report})
}

// FormatAll writes each report as its own document. Readers that expect a
// single sheet see a plain mapping when there is only one.
func (f *YAMLFormatter) FormatAll(reports []*dto.SheetReport) error {
	for i, report := range reports {
		data, err := yaml.MarshalWithOptions(report, yaml.Indent(2))
		if err != nil {
			return fmt.Errorf("failed to encode report for sheet %s: %w", report.SheetName, err)
		}
		if len(data) > 0 && data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}

		if i > 0 {
			if _, err := io.WriteString(f.writer, yamlDocumentSeparator); err != nil {
				return err
			}
		}
		if _, err := f.writer.Write(data); err != nil {
			return err
		}
	}
	return nil
}
