// Package output renders sheet reports for humans and machines.
package output

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/reglet-dev/attrkit/internal/application/ports"
)

// supportedFormats is ordered as shown in help and error text.
var supportedFormats = []string{"table", "json", "yaml", "sarif"}

// FormatterFactory implements ports.ReportFormatterFactory.
type FormatterFactory struct{}

// NewFormatterFactory creates a new formatter factory.
func NewFormatterFactory() *FormatterFactory {
	return &FormatterFactory{}
}

// Create returns a formatter for the given format name. Names are matched
// case-insensitively. Colour only applies to tables; indentation only to JSON.
func (f *FormatterFactory) Create(
	format string,
	writer io.Writer,
	options ports.FormatterOptions,
) (ports.ReportFormatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "table":
		tf := NewTableFormatter(writer)
		tf.EnableColor = options.Color
		return tf, nil
	case "json":
		return NewJSONFormatter(writer, options.Indent), nil
	case "yaml":
		return NewYAMLFormatter(writer), nil
	case "sarif":
		return NewSARIFFormatter(writer), nil
	default:
		return nil, fmt.Errorf(
			"unknown format: %s (supported: %s)",
			format, strings.Join(supportedFormats, ", "),
		)
	}
}

// SupportedFormats returns the available format names.
func (f *FormatterFactory) SupportedFormats() []string {
	return slices.Clone(supportedFormats)
}
