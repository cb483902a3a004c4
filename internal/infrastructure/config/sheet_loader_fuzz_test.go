package config

import (
	"bytes"
	"strings"
	"testing"
)

// FuzzSheetLoading fuzzes YAML parsing for DoS and malformed input
// TARGETS: LoadSheetFromReader() via schema check and yaml.Decoder
func FuzzSheetLoading(f *testing.F) {
	seeds := []string{
		validSheetYAML,

		// Deeply nested
		strings.Repeat("nested:\n  ", 1000) + "value: 1",

		// Large attribute list
		"sheet:\n  name: s\n  version: 1.0.0\nattributes:\n" + strings.Repeat("  - name: x\n    validate: \"true\"\n    derive: value\n", 1000),

		// Invalid UTF-8
		"sheet:\n  name: \xff\xfe",

		// Circular reference
		`sheet: &anchor
  name: test
  ref: *anchor`,

		// Null bytes
		"sheet:\n  name: test\x00null",

		"",
		"   \n\t  \n",
		"sheet:\n  name: test\n    invalid_indent",
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("PANIC on input (len=%d): %v", len(data), r)
			}
		}()

		_, err := NewSheetLoader().LoadSheetFromReader(bytes.NewReader(data))
		_ = err // Only panics matter
	})
}
