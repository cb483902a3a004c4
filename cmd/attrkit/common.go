package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

var validFormats = []string{"table", "json", "yaml", "sarif"}

// OutputOptions contains output flags shared by commands that emit reports.
type OutputOptions struct {
	Format  string
	OutFile string
	NoColor bool
}

// RegisterFlags adds output flags to a cobra command.
func (opts *OutputOptions) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&opts.Format, "format", "",
		"Output format: table, json, yaml, sarif (default from config, else table)")
	cmd.Flags().StringVarP(&opts.OutFile, "output", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false,
		"Disable colored table output")
}

// ResolveFormat returns the flag value, falling back to the configured one.
func (opts *OutputOptions) ResolveFormat(configured string) string {
	if opts.Format != "" {
		return opts.Format
	}
	if configured != "" {
		return configured
	}
	return "table"
}

// ValidateFormat checks a resolved format name.
func ValidateFormat(format string) error {
	if !slices.Contains(validFormats, format) {
		return fmt.Errorf("invalid format: %s (valid: table, json, yaml, sarif)", format)
	}
	return nil
}

// Writer opens the output destination. The returned close function is
// always safe to call.
func (opts *OutputOptions) Writer(stdout io.Writer) (io.Writer, func() error, error) {
	if opts.OutFile == "" {
		return stdout, func() error { return nil }, nil
	}

	f, err := os.Create(opts.OutFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}
