// Package config provides infrastructure for loading sheet definitions.
// This package handles YAML parsing, schema checks and file I/O.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	apperrors "github.com/reglet-dev/attrkit/internal/application/errors"
	"github.com/reglet-dev/attrkit/internal/domain/entities"
)

// maxSheetSize bounds how much of a sheet file is read.
const maxSheetSize = 1 << 20

// SheetLoader handles loading sheets from YAML files.
type SheetLoader struct{}

// NewSheetLoader creates a new sheet loader.
func NewSheetLoader() *SheetLoader {
	return &SheetLoader{}
}

// LoadSheet loads and parses a sheet from a YAML file.
func (l *SheetLoader) LoadSheet(path string) (*entities.Sheet, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	root, err := os.OpenRoot(filepath.Dir(path))
	if err != nil {
		return nil, apperrors.NewConfigurationError("sheet", "failed to open sheet directory", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(filepath.Base(path))
	if err != nil {
		return nil, apperrors.NewConfigurationError("sheet", "failed to open sheet", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return l.LoadSheetFromReader(file)
}

// LoadSheetFromReader loads a sheet from an io.Reader.
func (l *SheetLoader) LoadSheetFromReader(r io.Reader) (*entities.Sheet, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSheetSize+1))
	if err != nil {
		return nil, apperrors.NewConfigurationError("sheet", "failed to read sheet", err)
	}
	if len(data) > maxSheetSize {
		return nil, apperrors.NewConfigurationError("sheet", fmt.Sprintf("sheet exceeds %d bytes", maxSheetSize), nil)
	}

	if err := validateDocument(data); err != nil {
		return nil, apperrors.NewConfigurationError("sheet", "invalid sheet document", err)
	}

	var sheet entities.Sheet
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&sheet); err != nil {
		return nil, apperrors.NewConfigurationError("sheet", "failed to decode sheet YAML", err)
	}

	if err := sheet.Validate(); err != nil {
		return nil, apperrors.NewConfigurationError("sheet", "sheet validation failed", err)
	}

	return &sheet, nil
}

// WriteSheet encodes a sheet as YAML.
func WriteSheet(w io.Writer, sheet *entities.Sheet) error {
	if err := sheet.Validate(); err != nil {
		return err
	}

	encoder := yaml.NewEncoder(w, yaml.Indent(2))
	if err := encoder.Encode(sheet); err != nil {
		return fmt.Errorf("failed to encode sheet: %w", err)
	}
	return encoder.Close()
}
