// Package container provides dependency injection for the application.
package container

import (
	"log/slog"

	"github.com/reglet-dev/attrkit/internal/application/ports"
	"github.com/reglet-dev/attrkit/internal/application/services"
	domainservices "github.com/reglet-dev/attrkit/internal/domain/services"
	"github.com/reglet-dev/attrkit/internal/infrastructure/config"
	"github.com/reglet-dev/attrkit/internal/infrastructure/output"
)

// Container holds all application dependencies.
type Container struct {
	sheetLoader          ports.SheetLoader
	formatterFactory     ports.ReportFormatterFactory
	evaluateSheetUseCase *services.EvaluateSheetUseCase
	logger               *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger *slog.Logger

	// SheetLoader overrides the file based loader
	SheetLoader ports.SheetLoader
}

// New creates a new dependency injection container.
func New(opts Options) *Container {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.SheetLoader == nil {
		opts.SheetLoader = config.NewSheetLoader()
	}

	builder := domainservices.NewSheetBuilder(domainservices.NewExpressionCompiler())

	return &Container{
		sheetLoader:          opts.SheetLoader,
		formatterFactory:     output.NewFormatterFactory(),
		evaluateSheetUseCase: services.NewEvaluateSheetUseCase(opts.SheetLoader, builder, opts.Logger),
		logger:               opts.Logger,
	}
}

// EvaluateSheetUseCase returns the evaluate sheet use case.
func (c *Container) EvaluateSheetUseCase() *services.EvaluateSheetUseCase {
	return c.evaluateSheetUseCase
}

// SheetLoader returns the sheet loader.
func (c *Container) SheetLoader() ports.SheetLoader {
	return c.sheetLoader
}

// FormatterFactory returns the output formatter factory.
func (c *Container) FormatterFactory() ports.ReportFormatterFactory {
	return c.formatterFactory
}

// Logger returns the logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
