package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/reglet-dev/attrkit/internal/domain/entities"
	"github.com/reglet-dev/attrkit/internal/domain/services"
	"github.com/reglet-dev/attrkit/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

// InitOptions describes the single attribute sheet scaffolded by init.
type InitOptions struct {
	Name          string
	Version       string
	Attribute     string
	Description   string
	Validate      string
	Derive        string
	Initial       string
	OutputPath    string
	NoInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &InitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new attribute sheet",
		Long: `Create an attribute sheet with one attribute. Without --no-interactive
the command prompts for every value not given as a flag. The generated
expressions are compiled before the sheet is written.`,
		Example: `  attrkit init -o geometry.yaml
  attrkit init --no-interactive --name geometry --attribute radius \
    --validate "value > 0" --derive "pi * value ** 2" --initial 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Sheet name")
	cmd.Flags().StringVar(&opts.Version, "sheet-version", "1.0.0", "Sheet version (X.Y.Z)")
	cmd.Flags().StringVar(&opts.Attribute, "attribute", "", "Attribute name")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Attribute description")
	cmd.Flags().StringVar(&opts.Validate, "validate", "", "Validation expression over value")
	cmd.Flags().StringVar(&opts.Derive, "derive", "", "Derivation expression over value")
	cmd.Flags().StringVar(&opts.Initial, "initial", "", "Initial raw value")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&opts.NoInteractive, "no-interactive", false, "Disable prompts and use flags only")

	return cmd
}

func runInit(cmd *cobra.Command, opts *InitOptions) error {
	if !opts.NoInteractive {
		if err := promptInit(opts); err != nil {
			return err
		}
	}

	sheet, err := opts.sheet()
	if err != nil {
		return err
	}

	// Compile expressions and check the initial value before writing.
	if _, err := services.NewSheetBuilder(nil).Build(sheet); err != nil {
		return err
	}

	out := OutputOptions{OutFile: opts.OutputPath}
	w, closeFn, err := out.Writer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := config.WriteSheet(w, sheet); err != nil {
		_ = closeFn()
		return err
	}
	if err := closeFn(); err != nil {
		return err
	}

	if opts.OutputPath != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Sheet written to %s\n", opts.OutputPath)
	}
	return nil
}

func promptInit(opts *InitOptions) error {
	var fields []huh.Field

	if opts.Name == "" {
		fields = append(fields, huh.NewInput().
			Title("Sheet name").
			Value(&opts.Name).
			Validate(requireValue("sheet name")))
	}
	if opts.Attribute == "" {
		fields = append(fields, huh.NewInput().
			Title("Attribute name").
			Value(&opts.Attribute).
			Validate(requireValue("attribute name")))
	}
	if opts.Validate == "" {
		fields = append(fields, huh.NewInput().
			Title("Validation expression").
			Description("Boolean over value, e.g. value > 0").
			Value(&opts.Validate).
			Validate(requireValue("validation expression")))
	}
	if opts.Derive == "" {
		fields = append(fields, huh.NewInput().
			Title("Derivation expression").
			Description("Number over value, e.g. pi * value ** 2").
			Value(&opts.Derive).
			Validate(requireValue("derivation expression")))
	}
	if opts.Initial == "" {
		fields = append(fields, huh.NewInput().
			Title("Initial value").
			Value(&opts.Initial).
			Validate(func(s string) error {
				_, err := strconv.ParseFloat(s, 64)
				return err
			}))
	}

	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

func requireValue(what string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

// sheet assembles and validates the sheet described by the options.
func (opts *InitOptions) sheet() (*entities.Sheet, error) {
	initial := 0.0
	if opts.Initial != "" {
		v, err := strconv.ParseFloat(opts.Initial, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid initial value %q: %w", opts.Initial, err)
		}
		initial = v
	}

	sheet := &entities.Sheet{
		Metadata: entities.SheetMetadata{
			Name:    opts.Name,
			Version: opts.Version,
		},
		Attributes: []entities.AttributeDefinition{{
			Name:         opts.Attribute,
			Description:  opts.Description,
			Initial:      initial,
			ValidateExpr: opts.Validate,
			DeriveExpr:   opts.Derive,
		}},
	}

	if err := sheet.Validate(); err != nil {
		return nil, err
	}
	return sheet, nil
}
