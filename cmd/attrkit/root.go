package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/reglet-dev/attrkit/internal/domain/entities"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootOptions holds global flags and the configuration they resolve to.
type rootOptions struct {
	cfgFile string
	verbose bool
	v       *viper.Viper
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the application entry point.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "attrkit",
		Short: "Validated attributes with lazily derived values",
		Long: `attrkit evaluates validated attributes whose derived values are
computed lazily and cached until the raw value changes. Attributes can be
declared in YAML sheets with expression based rules and derivations, or
explored through the built in person, circle and vehicle models.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
			entities.ResetVehicleCount()
			return opts.initConfig()
		},
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.attrkit.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(
		newEvalCmd(opts),
		newCircleCmd(),
		newPersonCmd(),
		newVehicleCmd(),
		newInitCmd(),
		newVersionCmd(),
	)

	return cmd
}

// initConfig loads configuration from the config file and environment.
func (o *rootOptions) initConfig() error {
	o.v.SetDefault("format", "table")
	o.v.SetDefault("color", true)
	o.v.SetEnvPrefix("ATTRKIT")
	o.v.AutomaticEnv()

	if o.cfgFile != "" {
		o.v.SetConfigFile(o.cfgFile)
		if err := o.v.ReadInConfig(); err != nil {
			return err
		}
		slog.Debug("using config file", "file", o.v.ConfigFileUsed())
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		slog.Debug("no home directory, skipping config file", "error", err)
		return nil
	}

	o.v.AddConfigPath(home)
	o.v.SetConfigType("yaml")
	o.v.SetConfigName(".attrkit")

	if err := o.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	slog.Debug("using config file", "file", o.v.ConfigFileUsed())
	return nil
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
