package main

import (
	"encoding/json"
	"fmt"

	"github.com/reglet-dev/attrkit/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of attrkit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := version.Get().Report()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "attrkit version %s\n", report.Full())
			if report.Semver != "" {
				fmt.Fprintf(out, "semver: %s (%s)\n", report.Semver, report.Channel())
			} else {
				fmt.Fprintf(out, "semver: none (%s)\n", report.Channel())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print build information as JSON")
	return cmd
}
