package main

import (
	"fmt"

	"github.com/reglet-dev/attrkit/internal/domain/entities"
	"github.com/spf13/cobra"
)

func newCircleCmd() *cobra.Command {
	var radius, diameter float64

	cmd := &cobra.Command{
		Use:   "circle",
		Short: "Compute a circle's area from its radius or diameter",
		Example: `  attrkit circle --radius 10
  attrkit circle --diameter 40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := entities.NewCircle(radius)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("diameter") {
				if err := c.SetDiameter(diameter); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "radius:   %g\n", c.Radius())
			fmt.Fprintf(out, "diameter: %g\n", c.Diameter())
			fmt.Fprintf(out, "area:     %.3f\n", c.Area())
			return nil
		},
	}

	cmd.Flags().Float64Var(&radius, "radius", 1, "Circle radius (must be positive)")
	cmd.Flags().Float64Var(&diameter, "diameter", 0, "Circle diameter, overrides --radius")
	cmd.MarkFlagsMutuallyExclusive("radius", "diameter")

	return cmd
}
