package main

import (
	"fmt"

	"github.com/reglet-dev/attrkit/internal/domain/entities"
	"github.com/spf13/cobra"
)

func newVehicleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Classify and register vehicles",
	}

	cmd.AddCommand(newVehicleClassifyCmd(), newVehicleRegisterCmd())
	return cmd
}

func powertrainFlag(electric bool) entities.Powertrain {
	if electric {
		return entities.PowertrainElectric
	}
	return entities.PowertrainCombustion
}

func newVehicleClassifyCmd() *cobra.Command {
	var electric bool

	cmd := &cobra.Command{
		Use:   "classify <car|truck|motorcycle>",
		Short: "Describe a vehicle type",
		Example: `  attrkit vehicle classify car
  attrkit vehicle classify truck --electric`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := entities.ClassifyVehicle(powertrainFlag(electric), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), desc)
			return nil
		},
	}

	cmd.Flags().BoolVar(&electric, "electric", false, "Classify as an electric vehicle")
	return cmd
}

func newVehicleRegisterCmd() *cobra.Command {
	var (
		manufacturer string
		models       []string
		year         int
		electric     bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register one vehicle per --model and report the running count",
		Example: `  attrkit vehicle register --manufacturer Volvo --model XC40 --model EX30 --year 2024 --electric`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, model := range models {
				v, err := entities.NewVehicle(manufacturer, model, year, powertrainFlag(electric))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s  %s %s (%d, %s)\n", v.ID(), v.Manufacturer(), v.Model(), v.Year(), v.Powertrain())
			}
			fmt.Fprintf(out, "vehicles registered: %d\n", entities.VehicleCount())
			return nil
		},
	}

	cmd.Flags().StringVar(&manufacturer, "manufacturer", "", "Vehicle manufacturer")
	cmd.Flags().StringArrayVar(&models, "model", nil, "Vehicle model (repeatable)")
	cmd.Flags().IntVar(&year, "year", 0, "Model year")
	cmd.Flags().BoolVar(&electric, "electric", false, "Register electric vehicles")
	_ = cmd.MarkFlagRequired("manufacturer")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}
