package main

import (
	"fmt"

	"github.com/reglet-dev/attrkit/internal/domain/entities"
	"github.com/spf13/cobra"
)

type personOptions struct {
	fullName  string
	birthYear int
	salary    int64
	bonus     float64
}

func newPersonCmd() *cobra.Command {
	opts := &personOptions{}

	cmd := &cobra.Command{
		Use:   "person",
		Short: "Show a person's derived name, age and salary",
		Example: `  attrkit person --full-name "Ada Lovelace" --birth-year 1990
  attrkit person --full-name "Ada Lovelace" --salary 50000 --bonus 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPerson(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.fullName, "full-name", "", "First and last name (required)")
	cmd.Flags().IntVar(&opts.birthYear, "birth-year", 0, "Year of birth")
	cmd.Flags().Int64Var(&opts.salary, "salary", 0, "Base salary")
	cmd.Flags().Float64Var(&opts.bonus, "bonus", 0, "Bonus percentage between 0 and 100")
	_ = cmd.MarkFlagRequired("full-name")

	return cmd
}

func runPerson(cmd *cobra.Command, opts *personOptions) error {
	p := entities.NewPerson("", "")
	if err := p.SetFullName(opts.fullName); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "name:   %s\n", p.FullName())

	if cmd.Flags().Changed("birth-year") {
		if err := p.SetBirthYear(opts.birthYear); err != nil {
			return err
		}
		age, _ := p.Age()
		fmt.Fprintf(out, "age:    %d\n", age)
	}

	if cmd.Flags().Changed("salary") || cmd.Flags().Changed("bonus") {
		if err := p.SetSalary(opts.salary, opts.bonus); err != nil {
			return err
		}
		fmt.Fprintf(out, "salary: %.2f\n", p.Salary())
	}

	return nil
}
