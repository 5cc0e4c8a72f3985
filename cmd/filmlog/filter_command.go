package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"filmlog/internal/library"
	"filmlog/internal/query"
)

func newFilterCommand(ctx *commandContext) *cobra.Command {
	var minRating float64
	var fromYear, toYear int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "List movies satisfying rating and year bounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := query.Filters{}
			if cmd.Flags().Changed("min-rating") {
				if err := library.ValidateRating(minRating); err != nil {
					return err
				}
				filters.MinRating = &minRating
			}
			if cmd.Flags().Changed("from-year") {
				if err := library.ValidateYear(fromYear); err != nil {
					return err
				}
				filters.StartYear = &fromYear
			}
			if cmd.Flags().Changed("to-year") {
				if err := library.ValidateYear(toYear); err != nil {
					return err
				}
				filters.EndYear = &toYear
			}

			return ctx.withLibrary(func(lib *library.Library) error {
				matches := filters.Filter(lib.Movies())
				if asJSON {
					return writeJSON(cmd, matches)
				}
				if len(matches) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No movies matched the filter")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderMovieTable(matches))
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&minRating, "min-rating", 0, "Minimum rating (0-10)")
	cmd.Flags().IntVar(&fromYear, "from-year", 0, "Earliest release year")
	cmd.Flags().IntVar(&toYear, "to-year", 0, "Latest release year")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
