package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"filmlog/internal/library"
	"filmlog/internal/query"
)

func newSortCommand(ctx *commandContext) *cobra.Command {
	var by string
	var descending bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "List movies sorted by title, year, or rating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := query.ParseSortField(by)
			if err != nil {
				return err
			}

			return ctx.withLibrary(func(lib *library.Library) error {
				sorted := query.Sort(lib.Movies(), field, descending)
				if asJSON {
					return writeJSON(cmd, sorted)
				}
				if len(sorted) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No movies in the collection")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderMovieTable(sorted))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&by, "by", "rating", "Sort field: title, year, or rating")
	cmd.Flags().BoolVar(&descending, "desc", false, "Sort in descending order")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
