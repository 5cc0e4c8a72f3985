package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"filmlog/internal/library"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all movies in the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(func(lib *library.Library) error {
				movies := lib.Movies()
				if asJSON {
					return writeJSON(cmd, movies)
				}
				if len(movies) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No movies in the collection")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderMovieTable(movies))
				fmt.Fprintf(cmd.OutOrStdout(), "%d movie(s) in total\n", len(movies))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
