package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"filmlog/internal/library"
	"filmlog/internal/query"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <substring>",
		Short: "Find movies whose title contains a substring",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			needle := strings.Join(args, " ")

			return ctx.withLibrary(func(lib *library.Library) error {
				matches := query.Search(lib.Movies(), needle)
				if asJSON {
					return writeJSON(cmd, matches)
				}
				if len(matches) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "No movies matching %q\n", needle)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderMovieTable(matches))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
