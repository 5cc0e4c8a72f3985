package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"filmlog/internal/library"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title>",
		Short: "Look up a movie on OMDb and add it to the collection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")

			source, err := ctx.metadataSource()
			if err != nil {
				return err
			}
			return ctx.withLibrary(func(lib *library.Library) error {
				movie, err := lib.Add(cmd.Context(), source, title)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%d), rated %.1f\n", movie.Title, movie.Year, movie.Rating)
				return nil
			})
		},
	}
}
