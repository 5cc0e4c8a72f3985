package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"filmlog/internal/library"
	"filmlog/internal/query"
)

func newRandomCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Pick a random movie for tonight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(func(lib *library.Library) error {
				movie, err := query.Random(lib.Movies())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Your movie for tonight: %s (%d), rated %.1f\n", movie.Title, movie.Year, movie.Rating)
				return nil
			})
		},
	}
}
