package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"filmlog/internal/library"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <title>",
		Aliases: []string{"delete", "rm"},
		Short:   "Remove a movie from the collection",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")

			return ctx.withLibrary(func(lib *library.Library) error {
				removed, err := lib.Delete(title)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s (%d)\n", removed.Title, removed.Year)
				return nil
			})
		},
	}
}
