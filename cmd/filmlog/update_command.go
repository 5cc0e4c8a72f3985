package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"filmlog/internal/library"
)

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	var rating float64

	cmd := &cobra.Command{
		Use:   "update <title>",
		Short: "Update the rating on an existing movie",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")

			return ctx.withLibrary(func(lib *library.Library) error {
				updated, err := lib.UpdateRating(title, rating)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s to %.1f\n", updated.Title, updated.Rating)
				return nil
			})
		},
	}

	cmd.Flags().Float64VarP(&rating, "rating", "r", 0, "New rating between 0 and 10")
	_ = cmd.MarkFlagRequired("rating")
	return cmd
}
