package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"filmlog/internal/library"
	"filmlog/internal/website"
)

func newWebsiteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "website",
		Short: "Generate the static website for the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			gen := website.NewGenerator(cfg.Website.OutputDir, cfg.Website.Title, logger)
			return ctx.withLibrary(func(lib *library.Library) error {
				indexPath, err := gen.Generate(lib.Movies())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Website generated at %s\n", indexPath)
				return nil
			})
		},
	}
}
