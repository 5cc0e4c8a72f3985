package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"filmlog/internal/library"
	"filmlog/internal/query"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show rating statistics for the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(func(lib *library.Library) error {
				summary := query.Stats(lib.Movies())
				if asJSON {
					return writeJSON(cmd, statsPayload(summary))
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Movies:  %d\n", summary.Count)
				if summary.Count == 0 {
					fmt.Fprintln(out, "Average: N/A")
					fmt.Fprintln(out, "Median:  N/A")
					return nil
				}
				fmt.Fprintf(out, "Average: %.2f\n", summary.Mean)
				fmt.Fprintf(out, "Median:  %.2f\n", summary.Median)
				fmt.Fprintf(out, "Best:    %s (%.1f)\n", joinTitles(summary.Best), summary.Best[0].Rating)
				fmt.Fprintf(out, "Worst:   %s (%.1f)\n", joinTitles(summary.Worst), summary.Worst[0].Rating)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

type statsJSON struct {
	Count   int      `json:"count"`
	Average *float64 `json:"average"`
	Median  *float64 `json:"median"`
	Best    []string `json:"best,omitempty"`
	Worst   []string `json:"worst,omitempty"`
}

func statsPayload(summary query.Summary) statsJSON {
	payload := statsJSON{Count: summary.Count}
	if summary.Count == 0 {
		return payload
	}
	mean, median := summary.Mean, summary.Median
	payload.Average = &mean
	payload.Median = &median
	for _, movie := range summary.Best {
		payload.Best = append(payload.Best, movie.Title)
	}
	for _, movie := range summary.Worst {
		payload.Worst = append(payload.Worst, movie.Title)
	}
	return payload
}

func joinTitles(movies []library.Movie) string {
	titles := make([]string, len(movies))
	for i, movie := range movies {
		titles[i] = movie.Title
	}
	return strings.Join(titles, ", ")
}
