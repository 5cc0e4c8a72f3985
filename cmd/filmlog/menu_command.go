package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"filmlog/internal/library"
	"filmlog/internal/query"
	"filmlog/internal/website"
)

var menuEntries = []string{
	"Exit",
	"List movies",
	"Add movie",
	"Delete movie",
	"Update movie rating",
	"Stats",
	"Random movie",
	"Search movie",
	"Movies sorted by rating",
	"Movies sorted by year",
	"Filter movies",
	"Generate website",
}

func newMenuCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(func(lib *library.Library) error {
				session := &menuSession{
					ctx: ctx,
					cmd: cmd,
					lib: lib,
					in:  bufio.NewReader(cmd.InOrStdin()),
					out: cmd.OutOrStdout(),
				}
				return session.run()
			})
		},
	}
}

type menuSession struct {
	ctx *commandContext
	cmd *cobra.Command
	lib *library.Library
	in  *bufio.Reader
	out io.Writer
}

func (s *menuSession) run() error {
	fmt.Fprintln(s.out, "********** My Movies Database **********")
	for {
		s.printMenu()
		choice, err := s.promptChoice()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if choice == 0 {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
		if err := s.dispatch(choice); err != nil {
			// Keep the session alive; a failed lookup or a duplicate title
			// should not end the menu.
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func (s *menuSession) printMenu() {
	fmt.Fprintln(s.out, "\nMenu:")
	for i, entry := range menuEntries {
		fmt.Fprintf(s.out, "%d. %s\n", i, entry)
	}
	fmt.Fprintln(s.out)
}

func (s *menuSession) dispatch(choice int) error {
	switch choice {
	case 1:
		return s.listMovies()
	case 2:
		return s.addMovie()
	case 3:
		return s.deleteMovie()
	case 4:
		return s.updateMovie()
	case 5:
		return s.showStats()
	case 6:
		return s.randomMovie()
	case 7:
		return s.searchMovies()
	case 8:
		return s.sortedBy(query.SortByRating, true)
	case 9:
		return s.sortedByYear()
	case 10:
		return s.filterMovies()
	case 11:
		return s.generateWebsite()
	default:
		fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		return nil
	}
}

func (s *menuSession) listMovies() error {
	movies := s.lib.Movies()
	if len(movies) == 0 {
		fmt.Fprintln(s.out, "No movies found.")
		return nil
	}
	fmt.Fprintf(s.out, "%d movies in total:\n", len(movies))
	fmt.Fprintln(s.out, renderMovieTable(movies))
	return nil
}

func (s *menuSession) addMovie() error {
	title, err := s.promptLine("Enter movie title: ")
	if err != nil {
		return err
	}
	source, err := s.ctx.metadataSource()
	if err != nil {
		return err
	}
	movie, err := s.lib.Add(s.cmd.Context(), source, title)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Added %s (%d), rated %.1f\n", movie.Title, movie.Year, movie.Rating)
	return nil
}

func (s *menuSession) deleteMovie() error {
	title, err := s.promptLine("Enter movie title: ")
	if err != nil {
		return err
	}
	removed, err := s.lib.Delete(title)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Removed %s (%d)\n", removed.Title, removed.Year)
	return nil
}

func (s *menuSession) updateMovie() error {
	title, err := s.promptLine("Enter movie title: ")
	if err != nil {
		return err
	}
	rating, err := s.promptFloat("Enter new rating (0-10): ")
	if err != nil {
		return err
	}
	updated, err := s.lib.UpdateRating(title, rating)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Updated %s to %.1f\n", updated.Title, updated.Rating)
	return nil
}

func (s *menuSession) showStats() error {
	summary := query.Stats(s.lib.Movies())
	fmt.Fprintf(s.out, "Movies:  %d\n", summary.Count)
	if summary.Count == 0 {
		fmt.Fprintln(s.out, "Average: N/A")
		fmt.Fprintln(s.out, "Median:  N/A")
		return nil
	}
	fmt.Fprintf(s.out, "Average: %.2f\n", summary.Mean)
	fmt.Fprintf(s.out, "Median:  %.2f\n", summary.Median)
	fmt.Fprintf(s.out, "Best:    %s (%.1f)\n", joinTitles(summary.Best), summary.Best[0].Rating)
	fmt.Fprintf(s.out, "Worst:   %s (%.1f)\n", joinTitles(summary.Worst), summary.Worst[0].Rating)
	return nil
}

func (s *menuSession) randomMovie() error {
	movie, err := query.Random(s.lib.Movies())
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Your movie for tonight: %s (%d), rated %.1f\n", movie.Title, movie.Year, movie.Rating)
	return nil
}

func (s *menuSession) searchMovies() error {
	needle, err := s.promptLine("Enter part of a movie title: ")
	if err != nil {
		return err
	}
	matches := query.Search(s.lib.Movies(), needle)
	if len(matches) == 0 {
		fmt.Fprintf(s.out, "No movies matching %q\n", needle)
		return nil
	}
	fmt.Fprintln(s.out, renderMovieTable(matches))
	return nil
}

func (s *menuSession) sortedBy(field query.SortField, descending bool) error {
	sorted := query.Sort(s.lib.Movies(), field, descending)
	if len(sorted) == 0 {
		fmt.Fprintln(s.out, "No movies found.")
		return nil
	}
	fmt.Fprintln(s.out, renderMovieTable(sorted))
	return nil
}

func (s *menuSession) sortedByYear() error {
	latestFirst, err := s.promptYesNo("Latest movies first? (y/n): ")
	if err != nil {
		return err
	}
	return s.sortedBy(query.SortByYear, latestFirst)
}

func (s *menuSession) filterMovies() error {
	filters := query.Filters{}
	if rating, ok, err := s.promptOptionalFloat("Minimum rating (blank for none): "); err != nil {
		return err
	} else if ok {
		if err := library.ValidateRating(rating); err != nil {
			return err
		}
		filters.MinRating = &rating
	}
	if year, ok, err := s.promptOptionalInt("Start year (blank for none): "); err != nil {
		return err
	} else if ok {
		if err := library.ValidateYear(year); err != nil {
			return err
		}
		filters.StartYear = &year
	}
	if year, ok, err := s.promptOptionalInt("End year (blank for none): "); err != nil {
		return err
	} else if ok {
		if err := library.ValidateYear(year); err != nil {
			return err
		}
		filters.EndYear = &year
	}

	matches := filters.Filter(s.lib.Movies())
	if len(matches) == 0 {
		fmt.Fprintln(s.out, "No movies found after filtering.")
		return nil
	}
	fmt.Fprintln(s.out, renderMovieTable(matches))
	return nil
}

func (s *menuSession) generateWebsite() error {
	cfg, err := s.ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := s.ctx.ensureLogger()
	if err != nil {
		return err
	}
	gen := website.NewGenerator(cfg.Website.OutputDir, cfg.Website.Title, logger)
	indexPath, err := gen.Generate(s.lib.Movies())
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Website generated at %s\n", indexPath)
	return nil
}

func (s *menuSession) promptChoice() (int, error) {
	for {
		line, err := s.promptRaw(fmt.Sprintf("Enter choice (0-%d): ", len(menuEntries)-1))
		if err != nil {
			return 0, err
		}
		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && choice >= 0 && choice < len(menuEntries) {
			return choice, nil
		}
		fmt.Fprintln(s.out, "Invalid input. Please enter a valid option.")
	}
}

func (s *menuSession) promptLine(prompt string) (string, error) {
	for {
		line, err := s.promptRaw(prompt)
		if err != nil {
			return "", err
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, nil
		}
		fmt.Fprintln(s.out, "Invalid input. Please try again.")
	}
}

func (s *menuSession) promptFloat(prompt string) (float64, error) {
	for {
		line, err := s.promptRaw(prompt)
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if convErr == nil {
			return value, nil
		}
		fmt.Fprintln(s.out, "Invalid number. Please try again.")
	}
}

func (s *menuSession) promptOptionalFloat(prompt string) (float64, bool, error) {
	line, err := s.promptRaw(prompt)
	if err != nil {
		return 0, false, err
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return 0, false, nil
	}
	value, convErr := strconv.ParseFloat(trimmed, 64)
	if convErr != nil {
		return 0, false, fmt.Errorf("invalid number %q", trimmed)
	}
	return value, true, nil
}

func (s *menuSession) promptOptionalInt(prompt string) (int, bool, error) {
	line, err := s.promptRaw(prompt)
	if err != nil {
		return 0, false, err
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return 0, false, nil
	}
	value, convErr := strconv.Atoi(trimmed)
	if convErr != nil {
		return 0, false, fmt.Errorf("invalid year %q", trimmed)
	}
	return value, true, nil
}

func (s *menuSession) promptYesNo(prompt string) (bool, error) {
	for {
		line, err := s.promptRaw(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(s.out, "Please answer y or n.")
	}
}

// promptRaw prints the prompt and reads one line. io.EOF propagates so the
// session can end cleanly when input runs out.
func (s *menuSession) promptRaw(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && strings.TrimSpace(line) != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}
