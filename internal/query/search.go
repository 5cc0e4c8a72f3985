package query

import (
	"strings"

	"filmlog/internal/library"
)

// Search returns the movies whose title contains substring, case-insensitive,
// preserving the original order.
func Search(movies []library.Movie, substring string) []library.Movie {
	needle := strings.ToLower(strings.TrimSpace(substring))
	if needle == "" {
		out := make([]library.Movie, len(movies))
		copy(out, movies)
		return out
	}

	matches := make([]library.Movie, 0, len(movies))
	for _, movie := range movies {
		if strings.Contains(strings.ToLower(movie.Title), needle) {
			matches = append(matches, movie)
		}
	}
	return matches
}
