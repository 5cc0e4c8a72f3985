package query

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"filmlog/internal/library"
)

// SortField names a sortable movie attribute.
type SortField string

const (
	SortByTitle  SortField = "title"
	SortByYear   SortField = "year"
	SortByRating SortField = "rating"
)

// ParseSortField maps a CLI value to a SortField.
func ParseSortField(value string) (SortField, error) {
	switch SortField(strings.ToLower(strings.TrimSpace(value))) {
	case SortByTitle:
		return SortByTitle, nil
	case SortByYear:
		return SortByYear, nil
	case SortByRating:
		return SortByRating, nil
	default:
		return "", fmt.Errorf("unknown sort field %q (want title, year, or rating)", value)
	}
}

// Sort returns a copy of movies stably sorted by field. Titles compare
// case-insensitively using English collation rules.
func Sort(movies []library.Movie, field SortField, descending bool) []library.Movie {
	out := make([]library.Movie, len(movies))
	copy(out, movies)

	var less func(i, j int) bool
	switch field {
	case SortByYear:
		less = func(i, j int) bool { return out[i].Year < out[j].Year }
	case SortByRating:
		less = func(i, j int) bool { return out[i].Rating < out[j].Rating }
	default:
		coll := collate.New(language.English, collate.IgnoreCase)
		less = func(i, j int) bool { return coll.CompareString(out[i].Title, out[j].Title) < 0 }
	}
	if descending {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}

	sort.SliceStable(out, less)
	return out
}
