package query

import "filmlog/internal/library"

// Filters holds optional bounds; nil fields are not applied.
type Filters struct {
	MinRating *float64
	StartYear *int
	EndYear   *int
}

// Filter returns the movies satisfying every provided bound, in original
// order.
func (f Filters) Filter(movies []library.Movie) []library.Movie {
	out := make([]library.Movie, 0, len(movies))
	for _, movie := range movies {
		if f.MinRating != nil && movie.Rating < *f.MinRating {
			continue
		}
		if f.StartYear != nil && movie.Year < *f.StartYear {
			continue
		}
		if f.EndYear != nil && movie.Year > *f.EndYear {
			continue
		}
		out = append(out, movie)
	}
	return out
}
