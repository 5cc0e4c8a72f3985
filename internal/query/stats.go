package query

import (
	"sort"

	"filmlog/internal/library"
)

// Summary aggregates rating statistics over the collection. Mean and Median
// are meaningless when Count is zero; callers render them as N/A.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	Best   []library.Movie
	Worst  []library.Movie
}

// Stats computes the rating summary. Best and Worst list every movie tied at
// the highest and lowest rating, in original order.
func Stats(movies []library.Movie) Summary {
	summary := Summary{Count: len(movies)}
	if len(movies) == 0 {
		return summary
	}

	ratings := make([]float64, len(movies))
	var total float64
	for i, movie := range movies {
		ratings[i] = movie.Rating
		total += movie.Rating
	}
	summary.Mean = total / float64(len(movies))

	sort.Float64s(ratings)
	mid := len(ratings) / 2
	if len(ratings)%2 == 0 {
		summary.Median = (ratings[mid-1] + ratings[mid]) / 2
	} else {
		summary.Median = ratings[mid]
	}

	best, worst := ratings[len(ratings)-1], ratings[0]
	for _, movie := range movies {
		if movie.Rating == best {
			summary.Best = append(summary.Best, movie)
		}
		if movie.Rating == worst {
			summary.Worst = append(summary.Worst, movie)
		}
	}
	return summary
}
