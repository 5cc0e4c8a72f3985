package query

import (
	"fmt"
	"math/rand"

	"filmlog/internal/library"
)

// Random picks a uniformly random movie from the collection.
func Random(movies []library.Movie) (library.Movie, error) {
	if len(movies) == 0 {
		return library.Movie{}, fmt.Errorf("%w: collection is empty", library.ErrNotFound)
	}
	return movies[rand.Intn(len(movies))], nil
}
