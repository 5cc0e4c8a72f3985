package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"filmlog/internal/logging"
)

// Backend persists the full record set. Implementations live in
// internal/storage; Save replaces the stored set atomically.
type Backend interface {
	Load() ([]Movie, error)
	Save(movies []Movie) error
	Path() string
}

// MetadataSource resolves a title to full movie details. The OMDb client
// implements this; tests substitute a stub.
type MetadataSource interface {
	Lookup(ctx context.Context, title string) (Movie, error)
}

// Library is the in-memory record store. It is not safe for concurrent use;
// the CLI runs one operation per invocation and file backends hold an
// exclusive lock for the duration of a save.
type Library struct {
	backend Backend
	logger  *slog.Logger
	movies  []Movie
	index   map[string]int // Key(title) -> position in movies
}

// Open loads the record set from the backend. A missing file yields an empty
// library. Malformed content is reported and the library starts empty; the
// corrupt file on disk stays untouched until the first successful mutation
// overwrites it.
func Open(backend Backend, logger *slog.Logger) (*Library, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "library")

	movies, err := backend.Load()
	if err != nil {
		if !errors.Is(err, ErrFormat) {
			return nil, fmt.Errorf("load library %s: %w", backend.Path(), err)
		}
		logger.Warn("library file is malformed, starting with an empty collection",
			logging.String("path", backend.Path()),
			logging.Error(err))
		movies = nil
	}

	lib := &Library{
		backend: backend,
		logger:  logger,
		movies:  movies,
		index:   make(map[string]int, len(movies)),
	}
	for i, movie := range movies {
		lib.index[Key(movie.Title)] = i
	}

	logger.Debug("loaded library", logging.Int("movie_count", len(movies)), logging.String("path", backend.Path()))
	return lib, nil
}

// Add resolves title through the metadata source and inserts the result.
// Returns the stored record. Fails with ErrNotFound when the source has no
// match and ErrDuplicate when the resolved title is already present.
func (l *Library) Add(ctx context.Context, src MetadataSource, title string) (Movie, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Movie{}, fmt.Errorf("%w: title must not be empty", ErrValidation)
	}

	movie, err := src.Lookup(ctx, title)
	if err != nil {
		return Movie{}, err
	}
	if err := l.Insert(movie); err != nil {
		return Movie{}, err
	}
	return movie, nil
}

// Insert adds a fully-specified record, preserving insertion order.
func (l *Library) Insert(movie Movie) error {
	if err := movie.Validate(); err != nil {
		return err
	}
	key := Key(movie.Title)
	if _, exists := l.index[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, movie.Title)
	}

	l.movies = append(l.movies, movie)
	l.index[key] = len(l.movies) - 1
	if err := l.persist(); err != nil {
		return err
	}

	l.logger.Debug("added movie",
		logging.String("title", movie.Title),
		logging.Int("year", movie.Year),
		logging.Float64("rating", movie.Rating))
	return nil
}

// Delete removes the record matching title.
func (l *Library) Delete(title string) (Movie, error) {
	key := Key(title)
	pos, exists := l.index[key]
	if !exists {
		return Movie{}, fmt.Errorf("%w: %q", ErrNotFound, strings.TrimSpace(title))
	}

	removed := l.movies[pos]
	l.movies = append(l.movies[:pos], l.movies[pos+1:]...)
	delete(l.index, key)
	for i := pos; i < len(l.movies); i++ {
		l.index[Key(l.movies[i].Title)] = i
	}
	if err := l.persist(); err != nil {
		return Movie{}, err
	}

	l.logger.Debug("deleted movie", logging.String("title", removed.Title))
	return removed, nil
}

// UpdateRating replaces the rating on an existing record.
func (l *Library) UpdateRating(title string, rating float64) (Movie, error) {
	if err := ValidateRating(rating); err != nil {
		return Movie{}, err
	}
	pos, exists := l.index[Key(title)]
	if !exists {
		return Movie{}, fmt.Errorf("%w: %q", ErrNotFound, strings.TrimSpace(title))
	}

	l.movies[pos].Rating = rating
	if err := l.persist(); err != nil {
		return Movie{}, err
	}

	updated := l.movies[pos]
	l.logger.Debug("updated rating",
		logging.String("title", updated.Title),
		logging.Float64("rating", rating))
	return updated, nil
}

// Movies returns a snapshot of the collection in insertion order.
func (l *Library) Movies() []Movie {
	out := make([]Movie, len(l.movies))
	copy(out, l.movies)
	return out
}

// Get returns the record for title when present.
func (l *Library) Get(title string) (Movie, bool) {
	pos, exists := l.index[Key(title)]
	if !exists {
		return Movie{}, false
	}
	return l.movies[pos], true
}

// Len reports the number of stored records.
func (l *Library) Len() int {
	return len(l.movies)
}

// Path reports the backing file location.
func (l *Library) Path() string {
	return l.backend.Path()
}

func (l *Library) persist() error {
	if err := l.backend.Save(l.movies); err != nil {
		return fmt.Errorf("persist library %s: %w", l.backend.Path(), err)
	}
	return nil
}
