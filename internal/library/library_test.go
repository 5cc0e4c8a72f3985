package library_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"filmlog/internal/library"
)

type memoryBackend struct {
	movies   []library.Movie
	saves    int
	saveFail error
	loadFail error
}

func (b *memoryBackend) Load() ([]library.Movie, error) {
	if b.loadFail != nil {
		return nil, b.loadFail
	}
	out := make([]library.Movie, len(b.movies))
	copy(out, b.movies)
	return out, nil
}

func (b *memoryBackend) Save(movies []library.Movie) error {
	if b.saveFail != nil {
		return b.saveFail
	}
	b.movies = make([]library.Movie, len(movies))
	copy(b.movies, movies)
	b.saves++
	return nil
}

func (b *memoryBackend) Path() string { return "memory" }

type stubSource struct {
	movies map[string]library.Movie
}

func (s stubSource) Lookup(_ context.Context, title string) (library.Movie, error) {
	movie, ok := s.movies[title]
	if !ok {
		return library.Movie{}, fmt.Errorf("%w: %q", library.ErrNotFound, title)
	}
	return movie, nil
}

func openLibrary(t *testing.T, seed ...library.Movie) (*library.Library, *memoryBackend) {
	t.Helper()
	backend := &memoryBackend{movies: seed}
	lib, err := library.Open(backend, nil)
	if err != nil {
		t.Fatalf("open library: %v", err)
	}
	return lib, backend
}

func TestOpenCorruptBackendStartsEmpty(t *testing.T) {
	backend := &memoryBackend{loadFail: fmt.Errorf("%w: parse memory: bad data", library.ErrFormat)}

	lib, err := library.Open(backend, nil)
	if err != nil {
		t.Fatalf("open with corrupt backend: %v", err)
	}
	if lib.Len() != 0 {
		t.Fatalf("expected empty library, got %d movies", lib.Len())
	}
	if backend.saves != 0 {
		t.Fatalf("open must not overwrite the corrupt file, saves=%d", backend.saves)
	}

	// The first successful mutation replaces the stored set.
	if err := lib.Insert(library.Movie{Title: "Brazil", Year: 1985, Rating: 7.9}); err != nil {
		t.Fatalf("insert after recovery: %v", err)
	}
	if backend.saves != 1 || len(backend.movies) != 1 {
		t.Fatalf("recovered library not persisted: saves=%d movies=%+v", backend.saves, backend.movies)
	}
}

func TestOpenNonFormatLoadErrorFails(t *testing.T) {
	backend := &memoryBackend{loadFail: errors.New("disk on fire")}

	if _, err := library.Open(backend, nil); err == nil {
		t.Fatal("expected open to fail on a non-format load error")
	}
}

func TestAddLooksUpAndPersists(t *testing.T) {
	lib, backend := openLibrary(t)
	src := stubSource{movies: map[string]library.Movie{
		"Inception": {Title: "Inception", Year: 2010, Rating: 8.8, PosterURL: "https://example.com/inception.jpg"},
	}}

	movie, err := lib.Add(context.Background(), src, "Inception")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if movie.Year != 2010 {
		t.Fatalf("unexpected year: %d", movie.Year)
	}
	if backend.saves != 1 {
		t.Fatalf("expected one save, got %d", backend.saves)
	}
	if len(backend.movies) != 1 || backend.movies[0].Title != "Inception" {
		t.Fatalf("backend not updated: %+v", backend.movies)
	}
}

func TestAddUnknownTitleReturnsNotFound(t *testing.T) {
	lib, backend := openLibrary(t)
	src := stubSource{movies: map[string]library.Movie{}}

	if _, err := lib.Add(context.Background(), src, "No Such Film"); !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if backend.saves != 0 {
		t.Fatalf("failed add must not persist, saves=%d", backend.saves)
	}
}

func TestAddDuplicateTitleRejected(t *testing.T) {
	lib, _ := openLibrary(t, library.Movie{Title: "Alien", Year: 1979, Rating: 8.5})
	src := stubSource{movies: map[string]library.Movie{
		"alien": {Title: "Alien", Year: 1979, Rating: 8.5},
	}}

	if _, err := lib.Add(context.Background(), src, "alien"); !errors.Is(err, library.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if lib.Len() != 1 {
		t.Fatalf("duplicate add changed library size: %d", lib.Len())
	}
}

func TestDeleteAbsentTitle(t *testing.T) {
	lib, _ := openLibrary(t)
	if _, err := lib.Delete("Ghost"); !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteReindexesRemainingMovies(t *testing.T) {
	lib, backend := openLibrary(t,
		library.Movie{Title: "A", Year: 2000, Rating: 7.0},
		library.Movie{Title: "B", Year: 2001, Rating: 7.5},
		library.Movie{Title: "C", Year: 2002, Rating: 8.0},
	)

	if _, err := lib.Delete("B"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	movies := lib.Movies()
	if len(movies) != 2 || movies[0].Title != "A" || movies[1].Title != "C" {
		t.Fatalf("unexpected order after delete: %+v", movies)
	}
	if _, err := lib.UpdateRating("C", 9.0); err != nil {
		t.Fatalf("update after delete: %v", err)
	}
	if backend.movies[1].Rating != 9.0 {
		t.Fatalf("reindex broken, backend state: %+v", backend.movies)
	}
}

func TestUpdateRatingValidatesBounds(t *testing.T) {
	lib, _ := openLibrary(t, library.Movie{Title: "Up", Year: 2009, Rating: 8.3})

	if _, err := lib.UpdateRating("Up", 11.0); !errors.Is(err, library.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := lib.UpdateRating("Up", -0.5); !errors.Is(err, library.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := lib.UpdateRating("Down", 5.0); !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	updated, err := lib.UpdateRating("up", 9.1)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Rating != 9.1 {
		t.Fatalf("rating not applied: %+v", updated)
	}
}

func TestMoviesReturnsSnapshot(t *testing.T) {
	lib, _ := openLibrary(t, library.Movie{Title: "Heat", Year: 1995, Rating: 8.3})

	movies := lib.Movies()
	movies[0].Rating = 1.0

	stored, ok := lib.Get("Heat")
	if !ok {
		t.Fatal("expected Heat to be present")
	}
	if stored.Rating != 8.3 {
		t.Fatalf("snapshot mutation leaked into library: %+v", stored)
	}
}

func TestInsertPreservesInsertionOrder(t *testing.T) {
	lib, _ := openLibrary(t)
	titles := []string{"Zodiac", "Arrival", "Moon"}
	for i, title := range titles {
		movie := library.Movie{Title: title, Year: 2000 + i, Rating: 7.0}
		if err := lib.Insert(movie); err != nil {
			t.Fatalf("insert %s: %v", title, err)
		}
	}

	movies := lib.Movies()
	for i, title := range titles {
		if movies[i].Title != title {
			t.Fatalf("order not preserved: %+v", movies)
		}
	}
}
