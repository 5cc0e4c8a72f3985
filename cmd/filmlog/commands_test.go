package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"filmlog/internal/library"
	"filmlog/internal/testsupport"
)

func seedMovies(t *testing.T, env cliTestEnv) {
	t.Helper()
	testsupport.SeedLibrary(t, env.libraryPath, []library.Movie{
		{Title: "The Matrix", Year: 1999, Rating: 8.7, PosterURL: "https://example.com/matrix.jpg"},
		{Title: "Blade Runner", Year: 1982, Rating: 8.1},
		{Title: "Moon", Year: 2009, Rating: 7.8},
	})
}

func newOMDbStub(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("t") == "Inception" {
			_, _ = w.Write([]byte(`{"Title":"Inception","Year":"2010","imdbRating":"8.8","Poster":"https://example.com/i.jpg","Response":"True"}`))
			return
		}
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func omdbConfig(server *httptest.Server) string {
	return fmt.Sprintf("[omdb]\napi_key = \"test\"\nbase_url = %q\n", server.URL)
}

func TestListEmptyCollection(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, []string{"list"}, env.configPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "No movies in the collection")
}

func TestAddThenList(t *testing.T) {
	server := newOMDbStub(t)
	env := setupCLITestEnv(t, omdbConfig(server))

	out, err := runCLI(t, []string{"add", "Inception"}, env.configPath)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	requireContains(t, out, "Added Inception (2010), rated 8.8")

	out, err = runCLI(t, []string{"list"}, env.configPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "Inception")
	requireContains(t, out, "1 movie(s) in total")
}

func TestAddUnknownTitle(t *testing.T) {
	server := newOMDbStub(t)
	env := setupCLITestEnv(t, omdbConfig(server))

	if _, err := runCLI(t, []string{"add", "No Such Film"}, env.configPath); !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddDuplicate(t *testing.T) {
	server := newOMDbStub(t)
	env := setupCLITestEnv(t, omdbConfig(server))

	if _, err := runCLI(t, []string{"add", "Inception"}, env.configPath); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := runCLI(t, []string{"add", "Inception"}, env.configPath); !errors.Is(err, library.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestAddWithoutAPIKey(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "")
	env := setupCLITestEnv(t)

	_, err := runCLI(t, []string{"add", "Inception"}, env.configPath)
	if err == nil {
		t.Fatal("expected error without api key")
	}
	requireContains(t, err.Error(), "omdb.api_key")
}

func TestRemoveMovie(t *testing.T) {
	env := setupCLITestEnv(t)
	seedMovies(t, env)

	out, err := runCLI(t, []string{"remove", "moon"}, env.configPath)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	requireContains(t, out, "Removed Moon (2009)")

	if _, err := runCLI(t, []string{"remove", "moon"}, env.configPath); !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateRating(t *testing.T) {
	env := setupCLITestEnv(t)
	seedMovies(t, env)

	out, err := runCLI(t, []string{"update", "Moon", "--rating", "9.0"}, env.configPath)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	requireContains(t, out, "Updated Moon to 9.0")

	if _, err := runCLI(t, []string{"update", "Moon", "--rating", "12"}, env.configPath); !errors.Is(err, library.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := runCLI(t, []string{"update", "Ghost", "--rating", "5"}, env.configPath); !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func decodeMovies(t *testing.T, out string) []library.Movie {
	t.Helper()
	var movies []library.Movie
	if err := json.Unmarshal([]byte(out), &movies); err != nil {
		t.Fatalf("decode movies: %v\n%s", err, out)
	}
	return movies
}

func TestSortByYearAscending(t *testing.T) {
	env := setupCLITestEnv(t)
	seedMovies(t, env)

	out, err := runCLI(t, []string{"sort", "--by", "year", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	movies := decodeMovies(t, out)
	if movies[0].Title != "Blade Runner" || movies[2].Title != "Moon" {
		t.Fatalf("unexpected order: %+v", movies)
	}
}

func TestSortRejectsUnknownField(t *testing.T) {
	env := setupCLITestEnv(t)
	seedMovies(t, env)

	if _, err := runCLI(t, []string{"sort", "--by", "poster"}, env.configPath); err == nil {
		t.Fatal("expected error for unknown sort field")
	}
}

func TestSearch(t *testing.T) {
	env := setupCLITestEnv(t)
	seedMovies(t, env)

	out, err := runCLI(t, []string{"search", "MATRIX", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	movies := decodeMovies(t, out)
	if len(movies) != 1 || movies[0].Title != "The Matrix" {
		t.Fatalf("unexpected matches: %+v", movies)
	}
}

func TestFilterMinRating(t *testing.T) {
	env := setupCLITestEnv(t)
	seedMovies(t, env)

	out, err := runCLI(t, []string{"filter", "--min-rating", "8.0", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	movies := decodeMovies(t, out)
	if len(movies) != 2 || movies[0].Title != "The Matrix" || movies[1].Title != "Blade Runner" {
		t.Fatalf("unexpected matches: %+v", movies)
	}
}

func TestFilterYearRange(t *testing.T) {
	env := setupCLITestEnv(t)
	seedMovies(t, env)

	out, err := runCLI(t, []string{"filter", "--from-year", "1990", "--to-year", "2005", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	movies := decodeMovies(t, out)
	if len(movies) != 1 || movies[0].Title != "The Matrix" {
		t.Fatalf("unexpected matches: %+v", movies)
	}
}

func TestStatsEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, []string{"stats"}, env.configPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	requireContains(t, out, "Movies:  0")
	requireContains(t, out, "Average: N/A")
}

func TestStatsPopulated(t *testing.T) {
	env := setupCLITestEnv(t)
	seedMovies(t, env)

	out, err := runCLI(t, []string{"stats"}, env.configPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	requireContains(t, out, "Movies:  3")
	requireContains(t, out, "Best:    The Matrix (8.7)")
	requireContains(t, out, "Worst:   Moon (7.8)")
}

func TestRandomEmptyCollection(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, []string{"random"}, env.configPath); !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWebsiteGeneration(t *testing.T) {
	env := setupCLITestEnv(t)
	seedMovies(t, env)

	out, err := runCLI(t, []string{"website"}, env.configPath)
	if err != nil {
		t.Fatalf("website: %v", err)
	}
	requireContains(t, out, "Website generated at")

	page, err := os.ReadFile(filepath.Join(env.websiteDir, "index.html"))
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	requireContains(t, string(page), "Test Movies")
	requireContains(t, string(page), "The Matrix")
}

func TestCSVLibraryRoundTrip(t *testing.T) {
	base := t.TempDir()
	env := setupCLITestEnv(t)
	csvPath := filepath.Join(base, "movies.csv")
	content := fmt.Sprintf("[library]\npath = %q\n", csvPath)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}
	testsupport.SeedLibrary(t, csvPath, []library.Movie{
		{Title: "Heat", Year: 1995, Rating: 8.3},
	})

	out, err := runCLI(t, []string{"list"}, env.configPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "Heat")
}

func TestCorruptLibraryFallsBackToEmpty(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.WriteFile(env.libraryPath, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	out, err := runCLI(t, []string{"list"}, env.configPath)
	if err != nil {
		t.Fatalf("list over corrupt library: %v", err)
	}
	requireContains(t, out, "No movies in the collection")

	// Read-only commands must not touch the corrupt file.
	data, err := os.ReadFile(env.libraryPath)
	if err != nil {
		t.Fatalf("read library file: %v", err)
	}
	if string(data) != "{broken" {
		t.Fatalf("corrupt file was rewritten: %q", data)
	}
}

func TestCorruptLibraryOverwrittenOnFirstMutation(t *testing.T) {
	server := newOMDbStub(t)
	env := setupCLITestEnv(t, omdbConfig(server))
	if err := os.WriteFile(env.libraryPath, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	if _, err := runCLI(t, []string{"add", "Inception"}, env.configPath); err != nil {
		t.Fatalf("add over corrupt library: %v", err)
	}

	data, err := os.ReadFile(env.libraryPath)
	if err != nil {
		t.Fatalf("read library file: %v", err)
	}
	var movies []library.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		t.Fatalf("library file still malformed after add: %v\n%s", err, data)
	}
	if len(movies) != 1 || movies[0].Title != "Inception" {
		t.Fatalf("unexpected persisted set: %+v", movies)
	}
}

func TestConfigShow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, env.libraryPath)
	requireContains(t, out, "Website title:   Test Movies")
}

func TestConfigInit(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, []string{"config", "init", target}, env.configPath)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, target)

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}
	if _, err := runCLI(t, []string{"config", "init", target}, env.configPath); err == nil {
		t.Fatal("expected error when target exists")
	}
	if _, err := runCLI(t, []string{"config", "init", target, "--force"}, env.configPath); err != nil {
		t.Fatalf("config init --force: %v", err)
	}
}
