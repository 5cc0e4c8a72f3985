package omdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"filmlog/internal/library"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Options{
		BaseURL:           server.URL,
		APIKey:            "test-key",
		RequestsPerSecond: 1000,
	})
}

func TestLookupMapsResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("apikey"); got != "test-key" {
			t.Fatalf("unexpected api key: %q", got)
		}
		if got := r.URL.Query().Get("t"); got != "Inception" {
			t.Fatalf("unexpected title query: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Title": "Inception",
			"Year": "2010",
			"imdbRating": "8.8",
			"Poster": "https://example.com/inception.jpg",
			"Response": "True"
		}`))
	})

	movie, err := client.Lookup(context.Background(), "Inception")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	want := library.Movie{Title: "Inception", Year: 2010, Rating: 8.8, PosterURL: "https://example.com/inception.jpg"}
	if movie != want {
		t.Fatalf("got %+v, want %+v", movie, want)
	}
}

func TestLookupMissReturnsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Response": "False", "Error": "Movie not found!"}`))
	})

	if _, err := client.Lookup(context.Background(), "No Such Film"); !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLookupServerErrorIsNetworkError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	if _, err := client.Lookup(context.Background(), "Anything"); !errors.Is(err, library.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

func TestLookupUnreachableHostIsNetworkError(t *testing.T) {
	client := NewClient(Options{
		BaseURL:           "http://127.0.0.1:1",
		APIKey:            "test-key",
		RequestsPerSecond: 1000,
	})

	if _, err := client.Lookup(context.Background(), "Anything"); !errors.Is(err, library.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

func TestLookupHandlesPlaceholders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"Title": "Obscure Short",
			"Year": "N/A",
			"imdbRating": "N/A",
			"Poster": "N/A",
			"Response": "True"
		}`))
	})

	movie, err := client.Lookup(context.Background(), "Obscure Short")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if movie.Year != 0 || movie.Rating != 0 || movie.PosterURL != "" {
		t.Fatalf("placeholders not normalized: %+v", movie)
	}
}

func TestParseYearHandlesRanges(t *testing.T) {
	cases := map[string]int{
		"2010":       2010,
		"2010–2013":  2010,
		"1994-1998":  1994,
		"N/A":        0,
		"":           0,
		"circa 1920": 1920,
	}
	for value, want := range cases {
		if got := parseYear(value); got != want {
			t.Fatalf("parseYear(%q) = %d, want %d", value, got, want)
		}
	}
}
