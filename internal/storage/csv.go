package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"filmlog/internal/fileutil"
	"filmlog/internal/library"
	"filmlog/internal/logging"
)

var csvHeader = []string{"title", "year", "rating", "poster_url"}

// CSVBackend persists the collection as CSV with a fixed header row.
type CSVBackend struct {
	path   string
	logger *slog.Logger
}

// NewCSVBackend returns a CSV file backend for path.
func NewCSVBackend(path string, logger *slog.Logger) *CSVBackend {
	return &CSVBackend{
		path:   path,
		logger: logging.NewComponentLogger(logger, "storage.csv"),
	}
}

// Load reads the full record set. A missing or empty file yields an empty
// set; a bad header, wrong row arity, or unparseable numbers are format
// errors.
func (b *CSVBackend) Load() ([]library.Movie, error) {
	var movies []library.Movie
	err := withFileLock(b.path, func() error {
		data, err := os.ReadFile(b.path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				b.logger.Debug("library file absent, starting empty", logging.String("path", b.path))
				return nil
			}
			return fmt.Errorf("read %s: %w", b.path, err)
		}
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}

		rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		if err != nil {
			return fmt.Errorf("%w: parse %s: %v", library.ErrFormat, b.path, err)
		}
		movies, err = decodeRows(rows)
		if err != nil {
			return fmt.Errorf("%w: parse %s: %v", library.ErrFormat, b.path, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func decodeRows(rows [][]string) ([]library.Movie, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	if len(rows[0]) != len(csvHeader) {
		return nil, fmt.Errorf("unexpected header %v", rows[0])
	}
	for i, name := range csvHeader {
		if rows[0][i] != name {
			return nil, fmt.Errorf("unexpected header %v", rows[0])
		}
	}

	movies := make([]library.Movie, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(csvHeader) {
			return nil, fmt.Errorf("row %d has %d fields, want %d", i+2, len(row), len(csvHeader))
		}
		year, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: year %q: %v", i+2, row[1], err)
		}
		rating, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: rating %q: %v", i+2, row[2], err)
		}
		movies = append(movies, library.Movie{
			Title:     row[0],
			Year:      year,
			Rating:    rating,
			PosterURL: row[3],
		})
	}
	return movies, nil
}

// Save atomically replaces the stored set.
func (b *CSVBackend) Save(movies []library.Movie) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}
	for _, movie := range movies {
		row := []string{
			movie.Title,
			strconv.Itoa(movie.Year),
			strconv.FormatFloat(movie.Rating, 'f', -1, 64),
			movie.PosterURL,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("encode row for %q: %w", movie.Title, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("encode library: %w", err)
	}

	return withFileLock(b.path, func() error {
		if err := fileutil.WriteFileAtomic(b.path, buf.Bytes(), 0o644); err != nil {
			return err
		}
		b.logger.Debug("saved library", logging.Int("movie_count", len(movies)), logging.String("path", b.path))
		return nil
	})
}

// Path reports the backing file location.
func (b *CSVBackend) Path() string { return b.path }
