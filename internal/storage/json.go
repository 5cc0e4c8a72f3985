package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"filmlog/internal/fileutil"
	"filmlog/internal/library"
	"filmlog/internal/logging"
)

// JSONBackend persists the collection as an indented JSON array of records.
type JSONBackend struct {
	path   string
	logger *slog.Logger
}

// NewJSONBackend returns a JSON file backend for path.
func NewJSONBackend(path string, logger *slog.Logger) *JSONBackend {
	return &JSONBackend{
		path:   path,
		logger: logging.NewComponentLogger(logger, "storage.json"),
	}
}

// Load reads the full record set. A missing or empty file yields an empty
// set; malformed JSON is reported as a format error.
func (b *JSONBackend) Load() ([]library.Movie, error) {
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
		if len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, &movies); err != nil {
			return fmt.Errorf("%w: parse %s: %v", library.ErrFormat, b.path, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movies, nil
}

// Save atomically replaces the stored set.
func (b *JSONBackend) Save(movies []library.Movie) error {
	if movies == nil {
		movies = []library.Movie{}
	}
	data, err := json.MarshalIndent(movies, "", "  ")
	if err != nil {
		return fmt.Errorf("encode library: %w", err)
	}
	data = append(data, '\n')

	return withFileLock(b.path, func() error {
		if err := fileutil.WriteFileAtomic(b.path, data, 0o644); err != nil {
			return err
		}
		b.logger.Debug("saved library", logging.Int("movie_count", len(movies)), logging.String("path", b.path))
		return nil
	})
}

// Path reports the backing file location.
func (b *JSONBackend) Path() string { return b.path }
