package storage

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"filmlog/internal/library"
)

// Format identifies a persistence backend.
type Format string

const (
	// FormatAuto selects the backend from the file extension.
	FormatAuto Format = "auto"
	// FormatJSON stores the collection as an indented JSON array.
	FormatJSON Format = "json"
	// FormatCSV stores the collection as CSV with a header row.
	FormatCSV Format = "csv"
	// FormatSQLite stores the collection in a SQLite database.
	FormatSQLite Format = "sqlite"
)

// ParseFormat maps a config value to a Format.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatAuto, "":
		return FormatAuto, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatSQLite:
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("unknown storage format %q (want auto, json, csv, or sqlite)", value)
	}
}

// DetectFormat infers the backend from the file extension, defaulting to JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatJSON
	}
}

// Open constructs the backend for path. Callers should close the returned
// backend when it implements io.Closer (the SQLite backend does).
func Open(path string, format Format, logger *slog.Logger) (library.Backend, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("library path must not be empty")
	}
	if format == FormatAuto {
		format = DetectFormat(path)
	}

	switch format {
	case FormatJSON:
		return NewJSONBackend(path, logger), nil
	case FormatCSV:
		return NewCSVBackend(path, logger), nil
	case FormatSQLite:
		return OpenSQLiteBackend(path, logger)
	default:
		return nil, fmt.Errorf("unknown storage format %q", format)
	}
}
