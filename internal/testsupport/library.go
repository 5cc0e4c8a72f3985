package testsupport

import (
	"testing"

	"filmlog/internal/library"
	"filmlog/internal/storage"
)

// SeedLibrary writes the given movies to path using the backend inferred from
// its extension.
func SeedLibrary(t testing.TB, path string, movies []library.Movie) {
	t.Helper()

	backend, err := storage.Open(path, storage.FormatAuto, nil)
	if err != nil {
		t.Fatalf("open backend for seed: %v", err)
	}
	if closer, ok := backend.(interface{ Close() error }); ok {
		defer func() { _ = closer.Close() }()
	}
	if err := backend.Save(movies); err != nil {
		t.Fatalf("seed library: %v", err)
	}
}
