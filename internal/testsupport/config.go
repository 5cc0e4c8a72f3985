// Package testsupport provides shared helpers for filmlog tests: per-test
// configs seeded with temp paths and libraries pre-populated with records.
package testsupport

import (
	"path/filepath"
	"testing"

	"filmlog/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp paths per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Library.Path = filepath.Join(base, "movies.json")
	cfg.Library.Format = "auto"
	cfg.OMDb.APIKey = "test"
	cfg.Website.OutputDir = filepath.Join(base, "site")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithLibraryPath overrides the library file location on the test config.
func WithLibraryPath(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Library.Path = path
	}
}

// WithOMDbKey sets the OMDb API key on the test config.
func WithOMDbKey(key string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.OMDb.APIKey = key
	}
}
