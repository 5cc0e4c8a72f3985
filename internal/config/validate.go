package config

import (
	"errors"
	"fmt"
)

var validFormats = map[string]struct{}{
	"auto":   {},
	"json":   {},
	"csv":    {},
	"sqlite": {},
}

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate ensures the configuration is usable. The OMDb API key is checked
// lazily by the commands that perform lookups, so a key-less config can still
// list and query an existing library.
func (c *Config) Validate() error {
	if err := c.validateLibrary(); err != nil {
		return err
	}
	if err := c.validateOMDb(); err != nil {
		return err
	}
	return c.validateLogging()
}

// RequireOMDbKey reports an actionable error when no API key is configured.
func (c *Config) RequireOMDbKey() error {
	if c.OMDb.APIKey != "" {
		return nil
	}
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		defaultPath = "~/.config/filmlog/config.toml"
	}
	return fmt.Errorf("omdb.api_key is required. Set OMDB_API_KEY env var or edit %s (create with 'filmlog config init')", defaultPath)
}

func (c *Config) validateLibrary() error {
	if c.Library.Path == "" {
		return errors.New("library.path must be set")
	}
	if _, ok := validFormats[c.Library.Format]; !ok {
		return fmt.Errorf("library.format must be one of auto, json, csv, sqlite (got %q)", c.Library.Format)
	}
	return nil
}

func (c *Config) validateOMDb() error {
	if c.OMDb.BaseURL == "" {
		return errors.New("omdb.base_url must be set")
	}
	if c.OMDb.TimeoutSeconds <= 0 {
		return errors.New("omdb.timeout_seconds must be positive")
	}
	if c.OMDb.RequestsPerSecond <= 0 {
		return errors.New("omdb.requests_per_second must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, ok := validLogLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	return nil
}
