package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeLibrary(); err != nil {
		return err
	}
	c.normalizeOMDb()
	if err := c.normalizeWebsite(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeLibrary() error {
	if strings.TrimSpace(c.Library.Path) == "" {
		c.Library.Path = defaultLibraryPath
	}
	var err error
	if c.Library.Path, err = expandPath(c.Library.Path); err != nil {
		return fmt.Errorf("library.path: %w", err)
	}
	c.Library.Format = strings.ToLower(strings.TrimSpace(c.Library.Format))
	if c.Library.Format == "" {
		c.Library.Format = defaultLibraryFormat
	}
	return nil
}

func (c *Config) normalizeOMDb() {
	c.OMDb.APIKey = strings.TrimSpace(c.OMDb.APIKey)
	if c.OMDb.APIKey == "" {
		if value, ok := os.LookupEnv("OMDB_API_KEY"); ok {
			c.OMDb.APIKey = strings.TrimSpace(value)
		}
	}
	c.OMDb.BaseURL = strings.TrimRight(strings.TrimSpace(c.OMDb.BaseURL), "/")
	if c.OMDb.BaseURL == "" {
		c.OMDb.BaseURL = defaultOMDbBaseURL
	}
	if c.OMDb.TimeoutSeconds <= 0 {
		c.OMDb.TimeoutSeconds = defaultOMDbTimeout
	}
	if c.OMDb.RequestsPerSecond <= 0 {
		c.OMDb.RequestsPerSecond = defaultOMDbRPS
	}
}

func (c *Config) normalizeWebsite() error {
	if strings.TrimSpace(c.Website.OutputDir) == "" {
		c.Website.OutputDir = defaultWebsiteOutputDir
	}
	var err error
	if c.Website.OutputDir, err = expandPath(c.Website.OutputDir); err != nil {
		return fmt.Errorf("website.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Website.Title) == "" {
		c.Website.Title = defaultWebsiteTitle
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
