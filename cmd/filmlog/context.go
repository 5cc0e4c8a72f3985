package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"filmlog/internal/config"
	"filmlog/internal/library"
	"filmlog/internal/logging"
	"filmlog/internal/services/omdb"
	"filmlog/internal/storage"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
	})
	return c.logger, c.loggerErr
}

// withLibrary opens the configured storage backend and library, runs fn, and
// releases backend resources afterwards.
func (c *commandContext) withLibrary(fn func(*library.Library) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}

	format, err := storage.ParseFormat(cfg.Library.Format)
	if err != nil {
		return err
	}
	backend, err := storage.Open(cfg.Library.Path, format, logger)
	if err != nil {
		return err
	}
	if closer, ok := backend.(interface{ Close() error }); ok {
		defer func() { _ = closer.Close() }()
	}

	lib, err := library.Open(backend, logger)
	if err != nil {
		return err
	}
	return fn(lib)
}

// metadataSource builds the OMDb client; it fails fast when no API key is
// configured.
func (c *commandContext) metadataSource() (*omdb.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireOMDbKey(); err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	return omdb.NewClient(omdb.Options{
		BaseURL:           cfg.OMDb.BaseURL,
		APIKey:            cfg.OMDb.APIKey,
		Timeout:           time.Duration(cfg.OMDb.TimeoutSeconds) * time.Second,
		RequestsPerSecond: cfg.OMDb.RequestsPerSecond,
		Logger:            logger,
	}), nil
}
