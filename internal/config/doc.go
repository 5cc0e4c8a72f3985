// Package config loads, normalizes, and validates filmlog configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// OMDB_API_KEY (optionally loaded from a .env file). The Config type
// centralizes every knob the CLI needs: library location and format, OMDb
// credentials, website output, and logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical format names, and clear validation errors.
package config
