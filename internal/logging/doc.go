// Package logging constructs the slog loggers used across filmlog.
//
// New builds a logger from level/format options (console text or JSON);
// NewFromConfig wires those options from the application config. Component
// loggers attach a standardized "component" attribute so messages from the
// library, storage, and omdb layers stay distinguishable at one glance.
package logging
