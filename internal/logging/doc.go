// Package logging assembles the structured slog loggers used across cubby.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes the standard field names so move execution and undo
// emit records with a consistent shape. Output defaults to stderr plus the
// configured log file; stdout is reserved for tables and JSON payloads. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
//
// Prefer these constructors over hand-rolled slog setup so new components emit
// data with the same shape and routing as the rest of the tool.
package logging
