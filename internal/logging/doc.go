// Package logging assembles structured slog loggers used across seriesreport.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and defines the standard attribute keys (component, run_id,
// query, file, table, rows). Log output defaults to stderr so the report on
// stdout stays clean. The package also provides a no-op logger for tests and
// wiring code that cannot fail.
package logging
