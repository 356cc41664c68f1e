// Package logging assembles the structured slog loggers used across Easel.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and provides a no-op logger for tests and wiring code that
// cannot fail. Log output goes to stderr and the configured log file;
// stdout belongs to command output.
package logging
