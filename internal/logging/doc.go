// Package logging assembles the structured slog loggers used across the
// pipeline.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and keeps every diagnostic on stderr or the work-directory log
// file; stdout is reserved for the final merged segment table. A no-op
// logger is provided for tests and wiring code that cannot fail.
package logging
