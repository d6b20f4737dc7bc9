// Package logger builds the process-wide structured logger on top of log/slog,
// choosing JSON output in production and text output elsewhere.
package logger
