// Package log holds the process-wide structured logger. Diagnostics go to
// stderr through log/slog; user-facing progress is written by commands.
package log
