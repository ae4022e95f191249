package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var logger = newLogger(os.Stderr, slog.LevelWarn)

func newLogger(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// ParseLevel maps a config value to a slog level. Unknown values fall back to warn.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Init sets up logging with the given level, writing to w (stderr when nil).
func Init(level string, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logger = newLogger(w, ParseLevel(level))
}

// Logger returns the current logger.
func Logger() *slog.Logger { return logger }

func Debug(msg string, args ...any) { logger.Debug(msg, args...) }
func Info(msg string, args ...any)  { logger.Info(msg, args...) }
func Warn(msg string, args ...any)  { logger.Warn(msg, args...) }
func Error(msg string, args ...any) { logger.Error(msg, args...) }
