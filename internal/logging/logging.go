// Package logging wires slog to a tint handler, with optional rotated file
// output when a log directory is configured.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileName = "analytics.log"

// Setup builds the application logger and installs it as the slog default.
func Setup(level, dir string) *slog.Logger {
	lvl := parseLevel(level)

	var writer io.Writer = os.Stdout
	noColor := false
	if dir = strings.TrimSpace(dir); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			writer = io.MultiWriter(os.Stdout, &lumberjack.Logger{
				Filename:   filepath.Join(dir, logFileName),
				MaxSize:    50, // MB
				MaxBackups: 3,
				MaxAge:     7, // days
				Compress:   true,
			})
			noColor = true
		}
	}

	logger := slog.New(tint.NewHandler(writer, &tint.Options{
		Level:      lvl,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}))
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
