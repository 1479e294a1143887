package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/jairajrenjith/Witti/internal/config"
)

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger with the
// appropriate log level and sets it as the default logger for the
// application.
//
// It accepts a ServerConfig containing the log level setting and returns the
// configured logger.
func Setup(cfg config.ServerConfig) *slog.Logger {
	level := parseLevel(cfg.LogLevel)

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	log := slog.New(handler)

	// Set as default so package-level slog calls share the same handler.
	slog.SetDefault(log)

	return log
}

// parseLevel maps a configured log level string to a slog.Level
// (case-insensitive). Unknown values fall back to info with a warning.
func parseLevel(configured string) slog.Level {
	switch strings.ToLower(configured) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", configured,
			"default_level", "info")
		return slog.LevelInfo
	}
}
