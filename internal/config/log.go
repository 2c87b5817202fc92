package config

import (
	"log/slog"
	"os"
	"strings"
)

// SetLogLevel sets the log level for the application.
func SetLogLevel() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: LogLevel()})))
}

// LogLevel reads the log level from LOG_LEVEL. It defaults to info.
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		switch strings.ToUpper(envLevel) {
		case "DEBUG":
			level = slog.LevelDebug
		case "INFO":
			level = slog.LevelInfo
		case "WARN":
			level = slog.LevelWarn
		case "ERROR":
			level = slog.LevelError
		default:
			slog.Error("Invalid log level", "level", envLevel)
			os.Exit(1)
		}
	}
	return level
}
