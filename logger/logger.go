package logger

import (
	"log/slog"
	"os"
	"strings"
)

func getEnvOrDefault(key, default_ string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return default_
}

// SetupSLog configures the default slog handler from the LOG_FORMAT
// (text or json) and LOG_LEVEL environment variables.
func SetupSLog() {
	var lvl slog.Level
	switch strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		slog.Error("LOG_LEVEL must be one of: debug, info, warn, error")
		os.Exit(1)
	}

	ho := slog.HandlerOptions{
		Level: lvl,
	}

	var h slog.Handler
	switch getEnvOrDefault("LOG_FORMAT", "text") {
	case "json":
		h = slog.NewJSONHandler(os.Stderr, &ho)
	case "text":
		h = slog.NewTextHandler(os.Stderr, &ho)
	default:
		slog.Error("LOG_FORMAT must be json or text")
		os.Exit(1)
	}

	slog.SetDefault(slog.New(h))
}
