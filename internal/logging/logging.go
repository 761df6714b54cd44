// Package logging configures the process-wide slog logger.
package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Format constants accepted by Setup.
const (
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

// Setup installs the default slog logger: JSON lines for production, a
// colorized tint handler for local development. Unknown values fall back to
// info-level JSON.
func Setup(level, format string) {
	lvl := parseLevel(level)

	var handler slog.Handler
	if strings.EqualFold(format, FormatPretty) {
		handler = tint.NewHandler(os.Stderr, &tint.Options{Level: lvl})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	}
	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
