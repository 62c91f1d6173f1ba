package logging

import (
	"log/slog"
	"os"
	"strings"
)

// New builds the JSON logger used everywhere in the service. Level comes
// from LOG_LEVEL (debug|info|warn|error), defaulting to info. PII masking
// happens on the types themselves (SourceOrder implements slog.LogValuer),
// so every handler gets redaction for free.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
