package logger

import (
	"log/slog"
	"os"
)

// New creates a JSON-formatted logger tagged with a component name.
// The component attribute is added to every log entry for easy filtering.
func New(component string) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(h).With(slog.String("component", component))
}

// NewNope creates a logger that discards everything. It is the default
// wherever a caller does not configure logging.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
