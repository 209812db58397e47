package logger

import (
	"io"
	"log/slog"
)

// NewNope creates a logger that discards all output.
// App uses it until WithLogger is given.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
