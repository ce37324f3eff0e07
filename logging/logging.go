// Package logging builds the slog logger shared by the engine, the loader
// and the front ends.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/nathoo/roadsaga/config"
)

// Setup configures a logger from settings. Output goes to settings.LogFile
// when set, otherwise to fallback; a nil fallback discards everything. The
// returned close func releases the log file and is always safe to call.
// Every record carries the session id.
func Setup(settings config.Settings, fallback io.Writer) (*slog.Logger, func() error, error) {
	closer := func() error { return nil }

	out := fallback
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closer, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closer = f.Close
	}
	if out == nil {
		out = io.Discard
	}

	opts := &slog.HandlerOptions{Level: settings.Level()}

	var handler slog.Handler
	if settings.LogFormat == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger := WithSession(slog.New(handler), uuid.NewString())
	slog.SetDefault(logger)
	return logger, closer, nil
}

// WithSession adds the session id to logger context.
func WithSession(logger *slog.Logger, id string) *slog.Logger {
	return logger.With("session", id)
}
