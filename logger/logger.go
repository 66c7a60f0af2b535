// Package logger builds the structured logger shared by the engine and
// front ends. Every play session is tagged with its own id.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// NewSessionID creates a new UUID identifying one play session.
func NewSessionID() string {
	return uuid.NewString()
}

// New returns a logger writing to w, carrying the base attributes and the
// session id.
func New(cfg Config, w io.Writer, sessionID string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	attrs := append(cfg.BaseAttributes(), slog.String(AttrKeySession, sessionID))
	return slog.New(handler.WithAttrs(attrs))
}

// Open builds a logger for path. An empty path discards everything so the
// terminal stays clean. The returned close function is never nil.
func Open(cfg Config, path, sessionID string) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return New(cfg, f, sessionID), f.Close, nil
}
