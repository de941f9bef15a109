// Package logging defines the structured-logging interface used across
// passvault and its adapters over log/slog, zap and zerolog.
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Info(ctx, "entry created", "owner", userID, "account", account)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}

// Backend names accepted by New.
const (
	BackendSlog    = "slog"
	BackendZap     = "zap"
	BackendZerolog = "zerolog"
)

// Level is the minimum severity written by a logger built with New.
type Level int

const (
	LevelDebug Level = iota - 1
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel accepts debug, info, warn and error (case-insensitive).
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// New builds a Logger for backend writing to w.
func New(backend string, level Level, w io.Writer) (Logger, error) {
	switch backend {
	case "", BackendSlog:
		return NewSlogLoggerTo(w, level), nil
	case BackendZap:
		return NewZapLoggerTo(w, level), nil
	case BackendZerolog:
		return NewZerologLoggerTo(w, level), nil
	}
	return nil, fmt.Errorf("unknown log backend %q", backend)
}

// Nop discards everything.
func Nop() Logger {
	return NewSlogLoggerTo(io.Discard, LevelError)
}
