package logging

import (
	"context"
	"io"
	"log/slog"
)

// Logger is the diagnostics side channel of the bridge. Failures caught at the
// C boundary only ever surface as status codes; their cause is reported here.
// Embedders may supply their own implementation to route bridge diagnostics
// into an existing logging pipeline.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New wraps an slog.Logger. Nil uses slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return slogAdapter{l: logger}
}

// Discard returns a Logger that drops every record.
func Discard() Logger {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type slogAdapter struct {
	l *slog.Logger
}

var _ Logger = slogAdapter{}

func (a slogAdapter) Debug(ctx context.Context, msg string, args ...any) {
	a.l.Log(ctx, slog.LevelDebug, msg, args...)
}

func (a slogAdapter) Info(ctx context.Context, msg string, args ...any) {
	a.l.Log(ctx, slog.LevelInfo, msg, args...)
}

func (a slogAdapter) Warn(ctx context.Context, msg string, args ...any) {
	a.l.Log(ctx, slog.LevelWarn, msg, args...)
}

func (a slogAdapter) Error(ctx context.Context, msg string, args ...any) {
	a.l.Log(ctx, slog.LevelError, msg, args...)
}

func (a slogAdapter) With(args ...any) Logger {
	return slogAdapter{l: a.l.With(args...)}
}
