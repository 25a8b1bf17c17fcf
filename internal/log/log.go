package log

import (
	"context"
	"log/slog"
)

type contextKey string

const keyAttrs contextKey = "attrs"

// WithAttrs returns a new context carrying the given log attributes, in
// addition to any attribute already attached to the parent context.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if existing, ok := ctx.Value(keyAttrs).([]slog.Attr); ok {
		attrs = append(existing[:len(existing):len(existing)], attrs...)
	}

	return context.WithValue(ctx, keyAttrs, attrs)
}

// ContextHandler is a slog.Handler injecting the attributes attached to the
// record's context via WithAttrs.
type ContextHandler struct {
	slog.Handler
}

// Handle implements slog.Handler.
func (h ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if attrs, ok := ctx.Value(keyAttrs).([]slog.Attr); ok {
		record.AddAttrs(attrs...)
	}

	return h.Handler.Handle(ctx, record)
}

// WithAttrs implements slog.Handler.
func (h ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

// WithGroup implements slog.Handler.
func (h ContextHandler) WithGroup(name string) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithGroup(name)}
}

var _ slog.Handler = ContextHandler{}
