package logger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/textkit/pkg/textutil"
)

// RedactHandler wraps a slog.Handler and masks the string values of
// attributes whose keys are configured as sensitive.
type RedactHandler struct {
	next        slog.Handler
	keys        map[string]struct{}
	maskOptions []textutil.MaskOption
}

// NewRedactHandler creates a redacting decorator around next.
// Keys are matched case-insensitively.
func NewRedactHandler(next slog.Handler, keys []string, opts ...textutil.MaskOption) *RedactHandler {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[strings.ToLower(k)] = struct{}{}
	}
	return &RedactHandler{next: next, keys: set, maskOptions: opts}
}

func (h *RedactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle rebuilds the record with redacted attributes and delegates it.
func (h *RedactHandler) Handle(ctx context.Context, rec slog.Record) error {
	out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(h.redact(a))
		return true
	})
	return h.next.Handle(ctx, out)
}

// WithAttrs redacts static attributes once, when they are attached.
func (h *RedactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = h.redact(a)
	}
	return &RedactHandler{
		next:        h.next.WithAttrs(redacted),
		keys:        h.keys,
		maskOptions: h.maskOptions,
	}
}

func (h *RedactHandler) WithGroup(name string) slog.Handler {
	return &RedactHandler{
		next:        h.next.WithGroup(name),
		keys:        h.keys,
		maskOptions: h.maskOptions,
	}
}

func (h *RedactHandler) redact(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		redacted := make([]slog.Attr, len(group))
		for i, ga := range group {
			redacted[i] = h.redact(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(redacted...)}
	}

	if _, ok := h.keys[strings.ToLower(a.Key)]; ok && a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, textutil.MaskString(a.Value.String(), h.maskOptions...))
	}
	return a
}
