package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// sourceLevelHandler wraps a handler and attaches source location only for
// the configured levels. The wrapped handler must run with AddSource: false.
type sourceLevelHandler struct {
	handler    slog.Handler
	showSource map[slog.Level]bool
}

// NewSourceLevelHandler wraps a handler so source location is emitted only
// for the given levels, keeping routine log lines compact in production.
func NewSourceLevelHandler(handler slog.Handler, levels ...slog.Level) slog.Handler {
	m := make(map[slog.Level]bool, len(levels))
	for _, level := range levels {
		m[level] = true
	}
	return &sourceLevelHandler{handler: handler, showSource: m}
}

func (h *sourceLevelHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.showSource[r.Level] {
		// Skip this frame plus the slog internal frame.
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		fs := runtime.CallersFrames(pcs[:])
		f, _ := fs.Next()

		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: f.Function,
				File:     f.File,
				Line:     f.Line,
			}),
		})
	}

	return h.handler.Handle(ctx, r)
}

func (h *sourceLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceLevelHandler{handler: h.handler.WithAttrs(attrs), showSource: h.showSource}
}

func (h *sourceLevelHandler) WithGroup(name string) slog.Handler {
	return &sourceLevelHandler{handler: h.handler.WithGroup(name), showSource: h.showSource}
}

func (h *sourceLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}
