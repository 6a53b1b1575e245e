package logger

import (
	"context"
	"log/slog"
)

var _ slog.Handler = (*Handler)(nil)

// Handler adapts a Logger to the slog.Handler interface so the standard
// facade can route through it. Only a record's level and message are
// used; this backend emits plain level-tagged lines, so attributes and
// groups are ignored.
type Handler struct {
	logger *Logger
}

// NewHandler returns a Handler dispatching into l.
func NewHandler(l *Logger) *Handler {
	return &Handler{logger: l}
}

// Enabled is consistent with the logger's threshold, letting the facade
// skip building records that would be filtered anyway.
func (h *Handler) Enabled(_ context.Context, lvl slog.Level) bool {
	return h.logger.Enabled(levelFromSlog(lvl))
}

func (h *Handler) Handle(_ context.Context, rec slog.Record) error {
	h.logger.Log(levelFromSlog(rec.Level), rec.Message)
	return nil
}

// WithAttrs returns h unchanged; attributes are not part of the line
// format.
func (h *Handler) WithAttrs([]slog.Attr) slog.Handler { return h }

// WithGroup returns h unchanged.
func (h *Handler) WithGroup(string) slog.Handler { return h }
