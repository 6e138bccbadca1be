package sloglog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/embedlog/embedlog/core"
	"github.com/embedlog/embedlog/logger"
)

// Handler is a slog.Handler that renders records as single text lines
// and stages them into an embedlog engine. Code written against
// log/slog gets deferred, buffered delivery without changing call
// sites.
type Handler struct {
	log   *logger.Logger
	level slog.Leveler
	attrs string // preformatted " key=value" pairs from WithAttrs
	group string
}

// NewHandler creates a staging handler. Records below min are refused
// by Enabled before any formatting work happens.
func NewHandler(l *logger.Logger, min slog.Leveler) *Handler {
	return &Handler{log: l, level: min}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler. The record becomes one staged line:
// the message followed by key=value pairs, group names dot-joined into
// the keys.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var sb strings.Builder
	sb.WriteString(record.Message)
	sb.WriteString(h.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.group, a)
		return true
	})
	sb.WriteByte('\n')

	h.log.Log(levelOf(record.Level), "%s", sb.String())
	return nil
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	sb.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&sb, h.group, a)
	}
	return &Handler{log: h.log, level: h.level, attrs: sb.String(), group: h.group}
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &Handler{log: h.log, level: h.level, attrs: h.attrs, group: group}
}

func appendAttr(sb *strings.Builder, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, member := range a.Value.Group() {
			appendAttr(sb, key, member)
		}
		return
	}
	fmt.Fprintf(sb, " %s=%v", key, a.Value.Resolve().Any())
}

// levelOf maps slog's ascending-severity levels onto embedlog's
// descending-severity ceiling scale.
func levelOf(l slog.Level) core.Level {
	switch {
	case l < slog.LevelInfo:
		return core.Debug
	case l < slog.LevelWarn:
		return core.Info
	case l < slog.LevelError:
		return core.Warning
	default:
		return core.Error
	}
}
