package sloghandler

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/philipp01105/dtlslog/core"
	"github.com/philipp01105/dtlslog/handler"
)

// SlogHandler forwards messages to a *slog.Logger.
type SlogHandler struct {
	logger *slog.Logger
}

// New creates a handler writing to logger (slog.Default() when nil).
func New(logger *slog.Logger) *SlogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogHandler{logger: logger}
}

// Handle logs msg with its syslog severity kept in the "severity" attribute.
func (h *SlogHandler) Handle(level core.Level, msg []byte) {
	sl := slogLevel(level)
	ctx := context.Background()
	if !h.logger.Enabled(ctx, sl) {
		return
	}
	h.logger.LogAttrs(ctx, sl, string(bytes.TrimRight(msg, "\n")),
		slog.String("severity", level.String()))
}

// slogLevel converts a core.Level to a slog.Level.
func slogLevel(level core.Level) slog.Level {
	switch level {
	case core.EmergLevel, core.AlertLevel, core.CritLevel:
		return slog.LevelError
	case core.WarnLevel:
		return slog.LevelWarn
	case core.NoticeLevel, core.InfoLevel:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Compile-time interface satisfaction check.
var _ handler.Handler = (*SlogHandler)(nil)
