package zaphandler

import (
	"bytes"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/dtlslog/core"
	"github.com/philipp01105/dtlslog/handler"
)

// ZapHandler forwards messages to a *zap.Logger.
type ZapHandler struct {
	logger *zap.Logger
}

// New creates a handler writing to logger. A nil logger discards.
func New(logger *zap.Logger) *ZapHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapHandler{logger: logger}
}

// Handle writes msg at the zap level matching level. Severities above
// ERROR map to ERROR so a message never panics or exits the process.
func (h *ZapHandler) Handle(level core.Level, msg []byte) {
	zl := zapLevel(level)
	ce := h.logger.Check(zl, string(bytes.TrimRight(msg, "\n")))
	if ce == nil {
		return
	}
	tag, ok := level.Tag()
	if !ok {
		tag = level.String()
	}
	ce.Write(zap.String("level_tag", tag))
}

func zapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.EmergLevel, core.AlertLevel, core.CritLevel:
		return zapcore.ErrorLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.NoticeLevel, core.InfoLevel:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Compile-time interface satisfaction check.
var _ handler.Handler = (*ZapHandler)(nil)
