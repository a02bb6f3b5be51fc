package logger

import (
	"fmt"
	"sync"

	"github.com/philipp01105/dtlslog/handler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = NewBuilder().Build()
}

// Default returns the process-wide logger. It starts at WarnLevel with
// the console handler and a buffer of core.DefaultBufferSize bytes.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger; nil installs a fresh one
func SetDefault(l *Logger) {
	if l == nil {
		l = NewBuilder().Build()
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// GetLevel returns the level gate of the default logger
func GetLevel() Level {
	return Default().GetLevel()
}

// SetLevel sets the level gate of the default logger
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// SetHandler installs the handler of the default logger; nil restores the console handler
func SetHandler(h handler.Handler) {
	Default().SetHandler(h)
}

// Logf logs a formatted message at level using the default logger
func Logf(level Level, format string, args ...interface{}) {
	Default().Logf(level, format, args...)
}

// Emerg logs a formatted emergency message using the default logger
func Emerg(format string, args ...interface{}) {
	Default().Logf(EmergLevel, format, args...)
}

// Alert logs a formatted alert message using the default logger
func Alert(format string, args ...interface{}) {
	Default().Logf(AlertLevel, format, args...)
}

// Crit logs a formatted critical message using the default logger
func Crit(format string, args ...interface{}) {
	Default().Logf(CritLevel, format, args...)
}

// Warn logs a formatted warning message using the default logger
func Warn(format string, args ...interface{}) {
	Default().Logf(WarnLevel, format, args...)
}

// Notice logs a formatted notice message using the default logger
func Notice(format string, args ...interface{}) {
	Default().Logf(NoticeLevel, format, args...)
}

// Info logs a formatted info message using the default logger
func Info(format string, args ...interface{}) {
	Default().Logf(InfoLevel, format, args...)
}

// Debug logs a formatted debug message using the default logger
func Debug(format string, args ...interface{}) {
	Default().Logf(DebugLevel, format, args...)
}

// HexDump dumps data at level using the default logger
func HexDump(level Level, name string, data []byte, extended bool) {
	Default().HexDump(level, name, data, extended)
}

// DebugHexDump dumps data at DEBUG in the extended form using the default logger
func DebugHexDump(name string, data []byte) {
	Default().DebugHexDump(name, data)
}

// DebugDump dumps data at DEBUG as one line using the default logger
func DebugDump(name string, data []byte) {
	Default().DebugDump(name, data)
}

// LogAddr logs a session identity using the default logger
func LogAddr(level Level, name string, session fmt.Stringer) {
	Default().LogAddr(level, name, session)
}
