package logger

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/dtlslog/core"
	"github.com/philipp01105/dtlslog/formatter"
	"github.com/philipp01105/dtlslog/handler"
	"github.com/philipp01105/dtlslog/handler/consolehandler"
)

// Logger renders leveled messages and hex dumps into a fixed-size
// buffer and hands them to a single Handler.
//
// The level gate and the handler can be changed at any time; a change
// applies to calls that start afterwards. Handlers must not log
// through the Logger that called them: with a shared buffer the call
// would deadlock.
type Logger struct {
	level   atomic.Int32
	handler atomic.Pointer[handlerBox]
	buffers bufferSource
	stats   stats
}

// handlerBox lets handlers of any concrete type share one atomic slot.
type handlerBox struct {
	h handler.Handler
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	level       core.Level
	handler     handler.Handler
	bufferSize  int
	constrained bool
	mutex       core.Mutex
}

// NewBuilder creates a new logger builder. The buffer variant defaults
// to the one selected at build time (see core.ConstrainedStack).
func NewBuilder() *Builder {
	return &Builder{
		level:       core.DefaultLevel,
		bufferSize:  core.DefaultBufferSize,
		constrained: core.ConstrainedStack,
	}
}

// WithLevel sets the initial level gate
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithHandler sets the handler; nil means the console default
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithBufferSize sets the message buffer capacity, terminator
// included. Sizes below formatter.MinBufferSize are raised to it.
func (b *Builder) WithBufferSize(size int) *Builder {
	b.bufferSize = max(size, formatter.MinBufferSize)
	return b
}

// WithConstrainedStack selects between one shared buffer guarded by a
// mutex (true) and a private buffer per call (false).
func (b *Builder) WithConstrainedStack(enabled bool) *Builder {
	b.constrained = enabled
	return b
}

// WithMutex sets the lock guarding the shared buffer and selects the
// constrained-stack variant.
func (b *Builder) WithMutex(mu core.Mutex) *Builder {
	b.mutex = mu
	b.constrained = mu != nil || b.constrained
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{}
	l.level.Store(int32(b.level))
	l.SetHandler(b.handler)

	if b.constrained {
		mu := b.mutex
		if mu == nil {
			mu = &sync.Mutex{}
		}
		l.buffers = newSharedBuffer(mu, b.bufferSize)
	} else {
		l.buffers = newLocalBuffers(b.bufferSize)
	}
	return l
}

// GetLevel returns the current level gate
func (l *Logger) GetLevel() core.Level {
	return core.Level(l.level.Load())
}

// SetLevel sets the level gate. The value is not validated.
func (l *Logger) SetLevel(level core.Level) {
	l.level.Store(int32(level))
}

// Enabled reports whether a message at level passes the gate
func (l *Logger) Enabled(level core.Level) bool {
	return level.Enabled(l.GetLevel())
}

// SetHandler installs h as the only handler. A nil h restores the
// console default.
func (l *Logger) SetHandler(h handler.Handler) {
	if h == nil {
		h = consolehandler.Default()
	}
	l.handler.Store(&handlerBox{h: h})
}

// Handler returns the active handler
func (l *Logger) Handler() handler.Handler {
	return l.handler.Load().h
}

// Stats returns a snapshot of the logger's counters
func (l *Logger) Stats() Snapshot {
	return l.stats.snapshot()
}

// ResetStats resets the logger's counters to zero
func (l *Logger) ResetStats() {
	l.stats.reset()
}

// Logf formats a message at level and passes it to the handler.
// Suppressed levels return before any formatting. Messages that do
// not fit the buffer end with formatter.TruncationMarker.
func (l *Logger) Logf(level core.Level, format string, args ...interface{}) {
	if !l.Enabled(level) {
		l.stats.incSuppressed()
		return
	}

	buf := l.buffers.acquire()
	defer l.buffers.release(buf)

	msg, truncated := formatter.Message(buf, format, args...)
	l.stats.incEmitted()
	if truncated {
		l.stats.incTruncated()
	}
	l.handle(level, msg)
}

// HexDump renders data at level, either as one compact line or, when
// extended, as a header followed by rows of 16 bytes. Each row is
// handed to the handler as soon as it is complete.
func (l *Logger) HexDump(level core.Level, name string, data []byte, extended bool) {
	if !l.Enabled(level) {
		l.stats.incSuppressed()
		return
	}

	buf := l.buffers.acquire()
	defer l.buffers.release(buf)

	h := l.Handler()
	truncated := formatter.HexDump(buf, name, data, extended, func(chunk []byte) {
		l.stats.incHandled()
		h.Handle(level, chunk)
	})
	l.stats.incEmitted()
	if truncated {
		l.stats.incTruncated()
	}
}

// LogAddr logs name together with a printable session identity.
func (l *Logger) LogAddr(level core.Level, name string, session fmt.Stringer) {
	if !l.Enabled(level) {
		l.stats.incSuppressed()
		return
	}
	var addr interface{} = session
	if session == nil {
		addr = "(nil)"
	}
	l.Logf(level, "%s: %s\n", name, addr)
}

func (l *Logger) handle(level core.Level, msg []byte) {
	l.stats.incHandled()
	l.Handler().Handle(level, msg)
}

// Emerg logs a formatted emergency message
func (l *Logger) Emerg(format string, args ...interface{}) {
	l.Logf(core.EmergLevel, format, args...)
}

// Alert logs a formatted alert message
func (l *Logger) Alert(format string, args ...interface{}) {
	l.Logf(core.AlertLevel, format, args...)
}

// Crit logs a formatted critical message
func (l *Logger) Crit(format string, args ...interface{}) {
	l.Logf(core.CritLevel, format, args...)
}

// Warn logs a formatted warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.Logf(core.WarnLevel, format, args...)
}

// Notice logs a formatted notice message
func (l *Logger) Notice(format string, args ...interface{}) {
	l.Logf(core.NoticeLevel, format, args...)
}

// Info logs a formatted info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.Logf(core.InfoLevel, format, args...)
}

// Debug logs a formatted debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.Logf(core.DebugLevel, format, args...)
}

// DebugHexDump dumps data at DEBUG in the extended multi-line form
func (l *Logger) DebugHexDump(name string, data []byte) {
	l.HexDump(core.DebugLevel, name, data, true)
}

// DebugDump dumps data at DEBUG as a single line of hex digits
func (l *Logger) DebugDump(name string, data []byte) {
	l.HexDump(core.DebugLevel, name, data, false)
}
