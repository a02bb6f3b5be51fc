package consolehandler

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/dtlslog/core"
	"github.com/philipp01105/dtlslog/handler"
)

// DefaultTimestampLayout renders like strftime's "%b %d %H:%M:%S".
const DefaultTimestampLayout = "Jan 02 15:04:05"

// flusher is implemented by buffered writers such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// stream serializes writes to one output. The line is assembled in a
// handler-owned buffer and written with a single Write call.
type stream struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
}

func (s *stream) write(h *ConsoleHandler, level core.Level, msg []byte) {
	s.mu.Lock()
	s.buf = h.appendPrefix(s.buf[:0], level)
	s.buf = append(s.buf, msg...)
	// Write errors are dropped: there is nowhere to report them.
	_, _ = s.w.Write(s.buf)
	if f, ok := s.w.(flusher); ok {
		_ = f.Flush()
	}
	s.mu.Unlock()
}

// ConsoleConfig holds configuration for the console handler
type ConsoleConfig struct {
	// Stdout receives NOTICE, INFO and DEBUG messages (default: os.Stdout)
	Stdout io.Writer
	// Stderr receives EMERG, ALERT and CRIT messages (default: os.Stderr)
	Stderr io.Writer
	// Clock is the timestamp source (default: core.SystemClock)
	Clock core.Clock
	// TimestampLayout is a time layout (default: DefaultTimestampLayout)
	TimestampLayout string
	// DisableTimestamp drops the timestamp prefix, as on targets
	// without a time source
	DisableTimestamp bool
}

// ConsoleHandler prints messages the way the built-in sink of the
// logger always has: "<timestamp> <TAG> <message>". The message is
// written verbatim; it carries its own newline.
type ConsoleHandler struct {
	out    stream
	err    stream
	clock  core.Clock
	layout string
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.Clock == nil {
		cfg.Clock = core.SystemClock
	}
	if cfg.TimestampLayout == "" {
		cfg.TimestampLayout = DefaultTimestampLayout
	}
	if cfg.DisableTimestamp {
		cfg.Clock = nil
	}
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)
	h := &ConsoleHandler{
		clock:  cfg.Clock,
		layout: cfg.TimestampLayout,
	}
	h.out.w = cfg.Stdout
	h.err.w = cfg.Stderr
	h.out.buf = make([]byte, 0, 256)
	h.err.buf = make([]byte, 0, 256)
	return h
}

var (
	defaultOnce    sync.Once
	defaultHandler *ConsoleHandler
)

// Default returns the process-wide console handler writing to
// os.Stdout and os.Stderr. It is the handler a logger falls back to
// when none is installed.
func Default() *ConsoleHandler {
	defaultOnce.Do(func() {
		defaultHandler = NewConsoleHandler(ConsoleConfig{})
	})
	return defaultHandler
}

// Handle writes msg to stderr for levels up to CRIT and to stdout
// otherwise.
func (h *ConsoleHandler) Handle(level core.Level, msg []byte) {
	s := &h.out
	if level <= core.CritLevel {
		s = &h.err
	}
	s.write(h, level, msg)
}

func (h *ConsoleHandler) appendPrefix(b []byte, level core.Level) []byte {
	if h.clock != nil {
		b = h.clock().AppendFormat(b, h.layout)
		b = append(b, ' ')
	}
	if tag, ok := level.Tag(); ok {
		b = append(b, tag...)
		b = append(b, ' ')
	}
	return b
}

// Compile-time interface satisfaction check.
var _ handler.Handler = (*ConsoleHandler)(nil)
