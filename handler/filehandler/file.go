package filehandler

import (
	"bufio"
	"errors"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"go.uber.org/multierr"

	"github.com/philipp01105/dtlslog/core"
	"github.com/philipp01105/dtlslog/handler"
)

// ErrNoFilename is returned by NewFileHandler when FileConfig.Filename is empty.
var ErrNoFilename = errors.New("filehandler: no filename")

// FileConfig holds configuration for the capture file handler
type FileConfig struct {
	// Filename is the capture file; it is created with 0644 or appended to
	Filename string
	// Clock stamps each record (default: core.SystemClock)
	Clock core.Clock
	// BufferSize is the bufio.Writer size (default: 4096)
	BufferSize int
}

// FileHandler appends every message to a file as a CBOR Record.
// It is safe for concurrent use from multiple goroutines.
type FileHandler struct {
	file      *os.File
	bufWriter *bufio.Writer
	encoder   *cbor.Encoder
	clock     core.Clock
	mu        sync.Mutex
	closed    bool
}

// NewFileHandler opens cfg.Filename for appending.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, ErrNoFilename
	}
	if cfg.Clock == nil {
		cfg.Clock = core.SystemClock
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 4096
	}

	f, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	bw := bufio.NewWriterSize(f, cfg.BufferSize)
	return &FileHandler{
		file:      f,
		bufWriter: bw,
		encoder:   NewEncoder(bw),
		clock:     cfg.Clock,
	}, nil
}

// Handle writes one record and flushes it to the file.
func (h *FileHandler) Handle(level core.Level, msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	// Ignore write errors - capturing must not disrupt the host
	if err := h.encoder.Encode(Record{
		Time:    h.clock(),
		Level:   level,
		Message: string(msg),
	}); err != nil {
		return
	}
	_ = h.bufWriter.Flush()
}

// Close flushes and closes the capture file.
// It is safe to call Close multiple times.
// After Close is called, subsequent Handle calls are silently ignored.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}

	h.closed = true
	return multierr.Append(h.bufWriter.Flush(), h.file.Close())
}

// Compile-time interface satisfaction check.
var _ handler.Handler = (*FileHandler)(nil)
