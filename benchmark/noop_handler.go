package benchmark

import (
	"sync/atomic"

	"github.com/philipp01105/dtlslog/core"
	"github.com/philipp01105/dtlslog/handler"
)

// noopHandler counts the bytes it is handed and drops them.
type noopHandler struct {
	bytes atomic.Uint64
}

func newNoopHandler() *noopHandler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(_ core.Level, msg []byte) {
	h.bytes.Add(uint64(len(msg)))
}

var _ handler.Handler = (*noopHandler)(nil)
