package logger

import (
	"sync"

	"github.com/philipp01105/dtlslog/core"
	"github.com/philipp01105/dtlslog/formatter"
)

// bufferSource hands out the message buffer for one emission call.
// Every acquire is paired with exactly one release.
type bufferSource interface {
	acquire() *formatter.Buffer
	release(buf *formatter.Buffer)
}

// sharedBuffer is the constrained-stack variant: one buffer for the
// whole logger, held under mu from formatting until the handler
// returns.
type sharedBuffer struct {
	mu  core.Mutex
	buf *formatter.Buffer
}

func newSharedBuffer(mu core.Mutex, size int) *sharedBuffer {
	return &sharedBuffer{
		mu:  mu,
		buf: formatter.NewBuffer(make([]byte, size)),
	}
}

func (s *sharedBuffer) acquire() *formatter.Buffer {
	s.mu.Lock()
	return s.buf
}

func (s *sharedBuffer) release(*formatter.Buffer) {
	s.mu.Unlock()
}

// localBuffers gives every call its own buffer, so calls never wait
// on each other. Buffers are pooled to keep the hot path allocation
// free.
type localBuffers struct {
	pool sync.Pool
}

func newLocalBuffers(size int) *localBuffers {
	return &localBuffers{
		pool: sync.Pool{
			New: func() interface{} {
				return formatter.NewBuffer(make([]byte, size))
			},
		},
	}
}

func (l *localBuffers) acquire() *formatter.Buffer {
	return l.pool.Get().(*formatter.Buffer)
}

func (l *localBuffers) release(buf *formatter.Buffer) {
	buf.Reset()
	l.pool.Put(buf)
}
