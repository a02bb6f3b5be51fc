package handler

import (
	"github.com/philipp01105/dtlslog/core"
)

// Handler receives finished messages from a logger.
type Handler interface {
	// Handle delivers one message. msg aliases the logger's buffer and
	// is only valid until Handle returns; copy it to keep it. A handler
	// must not log through the logger that called it.
	Handle(level core.Level, msg []byte)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(level core.Level, msg []byte)

// Handle calls f(level, msg).
func (f HandlerFunc) Handle(level core.Level, msg []byte) {
	f(level, msg)
}

// Discard drops every message.
var Discard Handler = HandlerFunc(func(core.Level, []byte) {})
