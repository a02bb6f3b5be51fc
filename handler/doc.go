// Package handler provides the Handler interface that receives the
// finished messages of a logger.
//
// A logger has exactly one active Handler. The handler gets a level
// and the rendered message bytes; it performs no further formatting.
// The bytes alias the logger's message buffer, which is reused by the
// next call (or, in the shared-buffer variant, by the next goroutine),
// so a handler must consume the message before returning.
//
// Built-in handlers:
//
//   - consolehandler writes to stdout/stderr with a timestamp and level
//     tag. It is the default handler of every logger.
//   - zaphandler forwards messages to a *zap.Logger.
//   - sloghandler forwards messages to a *slog.Logger.
//   - filehandler appends CBOR capture records to a file and reads
//     them back.
package handler
