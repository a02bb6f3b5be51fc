// Package logger is the public API of dtlslog. Most users only need to
// import this package.
//
// A Logger has a level gate, one handler, and a fixed-size message
// buffer. Every call first compares its level with the gate, so
// suppressed messages cost a single atomic load and comparison and no
// formatting:
//
//	logger.SetLevel(logger.DebugLevel)
//	logger.Warn("unexpected record type %d\n", typ)
//	logger.DebugHexDump("client random", random)
//
// Formatted messages longer than the buffer are cut and end with
// " ...\n". Hex dumps stream through the same buffer: the extended
// form hands the handler one chunk for the header and one per row of
// 16 bytes, so dumps of any length fit a 128 byte buffer.
//
// Two buffer variants exist behind the same API. The constrained-stack
// variant owns one buffer and serializes every call, handler included,
// with a core.Mutex; it is the default when building with the
// dtls_constrained_stack tag. Otherwise each call formats into its own
// pooled buffer and calls proceed concurrently.
//
// The package initializes a default Logger (WarnLevel, console
// handler) in init(). The package-level functions delegate to it.
package logger
