// Package filehandler provides a handler that captures messages to a
// file for later inspection.
//
// Every message becomes one CBOR-encoded Record (time, level, text)
// appended to the file and flushed immediately, so a crash loses at
// most the message being written. Reader streams the records back,
// optionally filtered by severity or substring; the dtlslog CLI's view
// command is built on it.
package filehandler
