// Package formatter renders messages and hex dumps into a fixed-size
// buffer.
//
// Buffer never grows. It stores at most Cap()-1 bytes followed by a
// zero byte and keeps counting past capacity, so callers can tell how
// long the output would have been. When output does not fit, Finish
// keeps the first Cap()-6 bytes and appends TruncationMarker (" ...\n"),
// so a cut message is always visibly marked.
//
// HexDump streams an arbitrarily long byte slice through one Buffer by
// flushing after the header and after every 16-byte row. It never
// resumes on a fresh buffer after an overflow; the overflowed chunk is
// flushed with the marker and rendering stops.
package formatter
