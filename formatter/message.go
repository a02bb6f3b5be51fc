package formatter

import "fmt"

// Message formats a printf-style message into buf and returns the
// finished content. Output that does not fit is cut to the first
// Cap()-6 bytes and ends with TruncationMarker; truncated reports
// whether that happened.
func Message(buf *Buffer, format string, args ...any) (msg []byte, truncated bool) {
	buf.Reset()
	fmt.Fprintf(buf, format, args...)
	truncated = buf.Overflowed()
	return buf.Finish(), truncated
}
