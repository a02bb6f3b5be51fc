package formatter

import (
	"fmt"
	"strconv"
)

// TruncationMarker replaces the tail of output that did not fit.
const TruncationMarker = " ...\n"

// MinBufferSize is the smallest capacity that can hold the truncation
// marker plus the terminating zero byte.
const MinBufferSize = len(TruncationMarker) + 1

const hexDigits = "0123456789ABCDEF"

// Buffer is a fixed-capacity message buffer. It never grows: writes
// past capacity are counted but dropped, so Len reports the length the
// output would have had without a bound. The stored content is always
// followed by a zero byte and is never longer than Cap()-1 bytes.
type Buffer struct {
	b []byte
	n int
}

// NewBuffer wraps b, which must be at least MinBufferSize bytes long.
// The whole of b is used; its capacity beyond len(b) is not.
func NewBuffer(b []byte) *Buffer {
	if len(b) < MinBufferSize {
		panic("formatter: buffer smaller than MinBufferSize")
	}
	w := &Buffer{b: b}
	w.Reset()
	return w
}

// Cap returns the buffer capacity, including the terminator byte.
func (w *Buffer) Cap() int { return len(w.b) }

// Len returns the natural length of everything written since Reset.
func (w *Buffer) Len() int { return w.n }

// Fits reports whether extra more bytes plus the terminator would fit.
func (w *Buffer) Fits(extra int) bool {
	return w.n+extra < len(w.b)
}

// Overflowed reports whether the natural output no longer fits.
func (w *Buffer) Overflowed() bool {
	return w.n >= len(w.b)
}

func (w *Buffer) stored() int {
	return min(w.n, len(w.b)-1)
}

// Reset empties the buffer.
func (w *Buffer) Reset() {
	w.n = 0
	w.b[0] = 0
}

// Write implements io.Writer. It never fails; bytes beyond capacity
// are dropped.
func (w *Buffer) Write(p []byte) (int, error) {
	if s := w.stored(); s < len(w.b)-1 {
		copy(w.b[s:len(w.b)-1], p)
	}
	w.n += len(p)
	w.b[w.stored()] = 0
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (w *Buffer) WriteString(s string) (int, error) {
	if at := w.stored(); at < len(w.b)-1 {
		copy(w.b[at:len(w.b)-1], s)
	}
	w.n += len(s)
	w.b[w.stored()] = 0
	return len(s), nil
}

// WriteByte implements io.ByteWriter.
func (w *Buffer) WriteByte(c byte) error {
	if at := w.stored(); at < len(w.b)-1 {
		w.b[at] = c
	}
	w.n++
	w.b[w.stored()] = 0
	return nil
}

// Printf appends formatted output.
func (w *Buffer) Printf(format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// AppendHex appends c as two upper-case hex digits.
func (w *Buffer) AppendHex(c byte) {
	w.WriteByte(hexDigits[c>>4])
	w.WriteByte(hexDigits[c&0x0f])
}

// appendOffset appends v as eight upper-case hex digits, like %08X.
func (w *Buffer) appendOffset(v uint32) {
	var digits [8]byte
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i] = hexDigits[v&0x0f]
		v >>= 4
	}
	w.Write(digits[:])
}

func (w *Buffer) appendInt(v int) {
	var tmp [20]byte
	w.Write(strconv.AppendInt(tmp[:0], int64(v), 10))
}

// Truncate replaces the last bytes of a full buffer with the
// truncation marker. Afterwards the buffer holds the first Cap()-6
// bytes of content followed by TruncationMarker.
func (w *Buffer) Truncate() {
	c := len(w.b)
	copy(w.b[c-MinBufferSize:], TruncationMarker)
	w.b[c-1] = 0
	w.n = c - 1
}

// Bytes returns the stored content without the terminator. The slice
// aliases the buffer and is only valid until the next write or Reset.
func (w *Buffer) Bytes() []byte {
	return w.b[:w.stored()]
}

// Finish marks overflowed output with the truncation marker and
// returns the content.
func (w *Buffer) Finish() []byte {
	if w.Overflowed() {
		w.Truncate()
	}
	return w.Bytes()
}
