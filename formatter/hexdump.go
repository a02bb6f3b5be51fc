package formatter

import (
	"encoding/hex"
	"io"
)

const (
	bytesPerRow   = 16
	bytesPerGroup = 8
)

type dumpState uint8

const (
	stateStart dumpState = iota
	stateHeaderSent
	stateStreamingRow
	stateOverflow
	stateDone
)

// hexRenderer is the per-call cursor of a hex dump.
type hexRenderer struct {
	buf       *Buffer
	flush     func([]byte)
	state     dumpState
	offset    int
	truncated bool
}

// HexDump renders data through buf, handing every completed chunk to
// flush. The flushed slice aliases buf and must not be retained.
//
// The compact form is a single line "<name>: (<N> bytes): " followed
// by two hex digits per byte. The extended form first flushes the
// header "<name>: (<N> bytes):\n" and then one flush per row of 16
// bytes:
//
//	00000000 00 01 02 03 04 05 06 07  08 09 0A 0B 0C 0D 0E 0F
//
// When a token would not leave room for the terminator, the content so
// far is flushed with TruncationMarker and rendering stops. truncated
// reports whether any flushed chunk carried the marker.
func HexDump(buf *Buffer, name string, data []byte, extended bool, flush func([]byte)) (truncated bool) {
	r := hexRenderer{buf: buf, flush: flush}
	if extended {
		r.header(name, len(data), ":\n")
		r.truncated = r.buf.Overflowed()
		r.emit(r.buf.Finish())
		r.state = stateHeaderSent
		r.buf.Reset()
		r.rows(data)
	} else {
		r.header(name, len(data), ": ")
		r.line(data)
	}
	r.finish()
	return r.truncated
}

func (r *hexRenderer) header(name string, length int, suffix string) {
	r.buf.Reset()
	r.buf.WriteString(name)
	r.buf.WriteString(": (")
	r.buf.appendInt(length)
	r.buf.WriteString(" bytes)")
	r.buf.WriteString(suffix)
}

func (r *hexRenderer) line(data []byte) {
	r.state = stateStreamingRow
	for _, c := range data {
		if !r.buf.Fits(1) {
			r.state = stateOverflow
			return
		}
		r.buf.AppendHex(c)
		r.offset++
	}
}

func (r *hexRenderer) rows(data []byte) {
	for _, c := range data {
		if !r.buf.Fits(1) {
			r.state = stateOverflow
			return
		}
		r.state = stateStreamingRow
		if r.offset%bytesPerRow == 0 {
			r.buf.appendOffset(uint32(r.offset))
			r.buf.WriteByte(' ')
			if !r.buf.Fits(1) {
				r.state = stateOverflow
				return
			}
		}
		r.buf.AppendHex(c)
		r.buf.WriteByte(' ')
		if !r.buf.Fits(1) {
			r.state = stateOverflow
			return
		}
		r.offset++

		switch {
		case r.offset%bytesPerRow == 0:
			if !r.buf.Fits(2) {
				r.state = stateOverflow
				return
			}
			r.buf.WriteByte('\n')
			r.emit(r.buf.Bytes())
			r.buf.Reset()
			r.state = stateHeaderSent
		case r.offset%bytesPerGroup == 0:
			r.buf.WriteByte(' ')
		}
	}
}

// finish flushes whatever is left: a partial row or line gets its
// newline, overflowed output gets the truncation marker.
func (r *hexRenderer) finish() {
	if r.buf.Len() > 0 {
		if r.state != stateOverflow && r.buf.Fits(2) {
			r.buf.WriteByte('\n')
		} else {
			r.buf.Truncate()
			r.truncated = true
		}
		r.emit(r.buf.Bytes())
	}
	r.state = stateDone
}

func (r *hexRenderer) emit(p []byte) {
	if r.flush != nil {
		r.flush(p)
	}
}

// WriteTable writes data to w in the unbounded extended layout, rows
// of 16 bytes without a header. A trailing partial row has no newline.
func WriteTable(w io.Writer, data []byte) error {
	var row [8 + 1 + bytesPerRow*3 + 2]byte
	line := row[:0]
	for n, c := range data {
		if n%bytesPerRow == 0 {
			v := uint32(n)
			for i := 7; i >= 0; i-- {
				row[i] = hexDigits[v&0x0f]
				v >>= 4
			}
			line = append(row[:8], ' ')
		}
		line = append(line, hexDigits[c>>4], hexDigits[c&0x0f], ' ')
		if (n+1)%bytesPerGroup == 0 {
			if (n+1)%bytesPerRow == 0 {
				line = append(line, '\n')
			} else {
				line = append(line, ' ')
			}
		}
		if (n+1)%bytesPerRow == 0 || n == len(data)-1 {
			if _, err := w.Write(line); err != nil {
				return err
			}
			line = row[:0]
		}
	}
	return nil
}

// WriteNarrow writes data to w as a run of lower-case hex digits.
func WriteNarrow(w io.Writer, data []byte) error {
	_, err := hex.NewEncoder(w).Write(data)
	return err
}
