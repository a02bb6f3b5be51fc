package filehandler

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/philipp01105/dtlslog/core"
)

// Filter specifies criteria for reading records.
// Empty/nil fields match all records for that criterion.
type Filter struct {
	// MaxLevel keeps records at this severity or more severe.
	MaxLevel *core.Level

	// Contains keeps records whose message contains the substring.
	Contains string
}

func (f *Filter) matches(r Record) bool {
	if f.MaxLevel != nil && !r.Level.Enabled(*f.MaxLevel) {
		return false
	}
	if f.Contains != "" && !strings.Contains(r.Message, f.Contains) {
		return false
	}
	return true
}

// Reader reads records from a capture file.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader creates a Reader over the records in path matching filter.
func NewReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		file:    f,
		decoder: NewDecoder(f),
		filter:  filter,
	}, nil
}

// Next returns the next matching record.
// Returns io.EOF when no more records are available.
func (r *Reader) Next() (Record, error) {
	for {
		var rec Record
		if err := r.decoder.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return Record{}, io.EOF
			}
			return Record{}, err
		}
		if r.filter.matches(rec) {
			return rec, nil
		}
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
