package filehandler

import (
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/philipp01105/dtlslog/core"
)

// Record is one captured message. CBOR encoding uses integer keys for
// compactness.
type Record struct {
	// Time the message was handled.
	Time time.Time `cbor:"1,keyasint"`

	// Level of the message.
	Level core.Level `cbor:"2,keyasint"`

	// Message is the rendered text, including its trailing newline.
	Message string `cbor:"3,keyasint"`
}

var (
	recordEncMode cbor.EncMode
	recordDecMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
		Time:        cbor.TimeRFC3339Nano,
	}
	recordEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create capture CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	}
	recordDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create capture CBOR decoder mode: %v", err))
	}
}

// EncodeRecord encodes a Record to CBOR bytes.
func EncodeRecord(r Record) ([]byte, error) {
	return recordEncMode.Marshal(r)
}

// DecodeRecord decodes CBOR bytes into a Record.
func DecodeRecord(data []byte) (Record, error) {
	var r Record
	if err := recordDecMode.Unmarshal(data, &r); err != nil {
		return Record{}, err
	}
	return r, nil
}

// NewEncoder creates a CBOR encoder for records that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return recordEncMode.NewEncoder(w)
}

// NewDecoder creates a CBOR decoder for records that reads from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return recordDecMode.NewDecoder(r)
}
