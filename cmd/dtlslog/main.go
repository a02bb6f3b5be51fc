// Command dtlslog exercises the bounded debug logger from the shell.
//
// Usage:
//
//	dtlslog [--config file] [--level L] [--buffer-size N] <command>
//
// Commands:
//
//	log      Emit one message at a level
//	dump     Hex-dump a file or stdin
//	view     Print the records of a CBOR capture file
//	stats    Summarize a CBOR capture file
//
// Examples:
//
//	# Emit a warning through the console sink
//	dtlslog log warn "handshake timeout"
//
//	# Dump a record in rows of 16 bytes
//	dtlslog --level debug dump --severity debug record.bin
//
//	# Capture to a file, then read it back
//	dtlslog --config capture.yaml log crit "bad MAC"
//	dtlslog view --max-level warn capture.cbor
package main

import (
	"os"

	"github.com/philipp01105/dtlslog/cmd/dtlslog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
