// Package config builds loggers from YAML or TOML files.
//
// A file only needs the keys it changes; everything else keeps the
// value from Default():
//
//	level: debug
//	buffer_size: 256
//	output: capture
//	capture_file: /var/log/dtls.cbor
//
// Build returns the logger together with an io.Closer for the output.
package config
