package core

// DefaultBufferSize is the capacity of a logger's message buffer,
// terminator included.
const DefaultBufferSize = 128
