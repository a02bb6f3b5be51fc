//go:build dtls_constrained_stack

package core

// ConstrainedStack selects the shared message buffer guarded by a
// mutex as the default logger variant.
const ConstrainedStack = true
