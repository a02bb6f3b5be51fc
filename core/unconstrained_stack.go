//go:build !dtls_constrained_stack

package core

// ConstrainedStack selects the shared message buffer guarded by a
// mutex as the default logger variant. Build with the
// dtls_constrained_stack tag to enable it.
const ConstrainedStack = false
