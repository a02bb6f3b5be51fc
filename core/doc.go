// Package core defines the shared types used across dtlslog.
//
// Level is a syslog-style severity where lower values are more
// severe: EmergLevel is 0 and DebugLevel is 6. A logger's gate is a
// Level, and a message passes when its level is numerically less than
// or equal to the gate. The default gate is WarnLevel.
//
// Mutex is the lock abstraction used by loggers that share a single
// message buffer. Session is an endpoint identity that loggers print
// but never compare. Clock is the injected time source for
// timestamps; the coarse clock caches time.Now() for hot paths.
package core
