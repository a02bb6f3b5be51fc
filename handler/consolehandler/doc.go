// Package consolehandler provides the built-in handler that prints
// messages to the standard streams.
//
// Each message is prefixed with a timestamp ("Jan 02 15:04:05") when a
// clock is available and with a four character level tag (EMRG, ALRT,
// CRIT, WARN, NOTE, INFO, DEBG). EMERG, ALERT and CRIT go to stderr,
// everything else to stdout. Buffered writers are flushed after every
// message.
package consolehandler
