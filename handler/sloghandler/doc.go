// Package sloghandler routes logger output into a log/slog logger.
package sloghandler
