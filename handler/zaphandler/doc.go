// Package zaphandler routes logger output into a zap logger, for hosts
// that already ship their logs through zap.
package zaphandler
