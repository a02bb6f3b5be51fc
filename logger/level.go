package logger

import (
	"github.com/philipp01105/dtlslog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	EmergLevel  = core.EmergLevel
	AlertLevel  = core.AlertLevel
	CritLevel   = core.CritLevel
	WarnLevel   = core.WarnLevel
	NoticeLevel = core.NoticeLevel
	InfoLevel   = core.InfoLevel
	DebugLevel  = core.DebugLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
