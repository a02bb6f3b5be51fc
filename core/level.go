package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Level is a syslog-style severity. Lower values are more severe.
type Level int8

const (
	// EmergLevel for conditions that leave the system unusable
	EmergLevel Level = iota
	// AlertLevel for conditions that need immediate action
	AlertLevel
	// CritLevel for critical conditions
	CritLevel
	// WarnLevel for warnings (default gate)
	WarnLevel
	// NoticeLevel for normal but significant conditions
	NoticeLevel
	// InfoLevel for informational messages
	InfoLevel
	// DebugLevel for debugging output and packet dumps
	DebugLevel
)

// DefaultLevel is the gate value a logger starts with.
const DefaultLevel = WarnLevel

// ErrUnknownLevel is returned by ParseLevel for input that names no level.
var ErrUnknownLevel = errors.New("unknown log level")

var levelNames = [...]string{
	EmergLevel:  "EMERG",
	AlertLevel:  "ALERT",
	CritLevel:   "CRIT",
	WarnLevel:   "WARN",
	NoticeLevel: "NOTICE",
	InfoLevel:   "INFO",
	DebugLevel:  "DEBUG",
}

// levelTags has the same order as Level.
var levelTags = [...]string{
	EmergLevel:  "EMRG",
	AlertLevel:  "ALRT",
	CritLevel:   "CRIT",
	WarnLevel:   "WARN",
	NoticeLevel: "NOTE",
	InfoLevel:   "INFO",
	DebugLevel:  "DEBG",
}

// AllLevels returns every defined level, most severe first.
func AllLevels() []Level {
	return []Level{EmergLevel, AlertLevel, CritLevel, WarnLevel, NoticeLevel, InfoLevel, DebugLevel}
}

// Valid reports whether l is one of the seven defined levels.
func (l Level) Valid() bool {
	return l >= EmergLevel && l <= DebugLevel
}

// String returns the string representation of the level
func (l Level) String() string {
	if !l.Valid() {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Tag returns the four character tag printed by the console sink.
func (l Level) Tag() (string, bool) {
	if !l.Valid() {
		return "", false
	}
	return levelTags[l], true
}

// Enabled reports whether a message at l passes a gate set to gate.
func (l Level) Enabled(gate Level) bool {
	return l <= gate
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int(l))
	}
	return []byte(levelNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel converts a level name, tag, or numeric value to a Level.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	switch name {
	case "EMERG", "EMRG", "EMERGENCY":
		return EmergLevel, nil
	case "ALERT", "ALRT":
		return AlertLevel, nil
	case "CRIT", "CRITICAL":
		return CritLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "NOTICE", "NOTE":
		return NoticeLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "DEBUG", "DEBG":
		return DebugLevel, nil
	}
	if n, err := strconv.Atoi(name); err == nil && n >= int(EmergLevel) && n <= int(DebugLevel) {
		return Level(n), nil
	}
	return DefaultLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
