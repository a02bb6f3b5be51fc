package core

import (
	"errors"
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{EmergLevel, "EMERG"},
		{AlertLevel, "ALERT"},
		{CritLevel, "CRIT"},
		{WarnLevel, "WARN"},
		{NoticeLevel, "NOTICE"},
		{InfoLevel, "INFO"},
		{DebugLevel, "DEBUG"},
		{Level(7), "UNKNOWN"},
		{Level(-1), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Tag(t *testing.T) {
	want := []string{"EMRG", "ALRT", "CRIT", "WARN", "NOTE", "INFO", "DEBG"}
	for i, l := range AllLevels() {
		tag, ok := l.Tag()
		if !ok {
			t.Fatalf("%v.Tag() not ok", l)
		}
		if tag != want[i] {
			t.Errorf("%v.Tag() = %q, want %q", l, tag, want[i])
		}
		if len(tag) != 4 {
			t.Errorf("%v.Tag() length = %d, want 4", l, len(tag))
		}
	}

	if _, ok := Level(42).Tag(); ok {
		t.Error("Tag() ok for out-of-range level")
	}
}

func TestLevel_Order(t *testing.T) {
	levels := AllLevels()
	if len(levels) != 7 {
		t.Fatalf("AllLevels() returned %d levels, want 7", len(levels))
	}
	for i := 1; i < len(levels); i++ {
		if levels[i-1] >= levels[i] {
			t.Errorf("%v should be more severe than %v", levels[i-1], levels[i])
		}
	}
	if DefaultLevel != WarnLevel {
		t.Errorf("DefaultLevel = %v, want WARN", DefaultLevel)
	}
}

func TestLevel_EnabledTable(t *testing.T) {
	for _, gate := range AllLevels() {
		for _, l := range AllLevels() {
			want := int(l) <= int(gate)
			if got := l.Enabled(gate); got != want {
				t.Errorf("%v.Enabled(%v) = %v, want %v", l, gate, got, want)
			}
		}
	}

	// gate = WARN allows EMERG..WARN only
	for _, l := range []Level{EmergLevel, AlertLevel, CritLevel, WarnLevel} {
		if !l.Enabled(WarnLevel) {
			t.Errorf("%v should pass a WARN gate", l)
		}
	}
	for _, l := range []Level{NoticeLevel, InfoLevel, DebugLevel} {
		if l.Enabled(WarnLevel) {
			t.Errorf("%v should not pass a WARN gate", l)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"emerg", EmergLevel},
		{"EMRG", EmergLevel},
		{"alert", AlertLevel},
		{"crit", CritLevel},
		{"Critical", CritLevel},
		{"warn", WarnLevel},
		{"WARNING", WarnLevel},
		{"notice", NoticeLevel},
		{"NOTE", NoticeLevel},
		{" info ", InfoLevel},
		{"debug", DebugLevel},
		{"DEBG", DebugLevel},
		{"0", EmergLevel},
		{"6", DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if err != nil {
				t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLevel_Unknown(t *testing.T) {
	for _, in := range []string{"", "verbose", "7", "-1"} {
		got, err := ParseLevel(in)
		if !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("ParseLevel(%q) error = %v, want ErrUnknownLevel", in, err)
		}
		if got != DefaultLevel {
			t.Errorf("ParseLevel(%q) = %v, want default %v", in, got, DefaultLevel)
		}
	}
}

func TestLevel_TextRoundTrip(t *testing.T) {
	for _, l := range AllLevels() {
		text, err := l.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", l, err)
		}
		var got Level
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if got != l {
			t.Errorf("round trip %v -> %q -> %v", l, text, got)
		}
	}

	if _, err := Level(9).MarshalText(); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("MarshalText(9) error = %v, want ErrUnknownLevel", err)
	}
}
