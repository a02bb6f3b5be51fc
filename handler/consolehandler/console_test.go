package consolehandler

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/dtlslog/core"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local)
}

func newTestHandler() (*ConsoleHandler, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Stdout: &stdout,
		Stderr: &stderr,
		Clock:  fixedClock,
	})
	return h, &stdout, &stderr
}

func TestConsoleHandler_Format(t *testing.T) {
	h, stdout, _ := newTestHandler()

	h.Handle(core.WarnLevel, []byte("retransmit timer expired\n"))

	want := "Mar 05 14:07:09 WARN retransmit timer expired\n"
	if stdout.String() != want {
		t.Errorf("output = %q, want %q", stdout.String(), want)
	}
}

func TestConsoleHandler_StreamRouting(t *testing.T) {
	tests := []struct {
		level     core.Level
		tag       string
		useStderr bool
	}{
		{core.EmergLevel, "EMRG", true},
		{core.AlertLevel, "ALRT", true},
		{core.CritLevel, "CRIT", true},
		{core.WarnLevel, "WARN", false},
		{core.NoticeLevel, "NOTE", false},
		{core.InfoLevel, "INFO", false},
		{core.DebugLevel, "DEBG", false},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			h, stdout, stderr := newTestHandler()
			h.Handle(tt.level, []byte("msg\n"))

			target, other := stdout, stderr
			if tt.useStderr {
				target, other = stderr, stdout
			}
			if other.Len() != 0 {
				t.Errorf("unexpected output on the other stream: %q", other.String())
			}
			if want := "Mar 05 14:07:09 " + tt.tag + " msg\n"; target.String() != want {
				t.Errorf("output = %q, want %q", target.String(), want)
			}
		})
	}
}

func TestConsoleHandler_UnknownLevelHasNoTag(t *testing.T) {
	h, stdout, _ := newTestHandler()

	h.Handle(core.Level(12), []byte("raw\n"))

	if want := "Mar 05 14:07:09 raw\n"; stdout.String() != want {
		t.Errorf("output = %q, want %q", stdout.String(), want)
	}
}

func TestConsoleHandler_DisableTimestamp(t *testing.T) {
	var stdout bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Stdout:           &stdout,
		Stderr:           &stdout,
		DisableTimestamp: true,
	})

	h.Handle(core.InfoLevel, []byte("no clock\n"))

	if want := "INFO no clock\n"; stdout.String() != want {
		t.Errorf("output = %q, want %q", stdout.String(), want)
	}
}

func TestConsoleHandler_MessageVerbatim(t *testing.T) {
	h, stdout, _ := newTestHandler()

	h.Handle(core.DebugLevel, []byte("no newline %d %s"))

	if !strings.HasSuffix(stdout.String(), "DEBG no newline %d %s") {
		t.Errorf("message was altered: %q", stdout.String())
	}
}

func TestConsoleHandler_FlushesBufferedWriter(t *testing.T) {
	var sink bytes.Buffer
	bw := bufio.NewWriterSize(&sink, 4096)
	h := NewConsoleHandler(ConsoleConfig{
		Stdout:           bw,
		Stderr:           bw,
		DisableTimestamp: true,
	})

	h.Handle(core.NoticeLevel, []byte("flushed\n"))

	if bw.Buffered() != 0 {
		t.Errorf("Buffered() = %d after Handle, want 0", bw.Buffered())
	}
	if sink.String() != "NOTE flushed\n" {
		t.Errorf("output = %q", sink.String())
	}
}

func TestConsoleHandler_Defaults(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{})
	if h.clock == nil {
		t.Error("default clock is nil")
	}
	if h.layout != DefaultTimestampLayout {
		t.Errorf("layout = %q, want %q", h.layout, DefaultTimestampLayout)
	}
	if h.out.w == nil || h.err.w == nil {
		t.Error("default writers not set")
	}
}

func TestDefault_IsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() returned different instances")
	}
}

func TestConsoleHandler_DoesNotRetainMessage(t *testing.T) {
	h, stdout, _ := newTestHandler()
	msg := []byte("first\n")

	h.Handle(core.WarnLevel, msg)
	copy(msg, "XXXXX\n")

	if !strings.Contains(stdout.String(), "first") {
		t.Errorf("output changed after the caller reused its buffer: %q", stdout.String())
	}
}
