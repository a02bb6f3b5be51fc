package logger

import (
	"fmt"
	"net/netip"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/philipp01105/dtlslog/core"
	"github.com/philipp01105/dtlslog/formatter"
	"github.com/philipp01105/dtlslog/handler"
	"github.com/philipp01105/dtlslog/handler/consolehandler"
)

type record struct {
	level core.Level
	msg   string
}

// recorder copies every message it receives
type recorder struct {
	mu      sync.Mutex
	records []record
}

func (r *recorder) Handle(level core.Level, msg []byte) {
	r.mu.Lock()
	r.records = append(r.records, record{level: level, msg: string(msg)})
	r.mu.Unlock()
}

func (r *recorder) all() []record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]record(nil), r.records...)
}

func newRecorded(constrained bool) (*Logger, *recorder) {
	rec := &recorder{}
	l := NewBuilder().
		WithHandler(rec).
		WithConstrainedStack(constrained).
		Build()
	return l, rec
}

func variants(t *testing.T, fn func(t *testing.T, constrained bool)) {
	t.Run("local", func(t *testing.T) { fn(t, false) })
	t.Run("constrained", func(t *testing.T) { fn(t, true) })
}

func TestLogger_DefaultGate(t *testing.T) {
	l := NewBuilder().Build()
	if l.GetLevel() != WarnLevel {
		t.Errorf("GetLevel() = %v, want WARN", l.GetLevel())
	}
}

func TestLogger_LevelGateTable(t *testing.T) {
	variants(t, func(t *testing.T, constrained bool) {
		for _, gate := range core.AllLevels() {
			for _, level := range core.AllLevels() {
				l, rec := newRecorded(constrained)
				l.SetLevel(gate)

				l.Logf(level, "gate check\n")

				got := len(rec.all()) == 1
				want := level <= gate
				if got != want {
					t.Errorf("gate=%v level=%v: delivered=%v, want %v", gate, level, got, want)
				}
			}
		}
	})
}

func TestLogger_LevelHelpers(t *testing.T) {
	l, rec := newRecorded(false)
	l.SetLevel(DebugLevel)

	l.Emerg("m\n")
	l.Alert("m\n")
	l.Crit("m\n")
	l.Warn("m\n")
	l.Notice("m\n")
	l.Info("m\n")
	l.Debug("m\n")

	records := rec.all()
	if len(records) != 7 {
		t.Fatalf("got %d records, want 7", len(records))
	}
	for i, want := range core.AllLevels() {
		if records[i].level != want {
			t.Errorf("record %d level = %v, want %v", i, records[i].level, want)
		}
	}
}

func TestLogger_SetLevelUnvalidated(t *testing.T) {
	l, rec := newRecorded(false)

	l.SetLevel(core.Level(42))
	if l.GetLevel() != core.Level(42) {
		t.Fatalf("GetLevel() = %d, want 42", l.GetLevel())
	}

	l.Debug("passes a wide-open gate\n")
	if len(rec.all()) != 1 {
		t.Error("DEBUG message not delivered with gate 42")
	}
}

type spyStringer struct {
	called atomic.Bool
}

func (s *spyStringer) String() string {
	s.called.Store(true)
	return "spy"
}

func TestLogger_SuppressedSkipsFormatting(t *testing.T) {
	variants(t, func(t *testing.T, constrained bool) {
		l, rec := newRecorded(constrained)
		spy := &spyStringer{}

		l.Debug("value %s\n", spy)
		l.DebugHexDump("dump", []byte{1, 2, 3})
		l.LogAddr(InfoLevel, "peer", spy)

		if spy.called.Load() {
			t.Error("arguments were formatted for a suppressed message")
		}
		if len(rec.all()) != 0 {
			t.Errorf("suppressed messages reached the handler: %v", rec.all())
		}
		if s := l.Stats(); s.Suppressed != 3 || s.Emitted != 0 {
			t.Errorf("Stats() = %+v", s)
		}
	})
}

func TestLogger_MessageUnmodified(t *testing.T) {
	variants(t, func(t *testing.T, constrained bool) {
		l, rec := newRecorded(constrained)

		l.Warn("epoch %d, seq %d: %s\n", 1, 42, "bad record MAC")

		records := rec.all()
		if len(records) != 1 {
			t.Fatalf("got %d records, want 1", len(records))
		}
		if want := "epoch 1, seq 42: bad record MAC\n"; records[0].msg != want {
			t.Errorf("msg = %q, want %q", records[0].msg, want)
		}
	})
}

func TestLogger_Truncation(t *testing.T) {
	variants(t, func(t *testing.T, constrained bool) {
		l, rec := newRecorded(constrained)
		size := core.DefaultBufferSize

		exact := strings.Repeat("e", size-1)
		long := strings.Repeat("a", size-6) + strings.Repeat("b", 100)

		l.Warn("%s", exact)
		l.Warn("%s", long)

		records := rec.all()
		if len(records) != 2 {
			t.Fatalf("got %d records, want 2", len(records))
		}
		if records[0].msg != exact {
			t.Errorf("%d byte message was altered", size-1)
		}
		want := strings.Repeat("a", size-6) + formatter.TruncationMarker
		if records[1].msg != want {
			t.Errorf("truncated msg = %q, want %q", records[1].msg, want)
		}
		if len(records[1].msg) >= size {
			t.Errorf("truncated length = %d, want < %d", len(records[1].msg), size)
		}
		if s := l.Stats(); s.Truncated != 1 || s.Emitted != 2 {
			t.Errorf("Stats() = %+v", s)
		}
	})
}

func TestLogger_BufferSize(t *testing.T) {
	rec := &recorder{}
	l := NewBuilder().WithHandler(rec).WithBufferSize(16).Build()

	l.Crit("0123456789abcdefghij")

	if want := "0123456789" + formatter.TruncationMarker; rec.all()[0].msg != want {
		t.Errorf("msg = %q, want %q", rec.all()[0].msg, want)
	}

	small := NewBuilder().WithHandler(rec).WithBufferSize(1).Build()
	small.Crit("abcdefgh")
	if got := rec.all()[1].msg; got != formatter.TruncationMarker {
		t.Errorf("minimum buffer msg = %q, want %q", got, formatter.TruncationMarker)
	}
}

func TestLogger_SetHandlerNilRestoresDefault(t *testing.T) {
	l, rec := newRecorded(false)
	if l.Handler() != handler.Handler(rec) {
		t.Fatal("Handler() is not the installed recorder")
	}

	l.SetHandler(nil)

	fresh := NewBuilder().Build()
	if l.Handler() != fresh.Handler() {
		t.Error("SetHandler(nil) did not restore the default handler")
	}
	if l.Handler() != handler.Handler(consolehandler.Default()) {
		t.Error("default handler is not consolehandler.Default()")
	}
}

func TestLogger_SetHandlerAppliesToLaterCalls(t *testing.T) {
	first := &recorder{}
	second := &recorder{}
	l := NewBuilder().WithHandler(first).Build()

	l.Warn("one\n")
	l.SetHandler(second)
	l.Warn("two\n")

	if len(first.all()) != 1 || first.all()[0].msg != "one\n" {
		t.Errorf("first handler got %v", first.all())
	}
	if len(second.all()) != 1 || second.all()[0].msg != "two\n" {
		t.Errorf("second handler got %v", second.all())
	}
}

func TestLogger_HexDump(t *testing.T) {
	variants(t, func(t *testing.T, constrained bool) {
		l, rec := newRecorded(constrained)
		l.SetLevel(DebugLevel)
		data := make([]byte, 32)
		for i := range data {
			data[i] = byte(i)
		}

		l.DebugHexDump("pkt", data)

		records := rec.all()
		want := []string{
			"pkt: (32 bytes):\n",
			"00000000 00 01 02 03 04 05 06 07  08 09 0A 0B 0C 0D 0E 0F \n",
			"00000010 10 11 12 13 14 15 16 17  18 19 1A 1B 1C 1D 1E 1F \n",
		}
		if len(records) != len(want) {
			t.Fatalf("got %d records, want %d: %v", len(records), len(want), records)
		}
		for i := range want {
			if records[i].msg != want[i] || records[i].level != DebugLevel {
				t.Errorf("record %d = %v %q, want DEBUG %q", i, records[i].level, records[i].msg, want[i])
			}
		}
		if s := l.Stats(); s.Emitted != 1 || s.Handled != 3 {
			t.Errorf("Stats() = %+v", s)
		}
	})
}

func TestLogger_DebugDump(t *testing.T) {
	l, rec := newRecorded(false)
	l.SetLevel(DebugLevel)

	l.DebugDump("psk", []byte{0x01, 0xab})
	l.DebugHexDump("none", nil)

	records := rec.all()
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].msg != "psk: (2 bytes): 01AB\n" {
		t.Errorf("compact dump = %q", records[0].msg)
	}
	if records[1].msg != "none: (0 bytes):\n" {
		t.Errorf("empty extended dump = %q", records[1].msg)
	}
}

func TestLogger_HexDumpLevel(t *testing.T) {
	l, rec := newRecorded(false)

	l.HexDump(CritLevel, "cookie", []byte{0xff}, false)
	l.HexDump(InfoLevel, "cookie", []byte{0xff}, false)

	records := rec.all()
	if len(records) != 1 || records[0].level != CritLevel {
		t.Errorf("records = %v, want one CRIT dump", records)
	}
}

func TestLogger_LogAddr(t *testing.T) {
	l, rec := newRecorded(false)
	session := core.Session{Addr: netip.MustParseAddrPort("[2001:db8::1]:5684")}

	l.LogAddr(WarnLevel, "new peer", session)
	l.LogAddr(WarnLevel, "lost peer", nil)

	records := rec.all()
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if want := "new peer: [2001:db8::1]:5684\n"; records[0].msg != want {
		t.Errorf("msg = %q, want %q", records[0].msg, want)
	}
	if want := "lost peer: (nil)\n"; records[1].msg != want {
		t.Errorf("msg = %q, want %q", records[1].msg, want)
	}
}

func TestLogger_ResetStats(t *testing.T) {
	l, _ := newRecorded(false)
	l.Warn("x\n")
	l.Debug("y\n")

	l.ResetStats()
	if s := l.Stats(); s != (Snapshot{}) {
		t.Errorf("Stats() after reset = %+v", s)
	}
}

func TestLogger_StatsNamesSuppressedAndEmitted(t *testing.T) {
	l, _ := newRecorded(false)

	l.Warn("x\n")
	l.Info("y\n")
	l.Debug("z\n")

	s := l.Stats()
	if s.Emitted != 1 || s.Suppressed != 2 || s.Handled != 1 {
		t.Errorf("Stats() = %+v", s)
	}
}

func ExampleLogger_Logf() {
	l := NewBuilder().
		WithHandler(handler.HandlerFunc(func(level Level, msg []byte) {
			fmt.Printf("[%v] %s", level, msg)
		})).
		WithLevel(NoticeLevel).
		Build()

	l.Logf(NoticeLevel, "handshake with %s complete\n", "peer")
	l.Logf(DebugLevel, "not shown\n")
	// Output:
	// [NOTICE] handshake with peer complete
}

func ExampleLogger_DebugHexDump() {
	l := NewBuilder().
		WithHandler(handler.HandlerFunc(func(_ Level, msg []byte) {
			fmt.Println(strings.TrimRight(string(msg), " \n"))
		})).
		WithLevel(DebugLevel).
		Build()

	l.DebugHexDump("cookie", []byte{0xde, 0xad, 0xbe, 0xef})
	l.DebugDump("cookie", []byte{0xde, 0xad, 0xbe, 0xef})
	// Output:
	// cookie: (4 bytes):
	// 00000000 DE AD BE EF
	// cookie: (4 bytes): DEADBEEF
}
