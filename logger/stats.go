package logger

import (
	"sync/atomic"
)

// stats tracks what a logger did with the calls it received
type stats struct {
	// calls that passed the level gate and were rendered
	emitted uint64
	// calls rejected by the level gate
	suppressed uint64
	// rendered calls whose output carried the truncation marker
	truncated uint64
	// handler invocations; a hex dump makes several
	handled uint64
}

func (s *stats) incEmitted()    { atomic.AddUint64(&s.emitted, 1) }
func (s *stats) incSuppressed() { atomic.AddUint64(&s.suppressed, 1) }
func (s *stats) incTruncated()  { atomic.AddUint64(&s.truncated, 1) }
func (s *stats) incHandled()    { atomic.AddUint64(&s.handled, 1) }

// Snapshot is a point-in-time copy of a logger's counters
type Snapshot struct {
	// Emitted counts calls that passed the level gate and were rendered
	Emitted uint64
	// Suppressed counts calls rejected by the level gate
	Suppressed uint64
	// Truncated counts rendered calls whose output carried the truncation marker
	Truncated uint64
	// Handled counts handler invocations; a hex dump makes several
	Handled uint64
}

// snapshot returns a snapshot of current statistics
func (s *stats) snapshot() Snapshot {
	return Snapshot{
		Emitted:    atomic.LoadUint64(&s.emitted),
		Suppressed: atomic.LoadUint64(&s.suppressed),
		Truncated:  atomic.LoadUint64(&s.truncated),
		Handled:    atomic.LoadUint64(&s.handled),
	}
}

// reset resets all counters to zero
func (s *stats) reset() {
	atomic.StoreUint64(&s.emitted, 0)
	atomic.StoreUint64(&s.suppressed, 0)
	atomic.StoreUint64(&s.truncated, 0)
	atomic.StoreUint64(&s.handled, 0)
}
