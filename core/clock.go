package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock is the time source used for message timestamps. A nil Clock
// means no time source is available.
type Clock func() time.Time

// SystemClock reads the wall clock on every call.
var SystemClock Clock = time.Now

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 500µs. It is safe to call multiple times; the
// goroutine is started exactly once and runs for the lifetime of the
// process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time.Time value.
// StartCoarseClock must have been called before using CoarseNow.
func CoarseNow() time.Time {
	return *coarseNow.Load()
}

// CoarseClock starts the coarse clock and returns it as a Clock.
// Timestamps only carry second resolution, so the cached value is
// always precise enough.
func CoarseClock() Clock {
	StartCoarseClock()
	return CoarseNow
}
