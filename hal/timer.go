package hal

import (
	"errors"
	"time"
)

// ErrWouldBlock reports that a countdown deadline has not elapsed yet.
// It is a retryable polling signal, not a failure; callers poll Wait
// again later.
var ErrWouldBlock = errors.New("hal: timer deadline not reached")

// Timer is a software countdown timer driven by polling. Start arms a
// deadline relative to now; Wait reports without blocking whether the
// deadline has passed.
//
// A Timer is owned by a single goroutine and carries only value data, so
// copies are cheap but independent: waiting on a copy does not observe a
// re-arm of the original. Sharing one Timer across goroutines requires
// external synchronization.
type Timer struct {
	clock    Clock
	armedAt  time.Time
	duration Microsecond
}

// NewTimer constructs an idle Timer on the system clock. An idle timer
// has a zero duration, so Wait reports elapsed immediately until Start
// arms a real deadline.
func NewTimer() Timer {
	return NewTimerWithClock(systemClock{})
}

// NewTimerWithClock constructs an idle Timer measuring against clock.
// Used by tests that need deterministic time; production callers want
// NewTimer.
func NewTimerWithClock(clock Clock) Timer {
	return Timer{
		clock:   clock,
		armedAt: clock.Now(),
	}
}

// Start arms the timer with a deadline of timeout from now. Calling
// Start on an already-armed timer discards the previous deadline; there
// is no queueing of pending deadlines.
func (t *Timer) Start(timeout Duration) {
	t.duration = timeout.Microseconds()
	t.armedAt = t.clock.Now()
}

// Wait polls the timer without blocking. It returns nil once the armed
// duration has elapsed and ErrWouldBlock before that; these are the only
// two outcomes. Wait does not re-arm or reset anything: after the
// deadline passes, every subsequent call returns nil until Start is
// called again.
//
// Elapsed time is measured by time.Time subtraction, which uses the
// monotonic clock reading; wall-clock adjustments cannot corrupt a live
// deadline.
func (t *Timer) Wait() error {
	if t.clock.Now().Sub(t.armedAt) >= t.duration.std() {
		return nil
	}
	return ErrWouldBlock
}
