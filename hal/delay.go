// Package hal provides host-side timing primitives for peripheral driver
// code: blocking delays and a pollable countdown timer. Delays and timer
// deadlines are lower bounds; the host scheduler may run past them.
package hal

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Delay issues blocking delays to the calling goroutine. It carries no
// state; values may be shared, copied or recreated freely.
type Delay struct{}

// NewDelay constructs a new Delay.
func NewDelay() Delay {
	return Delay{}
}

// DelayMs blocks the calling goroutine for at least ms milliseconds.
// There is no cancellation; the call returns only after the delay elapses.
func (Delay) DelayMs(ms uint64) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// DelayUs blocks the calling goroutine for at least us microseconds.
// Sub-scheduler-tick precision is not guaranteed.
func (Delay) DelayUs(us uint64) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}

// SleepMs blocks for at least ms milliseconds. The count may be any
// unsigned width; it is widened to 64 bits before use.
func SleepMs[T constraints.Unsigned](ms T) {
	Delay{}.DelayMs(uint64(ms))
}

// SleepUs blocks for at least us microseconds. The count may be any
// unsigned width; it is widened to 64 bits before use.
func SleepUs[T constraints.Unsigned](us T) {
	Delay{}.DelayUs(uint64(us))
}
