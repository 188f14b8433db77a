package hal

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Microsecond is the canonical internal time unit for countdown timers.
type Microsecond uint64

// Millisecond is a duration expressed in milliseconds.
type Millisecond uint64

// Second is a duration expressed in seconds.
type Second uint64

// Duration is a duration tagged with its unit. Timer.Start accepts any
// Duration and normalizes it to microseconds before arming.
type Duration interface {
	// Microseconds returns the duration as a microsecond count.
	// Conversion is exact; overflow for absurdly large inputs wraps
	// per uint64 semantics.
	Microseconds() Microsecond
}

// Microseconds returns the value unchanged.
func (us Microsecond) Microseconds() Microsecond {
	return us
}

// Microseconds converts milliseconds to microseconds.
func (ms Millisecond) Microseconds() Microsecond {
	return Microsecond(ms) * 1_000
}

// Microseconds converts seconds to microseconds.
func (s Second) Microseconds() Microsecond {
	return Microsecond(s) * 1_000_000
}

// std converts a microsecond count to a time.Duration.
func (us Microsecond) std() time.Duration {
	return time.Duration(us) * time.Microsecond
}

// Us widens any unsigned integer to a Microsecond value.
func Us[T constraints.Unsigned](n T) Microsecond {
	return Microsecond(n)
}

// Ms widens any unsigned integer to a Millisecond value.
func Ms[T constraints.Unsigned](n T) Millisecond {
	return Millisecond(n)
}

// Sec widens any unsigned integer to a Second value.
func Sec[T constraints.Unsigned](n T) Second {
	return Second(n)
}
