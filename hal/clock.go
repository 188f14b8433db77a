package hal

import "time"

// Clock supplies the monotonic timestamps a Timer measures against.
// Implementations must never go backwards; time.Time readings from the
// system clock carry a monotonic component and satisfy this.
type Clock interface {
	Now() time.Time
}

// systemClock is the default Clock, backed by the host monotonic clock.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
