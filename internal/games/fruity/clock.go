package fruity

import "time"

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop cancels the callback. Returns false if it already fired or was stopped.
	Stop() bool
}

// Clock schedules deferred work and reports the current time.
// The controller uses it for the countdown and the mismatch settle delay,
// so tests can drive both deterministically.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

// SystemClock is the wall-clock implementation backed by time.AfterFunc.
type SystemClock struct{}

// AfterFunc runs f on its own goroutine after d.
func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
