package animation

import "time"

// Clock is the time source a [Move] polls its progress against. The default
// uses system time; hosts driving fixed-rate frames and tests inject their
// own via SetClock so repositioning advances deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source behind every in-flight move.
var clock Clock = realClock{}

// SetClock replaces the time source moves are polled against. Returns the
// previous clock so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
