package prngbench

import "time"

// Clock represents clock interface to get current time.
// Must be monotonic since it measures generation latency.
type Clock interface {
	Now() time.Time
}

type nativeClock struct{}

func (c nativeClock) Now() time.Time {
	return time.Now()
}
