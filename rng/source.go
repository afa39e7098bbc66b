package rng

import (
	"math/rand"
	"time"
)

// Clock represents time source to seed from.
type Clock interface {
	Now() time.Time
}

// New makes deterministic RNG seeded with given value.
func New(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}

// NewSeeded makes RNG seeded with current time of the clock.
// If clock omit time.Now will use instead.
func NewSeeded(clock Clock) RNG {
	now := time.Now()
	if clock != nil {
		now = clock.Now()
	}
	return New(now.UnixNano())
}
