package rng

// RNG is a bounded source of baseline generator.
type RNG interface {
	// Int63n returns value of [0, n).
	Int63n(n int64) int64
}
