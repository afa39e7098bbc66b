package generator

// Interface describes stateful pseudo-random generator of bounded integers.
//
// Implementations aren't thread-safe, each instance must be used by single caller.
type Interface interface {
	// Next advances generator state and returns the value of [min, max) range.
	Next() int
}
