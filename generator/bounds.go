package generator

import (
	"fmt"
	"math"
)

// span checks bounds and returns the width of [min, max) range.
func span(min, max int) (uint64, error) {
	if max <= min {
		return 0, fmt.Errorf("%w: [%d, %d)", ErrBadBounds, min, max)
	}
	// Unsigned subtraction keeps the width exact even if max-min overflows int.
	return uint64(max) - uint64(min), nil
}

func span63(min, max int) (int64, error) {
	w, err := span(min, max)
	if err != nil {
		return 0, err
	}
	if w > math.MaxInt64 {
		return 0, fmt.Errorf("%w: [%d, %d) is too wide", ErrBadBounds, min, max)
	}
	return int64(w), nil
}
