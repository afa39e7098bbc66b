package generator

import "github.com/koykov/prngbench/rng"

// Baseline draws values from general purpose random source.
// Uses as reference point in generation timing only.
type Baseline struct {
	src  rng.RNG
	min  int
	span int64
}

// NewBaseline makes Baseline over src with bounds [min, max).
func NewBaseline(src rng.RNG, min, max int) (*Baseline, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	w, err := span63(min, max)
	if err != nil {
		return nil, err
	}
	return &Baseline{src: src, min: min, span: w}, nil
}

func (g *Baseline) Next() int {
	return g.min + int(g.src.Int63n(g.span))
}
