package generator

const (
	lcgMul = 19004983
	lcgInc = 19004989
)

// LCG is a linear-congruential-like generator (LCPRNG).
//
// Each draw performs one multiply-add step in 32-bit space:
//
//	seed = uint32(seed) * 19004983 + 19004989
//
// The state field is wider than 32 bits, but the recurrence deliberately truncates on every step.
type LCG struct {
	seed uint64
	min  int
	span uint64
}

// NewLCG makes LCG with initial seed and bounds [min, max).
func NewLCG(seed uint64, min, max int) (*LCG, error) {
	w, err := span(min, max)
	if err != nil {
		return nil, err
	}
	return &LCG{seed: seed, min: min, span: w}, nil
}

func (g *LCG) Next() int {
	g.seed = uint64(uint32(g.seed)*lcgMul + lcgInc)
	return g.min + int(g.seed%g.span)
}

// Seed returns current generator state.
func (g *LCG) Seed() uint64 {
	return g.seed
}
