package generator

// Reduction modulus applied after xorshift steps.
const xorshiftMod = 7837654853

// XorShift is a xorshift-like generator.
//
// Each draw applies shifts 11 (left), 13 (right) and 7 (left) XORed into 64-bit state and then reduces the state
// modulo 7837654853. The order of operations is fixed, any reordering changes the sequence.
//
// Zero seed is a fixed point: generator will return min forever.
type XorShift struct {
	seed uint64
	min  int
	span uint64
}

// NewXorShift makes XorShift with initial seed and bounds [min, max).
func NewXorShift(seed uint64, min, max int) (*XorShift, error) {
	w, err := span(min, max)
	if err != nil {
		return nil, err
	}
	return &XorShift{seed: seed, min: min, span: w}, nil
}

func (g *XorShift) Next() int {
	s := g.seed
	s ^= s << 11
	s ^= s >> 13
	s ^= s << 7
	s %= xorshiftMod
	g.seed = s
	return g.min + int(s%g.span)
}

// Seed returns current generator state.
func (g *XorShift) Seed() uint64 {
	return g.seed
}
