package generator

import (
	"fmt"
	"strings"

	"github.com/koykov/prngbench/rng"
)

// Kind enumerates available generators.
type Kind uint

const (
	KindUnknown Kind = iota
	// KindLCG is a menu option 1.
	KindLCG
	// KindXorShift is a menu option 2.
	KindXorShift
	// KindBaseline is a general purpose source, not available in menu.
	KindBaseline
)

// ParseKind converts menu option or generator name to Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "lcg", "lcprng":
		return KindLCG, nil
	case "2", "xorshift", "xor-shift":
		return KindXorShift, nil
	case "baseline":
		return KindBaseline, nil
	default:
		return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// New makes generator of given kind.
//
// Baseline kind uses seed to make deterministic math/rand source.
func New(kind Kind, seed uint64, min, max int) (Interface, error) {
	switch kind {
	case KindLCG:
		g, err := NewLCG(seed, min, max)
		if err != nil {
			return nil, err
		}
		return g, nil
	case KindXorShift:
		g, err := NewXorShift(seed, min, max)
		if err != nil {
			return nil, err
		}
		return g, nil
	case KindBaseline:
		g, err := NewBaseline(rng.New(int64(seed)), min, max)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
}

func (k Kind) String() string {
	switch k {
	case KindLCG:
		return "LCPRNG"
	case KindXorShift:
		return "XOR-Shift"
	case KindBaseline:
		return "baseline"
	default:
		return "unknown"
	}
}

// Label returns name suitable for logs and metrics labels.
func (k Kind) Label() string {
	switch k {
	case KindLCG:
		return "lcg"
	case KindXorShift:
		return "xorshift"
	case KindBaseline:
		return "baseline"
	default:
		return "unknown"
	}
}
