package stats

import (
	"fmt"
	"math"
	"math/bits"
)

const (
	defaultMin  = 0
	defaultMax  = 10000
	defaultBins = 10
)

// Analyzer computes statistics of samples drawn from range [Min, Max).
//
// Uniformity criterion splits the range to Bins equal-width bins, counts values n_i in each bin and computes
//
//	sum(n_i^2 * Bins) / N - N
//
// It's a simplified score and not a Pearson chi-square. Perfectly uniform sample gives zero.
//
// Zero value analyzer uses 10 bins over [0, 10000), thus each bin has width 1000.
type Analyzer struct {
	Min, Max int
	Bins     uint
}

var defaultAnalyzer = Analyzer{Min: defaultMin, Max: defaultMax, Bins: defaultBins}

// Analyze computes statistics with default analyzer.
func Analyze(sample []int) (Stats, error) {
	return defaultAnalyzer.Analyze(sample)
}

// Validate checks analyzer params (defaults applied).
func (a Analyzer) Validate() error {
	_, err := a.norm()
	return err
}

// Analyze computes statistics of the sample.
//
// Sample must be non-empty and all values must belong to [Min, Max).
func (a Analyzer) Analyze(sample []int) (st Stats, err error) {
	if a, err = a.norm(); err != nil {
		return
	}
	n := len(sample)
	if n == 0 {
		err = ErrEmptySample
		return
	}

	var (
		w      = uint64(a.Max) - uint64(a.Min)
		counts = make([]int64, a.Bins)
		sum    float64
	)
	for i, v := range sample {
		if v < a.Min || v >= a.Max {
			err = fmt.Errorf("%w: %d at position %d, need [%d, %d)", ErrOutOfRange, v, i, a.Min, a.Max)
			return
		}
		sum += float64(v)
		// off*bins/w < bins, so quotient never overflows.
		hi, lo := bits.Mul64(uint64(v)-uint64(a.Min), uint64(a.Bins))
		idx, _ := bits.Div64(hi, lo, w)
		counts[idx]++
	}

	fn := float64(n)
	st.Volume = n
	st.Mean = sum / fn

	var dev float64
	for _, v := range sample {
		d := float64(v) - st.Mean
		dev += d * d
	}
	st.StdDev = math.Sqrt(dev / fn)

	if st.Mean == 0 {
		st.CV = math.NaN()
	} else {
		st.CV = st.StdDev / st.Mean
	}

	var xi float64
	bins := int64(a.Bins)
	for _, c := range counts {
		xi += float64(c * c * bins)
	}
	st.Criterion = xi/fn - fn
	return
}

func (a Analyzer) norm() (Analyzer, error) {
	if a.Min == 0 && a.Max == 0 {
		a.Min, a.Max = defaultMin, defaultMax
	}
	if a.Bins == 0 {
		a.Bins = defaultBins
	}
	if a.Max <= a.Min || uint64(a.Bins) > uint64(a.Max)-uint64(a.Min) {
		return a, fmt.Errorf("%w: [%d, %d) with %d bins", ErrBadAnalyzer, a.Min, a.Max, a.Bins)
	}
	return a, nil
}
