package stats

import "math"

// Stats contains descriptive statistics of the sample.
type Stats struct {
	// Sample volume.
	Volume int
	// Arithmetic mean.
	Mean float64
	// Population standard deviation (divisor is volume, not volume-1).
	StdDev float64
	// Coefficient of variation, StdDev to Mean ratio.
	// NaN if mean is zero, see CVDefined.
	CV float64
	// Uniformity criterion, see Analyzer.
	Criterion float64
}

// CVDefined checks if coefficient of variation has a finite value.
func (s Stats) CVDefined() bool {
	return !math.IsNaN(s.CV) && !math.IsInf(s.CV, 0)
}
