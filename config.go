package prngbench

import "github.com/rs/zerolog"

const (
	// Default run key.
	defaultKey = "prngbench"
	// Default generators seed.
	defaultSeed = 6089
	// Default generators bounds [0, 10000).
	defaultMin = 0
	defaultMax = 10000
	// Default number of uniformity criterion bins.
	defaultBins = 10
)

// Default sample volumes.
var defaultVolumes = []int{100, 500, 1000, 5000, 10000, 50000, 100000, 500000, 1000000, 5000000}

// Config describes bench properties and behavior.
type Config struct {
	// Unique run key. Indicates run in logs and metrics.
	// If this param omit defaultKey ("prngbench") will use instead.
	Key string
	// Initial generators seed.
	// If this param omit defaultSeed (6089) will use instead.
	Seed uint64
	// Generators bounds, Min is inclusive and Max is exclusive.
	// Analysis expects sample values of the same range.
	// If both params omit range [0, 10000) will use instead.
	Min, Max int
	// Sample volumes to generate and analyze, in order.
	// If this param omit defaultVolumes (100 ... 5000000) will use instead.
	Volumes []int
	// Number of equal-width bins of uniformity criterion.
	// Changing this param changes criterion values, so it isn't comparable with default runs.
	// If this param omit defaultBins (10) will use instead.
	Bins uint

	// Clock represents clock keeper.
	// If this param omit nativeClock will use instead (see clock.go).
	Clock Clock

	// Metrics writer handler.
	MetricsWriter MetricsWriter

	// Logger handler.
	// If this param omit logging will be disabled.
	Logger *zerolog.Logger
}

// Copy copies config instance to protect bench from changing params after start.
// It means that after bench init all config modifications will have no effect.
func (c *Config) Copy() *Config {
	cpy := *c
	if c.Volumes != nil {
		cpy.Volumes = append([]int(nil), c.Volumes...)
	}
	return &cpy
}
