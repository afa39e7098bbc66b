package prngbench

import (
	"time"

	"github.com/koykov/prngbench/stats"
)

// MetricsWriter is an interface of bench metrics handler.
// See implementations in metrics/ directory.
type MetricsWriter interface {
	// GenerateDone registers generation of sample of given volume.
	GenerateDone(key, gen string, volume int, elapsed time.Duration)
	// AnalyzeDone registers statistics of the sample.
	AnalyzeDone(key, gen string, st stats.Stats)
	// AnalyzeFail registers failed analysis of the sample.
	AnalyzeFail(key, gen string, volume int, err error)
}
