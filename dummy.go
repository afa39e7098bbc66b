package prngbench

import (
	"time"

	"github.com/koykov/prngbench/stats"
)

// DummyMetrics is a stub metrics writer handler that uses by default and does nothing.
// Need just to reduce checks in code.
type DummyMetrics struct{}

func (DummyMetrics) GenerateDone(_, _ string, _ int, _ time.Duration) {}
func (DummyMetrics) AnalyzeDone(_, _ string, _ stats.Stats)           {}
func (DummyMetrics) AnalyzeFail(_, _ string, _ int, _ error)          {}
