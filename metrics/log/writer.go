package log

import (
	"time"

	"github.com/koykov/prngbench/stats"
	"github.com/rs/zerolog"
)

// Writer is a zerolog implementation of prngbench.MetricsWriter.
// Every event writes as single info record.
type Writer struct {
	l zerolog.Logger
}

// NewWriter makes metrics writer over logger l.
func NewWriter(l zerolog.Logger) *Writer {
	return &Writer{l: l}
}

func (w *Writer) GenerateDone(key, gen string, volume int, elapsed time.Duration) {
	w.l.Info().
		Str("key", key).
		Str("gen", gen).
		Int("volume", volume).
		Int64("elapsed_us", elapsed.Microseconds()).
		Msg("sample generated")
}

func (w *Writer) AnalyzeDone(key, gen string, st stats.Stats) {
	e := w.l.Info().
		Str("key", key).
		Str("gen", gen).
		Int("volume", st.Volume).
		Float64("mean", st.Mean).
		Float64("stddev", st.StdDev).
		Float64("criterion", st.Criterion)
	if st.CVDefined() {
		e = e.Float64("cv", st.CV)
	} else {
		e = e.Str("cv", "undefined")
	}
	e.Msg("sample analyzed")
}

func (w *Writer) AnalyzeFail(key, gen string, volume int, err error) {
	w.l.Error().
		Err(err).
		Str("key", key).
		Str("gen", gen).
		Int("volume", volume).
		Msg("sample analysis failed")
}
