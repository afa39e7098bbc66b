package victoria

import (
	"strconv"
	"time"

	"github.com/koykov/prngbench/stats"
	"github.com/koykov/vmchain"
)

type Writer interface {
	GenerateDone(key, gen string, volume int, elapsed time.Duration)
	AnalyzeDone(key, gen string, st stats.Stats)
	AnalyzeFail(key, gen string, volume int, err error)
}

// writer is a VictoriaMetrics implementation of prngbench.MetricsWriter.
type writer struct {
	prec time.Duration
}

// NewWriter makes a new instance of metrics writer.
func NewWriter(options ...Option) Writer {
	mw := &writer{}
	for _, fn := range options {
		fn(mw)
	}
	if mw.prec == 0 {
		mw.prec = time.Nanosecond
	}
	return mw
}

func (w writer) GenerateDone(key, gen string, _ int, elapsed time.Duration) {
	vmchain.Counter("prngbench_samples_total").WithLabel("key", key).WithLabel("gen", gen).Inc()
	vmchain.Histogram("prngbench_generate_duration").WithLabel("key", key).WithLabel("gen", gen).Update(float64(elapsed.Nanoseconds() / int64(w.prec)))
}

func (w writer) AnalyzeDone(key, gen string, st stats.Stats) {
	vol := strconv.Itoa(st.Volume)
	vmchain.Gauge("prngbench_sample_mean", nil).WithLabel("key", key).WithLabel("gen", gen).WithLabel("volume", vol).Set(st.Mean)
	vmchain.Gauge("prngbench_sample_stddev", nil).WithLabel("key", key).WithLabel("gen", gen).WithLabel("volume", vol).Set(st.StdDev)
	if st.CVDefined() {
		vmchain.Gauge("prngbench_sample_cv", nil).WithLabel("key", key).WithLabel("gen", gen).WithLabel("volume", vol).Set(st.CV)
	}
	vmchain.Gauge("prngbench_sample_criterion", nil).WithLabel("key", key).WithLabel("gen", gen).WithLabel("volume", vol).Set(st.Criterion)
}

func (w writer) AnalyzeFail(key, gen string, _ int, _ error) {
	vmchain.Counter("prngbench_analyze_fails_total").WithLabel("key", key).WithLabel("gen", gen).Inc()
}
