package prometheus

import (
	"strconv"
	"time"

	"github.com/koykov/prngbench/stats"
	"github.com/prometheus/client_golang/prometheus"
)

// Writer is a Prometheus implementation of prngbench.MetricsWriter.
type Writer struct {
	genTime   *prometheus.HistogramVec
	samples   *prometheus.CounterVec
	fails     *prometheus.CounterVec
	mean      *prometheus.GaugeVec
	stddev    *prometheus.GaugeVec
	cv        *prometheus.GaugeVec
	criterion *prometheus.GaugeVec
}

// NewWriter makes metrics writer and registers its collectors in reg.
// If reg is nil prometheus.DefaultRegisterer will use instead.
func NewWriter(reg prometheus.Registerer) *Writer {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	w := &Writer{}
	w.genTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "prngbench_generate_seconds",
		Help:    "Sample generation latency.",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 14),
	}, []string{"key", "gen"})
	w.samples = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "prngbench_samples_total",
		Help: "How many samples were generated.",
	}, []string{"key", "gen"})
	w.fails = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "prngbench_analyze_fails_total",
		Help: "How many samples failed analysis.",
	}, []string{"key", "gen"})

	w.mean = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "prngbench_sample_mean",
		Help: "Sample arithmetic mean.",
	}, []string{"key", "gen", "volume"})
	w.stddev = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "prngbench_sample_stddev",
		Help: "Sample population standard deviation.",
	}, []string{"key", "gen", "volume"})
	w.cv = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "prngbench_sample_cv",
		Help: "Sample coefficient of variation. NaN if mean is zero.",
	}, []string{"key", "gen", "volume"})
	w.criterion = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "prngbench_sample_criterion",
		Help: "Sample uniformity criterion.",
	}, []string{"key", "gen", "volume"})

	reg.MustRegister(w.genTime, w.samples, w.fails, w.mean, w.stddev, w.cv, w.criterion)
	return w
}

func (w *Writer) GenerateDone(key, gen string, _ int, elapsed time.Duration) {
	w.samples.WithLabelValues(key, gen).Inc()
	w.genTime.WithLabelValues(key, gen).Observe(elapsed.Seconds())
}

func (w *Writer) AnalyzeDone(key, gen string, st stats.Stats) {
	vol := strconv.Itoa(st.Volume)
	w.mean.WithLabelValues(key, gen, vol).Set(st.Mean)
	w.stddev.WithLabelValues(key, gen, vol).Set(st.StdDev)
	w.cv.WithLabelValues(key, gen, vol).Set(st.CV)
	w.criterion.WithLabelValues(key, gen, vol).Set(st.Criterion)
}

func (w *Writer) AnalyzeFail(key, gen string, _ int, _ error) {
	w.fails.WithLabelValues(key, gen).Inc()
}
