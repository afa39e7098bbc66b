package prngbench

import (
	"fmt"
	"time"

	"github.com/koykov/prngbench/generator"
	"github.com/koykov/prngbench/rng"
	"github.com/koykov/prngbench/stats"
	"github.com/rs/zerolog"
)

// Timing is a generation latency of the sample.
type Timing struct {
	Volume  int
	Elapsed time.Duration
}

// Result contains generation latency and statistics of the sample.
// Err is set if analysis failed; Stats is zero in that case.
type Result struct {
	Volume  int
	Elapsed time.Duration
	Stats   stats.Stats
	Err     error
}

// Bench generates samples of increasing volumes, times the generation and analyzes samples.
//
// Bench isn't thread-safe.
type Bench struct {
	config   *Config
	analyzer stats.Analyzer
	log      zerolog.Logger
}

// New makes new bench instance using config.
func New(config *Config) (*Bench, error) {
	if config == nil {
		return nil, ErrNoConfig
	}
	b := &Bench{config: config.Copy()}
	if err := b.init(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bench) init() error {
	c := b.config
	if len(c.Key) == 0 {
		c.Key = defaultKey
	}
	if c.Seed == 0 {
		c.Seed = defaultSeed
	}
	if c.Min == 0 && c.Max == 0 {
		c.Min, c.Max = defaultMin, defaultMax
	}
	if c.Max <= c.Min {
		return fmt.Errorf("%w: [%d, %d)", generator.ErrBadBounds, c.Min, c.Max)
	}
	if len(c.Volumes) == 0 {
		c.Volumes = append([]int(nil), defaultVolumes...)
	}
	for _, v := range c.Volumes {
		if v <= 0 {
			return fmt.Errorf("%w: %d", ErrBadVolume, v)
		}
	}
	if c.Bins == 0 {
		c.Bins = defaultBins
	}
	b.analyzer = stats.Analyzer{Min: c.Min, Max: c.Max, Bins: c.Bins}
	if err := b.analyzer.Validate(); err != nil {
		return err
	}

	if c.Clock == nil {
		c.Clock = nativeClock{}
	}
	if c.MetricsWriter == nil {
		c.MetricsWriter = DummyMetrics{}
	}
	b.log = zerolog.Nop()
	if c.Logger != nil {
		b.log = c.Logger.With().Str("key", c.Key).Logger()
	}
	return nil
}

// Volumes returns sample volumes in order of generation.
func (b *Bench) Volumes() []int {
	return b.config.Volumes
}

// Baseline times generation of general purpose random source seeded from the clock.
// Samples aren't analyzed.
func (b *Bench) Baseline() ([]Timing, error) {
	g, err := generator.NewBaseline(rng.NewSeeded(b.config.Clock), b.config.Min, b.config.Max)
	if err != nil {
		return nil, err
	}
	label := generator.KindBaseline.Label()
	ts := make([]Timing, 0, len(b.config.Volumes))
	for _, vol := range b.config.Volumes {
		_, elapsed := b.generate(g, vol)
		b.config.MetricsWriter.GenerateDone(b.config.Key, label, vol, elapsed)
		b.log.Debug().Str("gen", label).Int("volume", vol).Dur("elapsed", elapsed).Msg("sample generated")
		ts = append(ts, Timing{Volume: vol, Elapsed: elapsed})
	}
	return ts, nil
}

// Run generates and analyzes samples using generator of given kind.
func (b *Bench) Run(kind generator.Kind) ([]Result, error) {
	g, err := generator.New(kind, b.config.Seed, b.config.Min, b.config.Max)
	if err != nil {
		return nil, err
	}
	return b.RunWith(kind.Label(), g)
}

// RunWith generates and analyzes samples drawn from g.
//
// Every sample is analyzed right after generation and then dropped. Analysis error doesn't stop the run, it stores
// in corresponding Result.
func (b *Bench) RunWith(name string, g generator.Interface) ([]Result, error) {
	if g == nil {
		return nil, ErrNoGenerator
	}
	mw := b.config.MetricsWriter
	rs := make([]Result, 0, len(b.config.Volumes))
	for _, vol := range b.config.Volumes {
		sample, elapsed := b.generate(g, vol)
		mw.GenerateDone(b.config.Key, name, vol, elapsed)
		b.log.Debug().Str("gen", name).Int("volume", vol).Dur("elapsed", elapsed).Msg("sample generated")

		r := Result{Volume: vol, Elapsed: elapsed}
		if r.Stats, r.Err = b.analyzer.Analyze(sample); r.Err != nil {
			mw.AnalyzeFail(b.config.Key, name, vol, r.Err)
			b.log.Warn().Err(r.Err).Str("gen", name).Int("volume", vol).Msg("sample analysis failed")
		} else {
			mw.AnalyzeDone(b.config.Key, name, r.Stats)
			b.log.Debug().Str("gen", name).Int("volume", vol).
				Float64("mean", r.Stats.Mean).
				Float64("stddev", r.Stats.StdDev).
				Float64("criterion", r.Stats.Criterion).
				Msg("sample analyzed")
		}
		rs = append(rs, r)
	}
	return rs, nil
}

func (b *Bench) generate(g generator.Interface, volume int) ([]int, time.Duration) {
	sample := make([]int, volume)
	start := b.config.Clock.Now()
	for i := range sample {
		sample[i] = g.Next()
	}
	return sample, b.config.Clock.Now().Sub(start)
}
