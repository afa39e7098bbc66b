package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	vm "github.com/VictoriaMetrics/metrics"
	"github.com/koykov/prngbench"
	"github.com/koykov/prngbench/generator"
	"github.com/koykov/prngbench/logger"
	mlog "github.com/koykov/prngbench/metrics/log"
	mprom "github.com/koykov/prngbench/metrics/prometheus"
	"github.com/koykov/prngbench/metrics/victoria"
	"github.com/koykov/prngbench/sysinfo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2

	prompt        = "What generator do you want: LCPRNG - print 1, XOR-Shift - print 2"
	baselineTitle = "Time with Go math/rand generator"
)

var (
	errBadMetrics = errors.New("unknown metrics writer")
	errBadVolumes = errors.New("invalid volumes list")
	errZeroSeed   = errors.New("seed must be greater than zero")
)

type options struct {
	gen         string
	seed        uint64
	out         string
	logLevel    string
	logJSON     bool
	metrics     string
	metricsAddr string
	sysinfo     bool
	volumes     []int
}

// volumesFlag parses comma separated list of sample volumes.
type volumesFlag []int

func (v *volumesFlag) String() string {
	if v == nil {
		return ""
	}
	ss := make([]string, 0, len(*v))
	for _, n := range *v {
		ss = append(ss, strconv.Itoa(n))
	}
	return strings.Join(ss, ",")
}

func (v *volumesFlag) Set(value string) error {
	*v = (*v)[:0]
	for _, s := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %q", errBadVolumes, s)
		}
		*v = append(*v, n)
	}
	return nil
}

func parseOptions(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	var o options
	fs := flag.NewFlagSet("prngbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.gen, "gen", "", "Generator to use: 1 (LCPRNG) or 2 (XOR-Shift). Asks interactively if omitted")
	fs.Uint64Var(&o.seed, "seed", 6089, "Initial generator seed, must be non-zero")
	fs.StringVar(&o.out, "out", "", "Also write the report to the file")
	fs.StringVar(&o.logLevel, "loglevel", "warn", "Log level: debug, info, warn, error or quiet")
	fs.BoolVar(&o.logJSON, "logjson", false, "Write logs as JSON")
	fs.StringVar(&o.metrics, "metrics", "none", "Metrics writer: none, log, prometheus or victoria")
	fs.StringVar(&o.metricsAddr, "metrics-addr", "", "Serve /metrics on the address after the run until interrupted")
	fs.BoolVar(&o.sysinfo, "sysinfo", true, "Print host info before the run")
	var vols volumesFlag
	fs.Var(&vols, "volumes", "Comma separated sample volumes (default 100,500,...,5000000)")
	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	o.volumes = vols
	if o.seed == 0 {
		// Zero seed in config means default seed, so it can't be passed through.
		fmt.Fprintln(stderr, errZeroSeed)
		fs.Usage()
		return nil, fs, errZeroSeed
	}
	return &o, fs, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, fs, err := parseOptions(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	log, err := logger.New(opts.logLevel, opts.logJSON, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return exitUsage
	}

	reg := prometheus.NewRegistry()
	mw, err := newMetricsWriter(opts.metrics, log, reg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return exitUsage
	}

	var out io.Writer = stdout
	if len(opts.out) > 0 {
		f, err := os.Create(opts.out)
		if err != nil {
			log.Error().Err(err).Str("path", opts.out).Msg("cannot create output file")
			return exitFail
		}
		defer func() { _ = f.Close() }()
		out = io.MultiWriter(stdout, f)
	}

	b, err := prngbench.New(&prngbench.Config{
		Seed:          opts.seed,
		Volumes:       opts.volumes,
		MetricsWriter: mw,
		Logger:        &log,
	})
	if err != nil {
		log.Error().Err(err).Msg("bench init failed")
		return exitFail
	}

	rep := prngbench.NewReport(out)
	if opts.sysinfo {
		if err = sysinfo.Collect().Write(out); err != nil {
			log.Error().Err(err).Msg("report write failed")
			return exitFail
		}
	}

	ts, err := b.Baseline()
	if err != nil {
		log.Error().Err(err).Msg("baseline failed")
		return exitFail
	}
	rep.Baseline(baselineTitle, ts)

	choice := opts.gen
	if len(choice) == 0 {
		fmt.Fprintln(stdout, prompt)
		if _, err = fmt.Fscan(stdin, &choice); err != nil {
			fmt.Fprintf(stderr, "no generator chosen: %s\n", err)
			return exitUsage
		}
		fmt.Fprintln(stdout)
	}
	kind, err := menuKind(choice)
	if err != nil {
		fmt.Fprintf(stderr, "%s\nusage: enter 1 for LCPRNG or 2 for XOR-Shift\n", err)
		return exitUsage
	}

	rs, err := b.Run(kind)
	if err != nil {
		log.Error().Err(err).Str("gen", kind.Label()).Msg("run failed")
		return exitFail
	}
	rep.Samples(rs)
	if err = rep.Err(); err != nil {
		log.Error().Err(err).Msg("report write failed")
		return exitFail
	}

	if len(opts.metricsAddr) > 0 {
		if err = serveMetrics(opts.metricsAddr, opts.metrics, reg, log); err != nil {
			log.Error().Err(err).Str("addr", opts.metricsAddr).Msg("metrics server failed")
			return exitFail
		}
	}
	return exitOK
}

// menuKind accepts only generators available in menu.
func menuKind(choice string) (generator.Kind, error) {
	kind, err := generator.ParseKind(choice)
	if err != nil {
		return kind, err
	}
	if kind != generator.KindLCG && kind != generator.KindXorShift {
		return generator.KindUnknown, fmt.Errorf("%w: %q isn't available in menu", generator.ErrUnknownKind, choice)
	}
	return kind, nil
}

func newMetricsWriter(name string, log zerolog.Logger, reg prometheus.Registerer) (prngbench.MetricsWriter, error) {
	switch name {
	case "", "none":
		return prngbench.DummyMetrics{}, nil
	case "log":
		return mlog.NewWriter(log), nil
	case "prometheus":
		return mprom.NewWriter(reg), nil
	case "victoria":
		return victoria.NewWriter(victoria.WithPrecision(time.Microsecond)), nil
	default:
		return nil, fmt.Errorf("%w: %q", errBadMetrics, name)
	}
}

func serveMetrics(addr, writer string, reg prometheus.Gatherer, log zerolog.Logger) error {
	var h http.Handler
	if writer == "victoria" {
		h = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			vm.WritePrometheus(w, false)
		})
	} else {
		h = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	srv := &http.Server{Addr: addr, Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}()

	log.Warn().Str("addr", addr).Msg("serving metrics, interrupt to exit")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
