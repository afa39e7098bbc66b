package prngbench

import (
	"fmt"
	"io"
	"strconv"

	"github.com/koykov/prngbench/stats"
)

// Report writes human-readable bench output.
//
// Write errors are sticky: after first failure all further writes are skipped, see Err.
type Report struct {
	w   io.Writer
	err error
}

// NewReport makes report over w.
func NewReport(w io.Writer) *Report {
	return &Report{w: w}
}

// Baseline writes title and generation timings of baseline source followed by separator.
func (r *Report) Baseline(title string, ts []Timing) {
	r.printf("%s\n", title)
	for i := range ts {
		r.printf("Generation time for volume of\t%d\t%d\n", ts[i].Volume, ts[i].Elapsed.Microseconds())
	}
	r.printf("\n\n\n")
}

// Samples writes generation timings of all samples and then statistics blocks.
func (r *Report) Samples(rs []Result) {
	for i := range rs {
		r.printf("The time for array with volume %d\t%d\n", rs[i].Volume, rs[i].Elapsed.Microseconds())
	}
	for i := range rs {
		if rs[i].Err != nil {
			r.printf("Volume %d\n\n", rs[i].Volume)
			r.printf("Analysis failed: %s\n\n", rs[i].Err)
			continue
		}
		r.Stats(rs[i].Stats)
	}
}

// Stats writes statistics block of single sample.
func (r *Report) Stats(st stats.Stats) {
	r.printf("Volume %d\n\n", st.Volume)
	r.printf("Mean %s\n\n", formatFloat(st.Mean))
	r.printf("Standard deviation %s\n\n", formatFloat(st.StdDev))
	cv := "undefined"
	if st.CVDefined() {
		cv = formatFloat(st.CV)
	}
	r.printf("Coefficient of variation %s\n\n", cv)
	r.printf("___Value of criterion is %s___\n\n", formatFloat(st.Criterion))
}

// Err returns first write error.
func (r *Report) Err() error {
	return r.err
}

func (r *Report) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// formatFloat mimics default iostream formatting: 6 significant digits, shortest notation.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
