package prngbench

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/koykov/prngbench/stats"
)

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("disk full")
}

func TestReport(t *testing.T) {
	t.Run("baseline", func(t *testing.T) {
		var buf bytes.Buffer
		NewReport(&buf).Baseline("Time with test generator", []Timing{
			{100, 1500 * time.Microsecond},
			{500, 2 * time.Millisecond},
		})
		exp := "Time with test generator\n" +
			"Generation time for volume of\t100\t1500\n" +
			"Generation time for volume of\t500\t2000\n" +
			"\n\n\n"
		if buf.String() != exp {
			t.Errorf("baseline mismatch: need %q, got %q", exp, buf.String())
		}
	})
	t.Run("stats", func(t *testing.T) {
		st, err := stats.Analyze([]int{500, 1500, 2500, 3500, 4500, 5500, 6500, 7500, 8500, 9500})
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		NewReport(&buf).Stats(st)
		exp := "Volume 10\n\n" +
			"Mean 5000\n\n" +
			"Standard deviation 2872.28\n\n" +
			"Coefficient of variation 0.574456\n\n" +
			"___Value of criterion is 0___\n\n"
		if buf.String() != exp {
			t.Errorf("stats mismatch: need %q, got %q", exp, buf.String())
		}
	})
	t.Run("undefined cv", func(t *testing.T) {
		var buf bytes.Buffer
		NewReport(&buf).Stats(stats.Stats{Volume: 2, CV: math.NaN(), Criterion: 18})
		exp := "Volume 2\n\n" +
			"Mean 0\n\n" +
			"Standard deviation 0\n\n" +
			"Coefficient of variation undefined\n\n" +
			"___Value of criterion is 18___\n\n"
		if buf.String() != exp {
			t.Errorf("stats mismatch: need %q, got %q", exp, buf.String())
		}
	})
	t.Run("samples", func(t *testing.T) {
		var buf bytes.Buffer
		NewReport(&buf).Samples([]Result{
			{Volume: 1, Elapsed: 3 * time.Microsecond, Err: stats.ErrEmptySample},
			{Volume: 1, Elapsed: 7 * time.Microsecond, Stats: stats.Stats{Volume: 1, Mean: 42, Criterion: 9}},
		})
		exp := "The time for array with volume 1\t3\n" +
			"The time for array with volume 1\t7\n" +
			"Volume 1\n\n" +
			"Analysis failed: sample is empty\n\n" +
			"Volume 1\n\n" +
			"Mean 42\n\n" +
			"Standard deviation 0\n\n" +
			"Coefficient of variation 0\n\n" +
			"___Value of criterion is 9___\n\n"
		if buf.String() != exp {
			t.Errorf("samples mismatch: need %q, got %q", exp, buf.String())
		}
	})
	t.Run("sticky error", func(t *testing.T) {
		w := &failWriter{}
		r := NewReport(w)
		r.Stats(stats.Stats{Volume: 1})
		if r.Err() == nil {
			t.Error("error expected")
		}
		if w.n != 1 {
			t.Errorf("writes after failure: need 1, got %d", w.n)
		}
	})
}

func TestFormatFloat(t *testing.T) {
	stages := []struct {
		f   float64
		exp string
	}{
		{0, "0"},
		{5000, "5000"},
		{4989.5, "4989.5"},
		{0.1, "0.1"},
		{-3.25, "-3.25"},
		{1e6, "1e+06"},
		{123456789, "1.23457e+08"},
		{0.000012345, "1.2345e-05"},
		{2872.2813232690143, "2872.28"},
	}
	for _, stage := range stages {
		if got := formatFloat(stage.f); got != stage.exp {
			t.Errorf("format mismatch: need %s, got %s", stage.exp, got)
		}
	}
}
