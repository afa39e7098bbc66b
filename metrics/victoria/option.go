package victoria

import "time"

type Option func(writer *writer)

// WithPrecision sets the unit of latency histograms. Nanosecond by default.
func WithPrecision(precision time.Duration) Option {
	return func(writer *writer) {
		writer.prec = precision
	}
}
