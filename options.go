package mstledger

import (
	"log/slog"

	"github.com/hupe1980/mstledger/record"
)

// DefaultLoadConcurrency bounds the logs LoadMany reads at once.
const DefaultLoadConcurrency = 4

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	warningHandler   func(record.Warning)
	loadConcurrency  int
}

// Option configures a Ledger.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for ledger operations.
// Pass nil to disable metrics collection.
//
//	metrics := &mstledger.BasicMetricsCollector{}
//	l := mstledger.New(store, mstledger.WithMetricsCollector(metrics))
//	// ... use l ...
//	stats := metrics.GetStats()
//	fmt.Printf("Loads: %d, Adds: %d (%d changed)\n", stats.LoadCount, stats.AddCount, stats.AddChanged)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithWarningHandler receives every warning of the records added through the
// ledger, in addition to the warn-level log line.
func WithWarningHandler(fn func(record.Warning)) Option {
	return func(o *options) {
		o.warningHandler = fn
	}
}

// WithLoadConcurrency bounds the logs LoadMany reads at once.
func WithLoadConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.loadConcurrency = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		loadConcurrency:  DefaultLoadConcurrency,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
