package colstore

import (
	"log/slog"

	"github.com/hupe1980/colstore/column"
	"github.com/hupe1980/colstore/resource"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	controller       *resource.Controller
	initialCapacity  int
	name             string
}

// Option configures a table.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring appends
// and growth. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &colstore.BasicMetricsCollector{}
//	t := colstore.NewTable2[float64, int64](colstore.WithMetricsCollector(metrics))
//	// ... use t ...
//	stats := metrics.GetStats()
//	fmt.Printf("Rows: %d, Grows: %d\n", stats.AppendRows, stats.GrowCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for growth and failures.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := colstore.NewJSONLogger(slog.LevelDebug)
//	t := colstore.NewTable1[int32](colstore.WithLogger(logger))
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

// WithResourceController bounds the memory held by column storage.
// Growth steps that would exceed the controller's limit fail with
// ErrResourceExhausted and leave the table unchanged.
// Several tables may share one controller.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithInitialCapacity sets the row capacity of the first growth step.
// Storage is still allocated lazily on the first Append or Reserve.
func WithInitialCapacity(rows int) Option {
	return func(o *options) {
		o.initialCapacity = rows
	}
}

// WithName sets the table name used in log output.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		initialCapacity:  column.DefaultInitialCapacity,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
