// Package prometheus exports table metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, err := colprom.NewCollector(colprom.Config{Registerer: reg})
//	t := colstore.NewTable2[float64, int64](colstore.WithMetricsCollector(mc))
package prometheus

import (
	"errors"
	"fmt"

	"github.com/hupe1980/colstore"
	prom "github.com/prometheus/client_golang/prometheus"
)

// ErrRegistrationFailed is returned when a metric cannot be registered.
var ErrRegistrationFailed = errors.New("metric registration failed")

// DefaultGrowBuckets are the histogram buckets for grown bytes: 1 KiB to 1 GiB.
var DefaultGrowBuckets = prom.ExponentialBuckets(1024, 4, 11)

// Config configures a Collector.
type Config struct {
	// Namespace prefixes every metric name. Default: "colstore".
	Namespace string

	// Subsystem is inserted between namespace and name. Optional.
	Subsystem string

	// Registerer receives the metrics. Default: prometheus.DefaultRegisterer.
	Registerer prom.Registerer

	// ConstLabels are attached to every metric, e.g. {"table": "ticks"}.
	ConstLabels prom.Labels

	// GrowBuckets are the buckets of the grow_bytes histogram.
	// Default: DefaultGrowBuckets.
	GrowBuckets []float64
}

// Collector implements colstore.MetricsCollector on Prometheus metrics.
// It is safe for concurrent use and may be shared by several tables.
type Collector struct {
	appends       *prom.CounterVec
	rows          prom.Counter
	grows         prom.Counter
	growBytes     prom.Histogram
	capacity      prom.Gauge
	reservedBytes prom.Gauge
	releasedBytes prom.Counter
}

var _ colstore.MetricsCollector = (*Collector)(nil)

// NewCollector creates the metrics and registers them on cfg.Registerer.
func NewCollector(cfg Config) (*Collector, error) {
	if cfg.Namespace == "" {
		cfg.Namespace = "colstore"
	}
	if cfg.Registerer == nil {
		cfg.Registerer = prom.DefaultRegisterer
	}
	if cfg.GrowBuckets == nil {
		cfg.GrowBuckets = DefaultGrowBuckets
	}

	c := &Collector{
		appends: prom.NewCounterVec(prom.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "appends_total",
			Help:        "Append calls by status",
			ConstLabels: cfg.ConstLabels,
		}, []string{"status"}),
		rows: prom.NewCounter(prom.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "rows_appended_total",
			Help:        "Rows stored by successful appends",
			ConstLabels: cfg.ConstLabels,
		}),
		grows: prom.NewCounter(prom.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "grows_total",
			Help:        "Growth steps that reallocated columns",
			ConstLabels: cfg.ConstLabels,
		}),
		growBytes: prom.NewHistogram(prom.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "grow_bytes",
			Help:        "Bytes reserved by one growth step",
			Buckets:     cfg.GrowBuckets,
			ConstLabels: cfg.ConstLabels,
		}),
		capacity: prom.NewGauge(prom.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "last_grow_capacity_rows",
			Help:        "Row capacity after the most recent growth step",
			ConstLabels: cfg.ConstLabels,
		}),
		reservedBytes: prom.NewGauge(prom.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "reserved_bytes",
			Help:        "Bytes currently held by column storage",
			ConstLabels: cfg.ConstLabels,
		}),
		releasedBytes: prom.NewCounter(prom.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "released_bytes_total",
			Help:        "Bytes released by closed tables",
			ConstLabels: cfg.ConstLabels,
		}),
	}

	// Pre-create both label values so they are exported as zero.
	c.appends.WithLabelValues("ok")
	c.appends.WithLabelValues("error")

	for _, m := range c.collectors() {
		if err := cfg.Registerer.Register(m); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
		}
	}
	return c, nil
}

// MustNewCollector is like NewCollector but panics on error.
func MustNewCollector(cfg Config) *Collector {
	c, err := NewCollector(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Collector) collectors() []prom.Collector {
	return []prom.Collector{
		c.appends,
		c.rows,
		c.grows,
		c.growBytes,
		c.capacity,
		c.reservedBytes,
		c.releasedBytes,
	}
}

// Unregister removes the metrics from reg.
func (c *Collector) Unregister(reg prom.Registerer) {
	for _, m := range c.collectors() {
		reg.Unregister(m)
	}
}

// RecordAppend implements colstore.MetricsCollector.
func (c *Collector) RecordAppend(rows int, err error) {
	if err != nil {
		c.appends.WithLabelValues("error").Inc()
		return
	}
	c.appends.WithLabelValues("ok").Inc()
	c.rows.Add(float64(rows))
}

// RecordGrow implements colstore.MetricsCollector.
func (c *Collector) RecordGrow(_, newCap int, bytes int64) {
	c.grows.Inc()
	c.growBytes.Observe(float64(bytes))
	c.capacity.Set(float64(newCap))
	c.reservedBytes.Add(float64(bytes))
}

// RecordClose implements colstore.MetricsCollector.
func (c *Collector) RecordClose(bytes int64) {
	c.reservedBytes.Sub(float64(bytes))
	c.releasedBytes.Add(float64(bytes))
}
