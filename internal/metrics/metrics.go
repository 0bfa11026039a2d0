// Package metrics exports Prometheus counters for rendered documents and the
// diagnostics raised while rendering them.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sternenseemann/tagwriter"
)

// Render statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Config configures the metrics.
type Config struct {
	// Namespace is the metrics namespace (default: "tagwriter").
	Namespace string

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the metrics.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "tagwriter",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the collectors. Registering twice on the same registry
// panics, so create one Metrics per registry.
type Metrics struct {
	diagnostics    *prometheus.CounterVec
	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
}

// New creates and registers the collectors.
func New(options ...Option) *Metrics {
	config := defaultConfig()
	for _, o := range options {
		o(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		diagnostics: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "diagnostics_total",
			Help:      "Total number of diagnostics raised while writing documents",
		}, []string{"kind"}),

		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "renders_total",
			Help:      "Total number of documents rendered",
		}, []string{"script", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "render_duration_seconds",
			Help:      "Document render duration in seconds",
			Buckets:   config.Buckets,
		}, []string{"script"}),
	}
}

// Reporter returns a tagwriter.Reporter counting diagnostics by kind. It is
// safe to share between Writers in different goroutines.
func (m *Metrics) Reporter() tagwriter.Reporter {
	return tagwriter.ReporterFunc(func(d tagwriter.Diagnostic) {
		kind := d.Kind.Name()
		if kind == "" {
			kind = "unknown"
		}
		m.diagnostics.WithLabelValues(kind).Inc()
	})
}

// ObserveRender records a finished render of script. err is the error
// returned by the render, if any.
func (m *Metrics) ObserveRender(script string, took time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.renders.WithLabelValues(script, status).Inc()
	m.renderDuration.WithLabelValues(script).Observe(took.Seconds())
}
