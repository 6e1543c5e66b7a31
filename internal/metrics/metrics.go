// Package metrics provides Prometheus metrics for the host and its components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"myapp/internal/component"
)

// Default histogram buckets for request latency.
var defaultBuckets = []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1}

// Metrics holds all Prometheus metric collectors for the application.
type Metrics struct {
	Registry *prometheus.Registry

	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	ComponentInvocations *prometheus.CounterVec
}

// New creates a Metrics instance with a custom registry and all collectors registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		Registry: reg,

		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "myapp_http_requests_total",
			Help: "Total inbound HTTP requests.",
		}, []string{"method", "status_code", "component"}),

		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "myapp_http_request_duration_seconds",
			Help:    "Inbound HTTP request latency in seconds.",
			Buckets: defaultBuckets,
		}, []string{"method", "status_code", "component"}),

		RequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "myapp_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed.",
		}),

		ComponentInvocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "myapp_component_invocations_total",
			Help: "Total component invocations by component ID.",
		}, []string{"component"}),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.RequestsInFlight,
		m.ComponentInvocations,
	)

	return m
}

// knownMethods lists the allowed HTTP method label values (bounded cardinality).
var knownMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "DELETE": true,
	"PATCH": true, "HEAD": true, "OPTIONS": true,
}

// NormalizeMethod returns a bounded HTTP method label for Prometheus metrics.
// Non-standard methods are mapped to "other" to prevent cardinality explosion.
func NormalizeMethod(method string) string {
	if knownMethods[method] {
		return method
	}
	return "other"
}

// NormalizeComponent returns a bounded component label. Requests not served
// by a shipped component (health, metrics, 404s) are labeled "host".
func NormalizeComponent(id string) string {
	for _, known := range component.IDs() {
		if id == known {
			return id
		}
	}
	return "host"
}
