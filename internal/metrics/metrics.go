// Package metrics exposes Prometheus collectors for the HTTP layer and the store.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its registry; every app built in a process gets its own.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestDuration *prometheus.HistogramVec
	httpRequestsTotal   *prometheus.CounterVec
	favoriteEventsTotal *prometheus.CounterVec
}

// New registers the collectors on a fresh registry, together with the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method", "status_code"}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"path", "method", "status_code"}),
		favoriteEventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "favorite_events_published_total",
			Help: "Favorite events handed to the publisher.",
		}, []string{"event", "result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestDuration,
		m.httpRequestsTotal,
		m.favoriteEventsTotal,
	)
	return m
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(path, method string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequestDuration.WithLabelValues(path, method, code).Observe(duration.Seconds())
	m.httpRequestsTotal.WithLabelValues(path, method, code).Inc()
}

// ObserveFavoriteEvent records a publish attempt; result is "ok" or "error".
func (m *Metrics) ObserveFavoriteEvent(event string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.favoriteEventsTotal.WithLabelValues(event, result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
