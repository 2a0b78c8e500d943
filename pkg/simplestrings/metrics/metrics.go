// Package metrics provides Prometheus instrumentation for the string service.
//
// Metrics collects HTTP request counts and latencies (it satisfies
// api.MetricsCollector) and tracks the number of stored strings (it satisfies
// simplestrings.EventSink). All operations are safe for concurrent use.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tendant/simple-strings/pkg/simplestrings"
)

const (
	namespace = "simple_strings"
	subsystem = "http"
)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	// RequestsTotal counts requests. Labels: method, route, status
	RequestsTotal *prometheus.CounterVec

	// RequestDurationSeconds measures handler latency. Labels: method, route
	RequestDurationSeconds *prometheus.HistogramVec

	// ResponseBytesTotal counts response body bytes. Labels: method, route
	ResponseBytesTotal *prometheus.CounterVec

	// StoredStrings tracks how many records the store holds
	StoredStrings prometheus.Gauge

	// EventsTotal counts lifecycle events. Labels: event (created, deleted)
	EventsTotal *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them with reg. A nil reg gets a
// fresh private registry.
func New(reg *prometheus.Registry) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		RequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "route"},
		),
		ResponseBytesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "response_bytes_total",
				Help:      "Total response body bytes written",
			},
			[]string{"method", "route"},
		),
		StoredStrings: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "stored_strings",
				Help:      "Number of strings currently stored",
			},
		),
		EventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_total",
				Help:      "Total number of string lifecycle events",
			},
			[]string{"event"},
		),
		gatherer: reg,
	}

	for _, c := range []prometheus.Collector{
		m.RequestsTotal,
		m.RequestDurationSeconds,
		m.ResponseBytesTotal,
		m.StoredStrings,
		m.EventsTotal,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// RecordRequest implements api.MetricsCollector.
func (m *Metrics) RecordRequest(method, route string, statusCode int, duration time.Duration, size int64) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	m.RequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
	m.ResponseBytesTotal.WithLabelValues(method, route).Add(float64(size))
}

// RecordCreated implements simplestrings.EventSink.
func (m *Metrics) RecordCreated(ctx context.Context, record *simplestrings.StringRecord) error {
	m.StoredStrings.Inc()
	m.EventsTotal.WithLabelValues("created").Inc()
	return nil
}

// RecordDeleted implements simplestrings.EventSink.
func (m *Metrics) RecordDeleted(ctx context.Context, id string) error {
	m.StoredStrings.Dec()
	m.EventsTotal.WithLabelValues("deleted").Inc()
	return nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
