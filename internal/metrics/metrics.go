// Package metrics exposes Prometheus collectors for one deployment.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"mockgraph/internal/config"
)

const namespace = "mockgraph"

const (
	OutcomeOK         = "ok"
	OutcomeError      = "error"
	OutcomeBadRequest = "bad_request"
)

type Metrics struct {
	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	operations *prometheus.CounterVec
	created    prometheus.Counter
	kind       string
}

func New(cfg *config.Config) *Metrics {
	kind := prometheus.Labels{"kind": string(cfg.Kind)}
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "HTTP requests by method, route and status.",
			ConstLabels: kind,
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: kind,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "graphql_operations_total",
			Help:        "GraphQL operations by outcome.",
			ConstLabels: kind,
		}, []string{"outcome"}),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "records_created_total",
			Help:        "Records appended to the fixture store.",
			ConstLabels: kind,
		}),
		kind: string(cfg.Kind),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.latency,
		m.operations,
		m.created,
	)
	return m
}

// WatchRecords reports size() as the fixture_records gauge on every scrape.
func (m *Metrics) WatchRecords(size func() int) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "fixture_records",
		Help:        "Records currently held by the fixture store.",
		ConstLabels: prometheus.Labels{"kind": m.kind},
	}, func() float64 { return float64(size()) }))
}

func (m *Metrics) ObserveOperation(outcome string) {
	m.operations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordCreated() {
	m.created.Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.latency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
