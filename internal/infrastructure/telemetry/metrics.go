package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Posting outcomes recorded by the ledger poster
const (
	OutcomePosted  = "posted"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

// Metrics owns a private Prometheus registry so tests and multiple
// instances never collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	ledgerPostings    *prometheus.CounterVec
	ledgerAmount      *prometheus.CounterVec
	dashboardFailures *prometheus.CounterVec
	activeShifts      prometheus.Gauge
}

// NewMetrics registers the application metrics plus Go runtime and process collectors
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ledgerPostings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_postings_total",
			Help:      "Automatic expense postings by category and outcome.",
		}, []string{"category", "outcome"}),
		ledgerAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_posted_amount_total",
			Help:      "Sum of automatically posted expense amounts by category.",
		}, []string{"category"}),
		dashboardFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboard_fetch_failures_total",
			Help:      "Dashboard collection fetches that degraded to empty.",
		}, []string{"collection"}),
		activeShifts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_shifts",
			Help:      "Hourly shifts currently running in this process.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.ledgerPostings,
		m.ledgerAmount,
		m.dashboardFailures,
		m.activeShifts,
	)
	return m
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one finished request. route is the matched route
// template, never the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordPosting counts a ledger posting attempt; amount is added only when posted
func (m *Metrics) RecordPosting(category, outcome string, amount float64) {
	m.ledgerPostings.WithLabelValues(category, outcome).Inc()
	if outcome == OutcomePosted {
		m.ledgerAmount.WithLabelValues(category).Add(amount)
	}
}

// RecordDashboardFailure counts a collection that failed to load
func (m *Metrics) RecordDashboardFailure(collection string) {
	m.dashboardFailures.WithLabelValues(collection).Inc()
}

// ShiftStarted increments the running-shift gauge
func (m *Metrics) ShiftStarted() { m.activeShifts.Inc() }

// ShiftEnded decrements the running-shift gauge
func (m *Metrics) ShiftEnded() { m.activeShifts.Dec() }
