package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream call outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// Metrics holds the collectors exported by the service.
type Metrics struct {
	// Upstream price API latency by outcome
	UpstreamRequestDuration *prometheus.HistogramVec

	// Per-target conversions: resolved or skipped for a missing rate
	ConversionsTotal *prometheus.CounterVec

	// Served HTTP requests
	HTTPRequestsTotal *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		UpstreamRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Latency of price API requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_conversions_total",
				Help: "Per-target conversions by outcome",
			},
			[]string{"from", "to", "outcome"},
		),
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Served HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
	}
}

// ObserveUpstream records the duration of one upstream call.
func (m *Metrics) ObserveUpstream(outcome string, d time.Duration) {
	m.UpstreamRequestDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// ConversionResolved counts a target that had a rate.
func (m *Metrics) ConversionResolved(from, to string) {
	m.ConversionsTotal.WithLabelValues(from, to, "resolved").Inc()
}

// ConversionSkipped counts a target omitted for lack of a rate.
func (m *Metrics) ConversionSkipped(from, to string) {
	m.ConversionsTotal.WithLabelValues(from, to, "skipped").Inc()
}

// ObserveHTTPRequest counts one served request.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// Handler exposes the collectors of g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
