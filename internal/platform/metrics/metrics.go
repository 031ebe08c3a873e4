// Package metrics owns the prometheus registry and the proxy's collectors
// A nil *Registry is valid and records nothing
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream call outcomes
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeHTTP     = "http_error"
	OutcomeNetwork  = "network_error"
	OutcomeDecode   = "decode_error"
	OutcomeTooLarge = "too_large"
)

// Registry holds the collectors and the registry they are exposed from
type Registry struct {
	reg              *prometheus.Registry
	UpstreamRequests *prometheus.CounterVec
	UpstreamLatency  *prometheus.HistogramVec
	ItemsNormalized  *prometheus.CounterVec
	HTTPRequests     *prometheus.CounterVec
	RateLimited      prometheus.Counter
}

// NewRegistry builds a private registry with process and runtime collectors
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	upstreamRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "foodproxy_upstream_requests_total",
		Help: "Upstream API calls by source and outcome",
	}, []string{"source", "outcome"})
	upstreamLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "foodproxy_upstream_latency_seconds",
		Help:    "Upstream API call latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})
	itemsNormalized := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "foodproxy_items_normalized_total",
		Help: "Food items normalized by source",
	}, []string{"source"})
	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "foodproxy_http_requests_total",
		Help: "Inbound requests by method and status",
	}, []string{"method", "status"})
	rateLimited := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "foodproxy_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	})

	r.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		upstreamRequests, upstreamLatency, itemsNormalized, httpRequests, rateLimited,
	)
	return &Registry{
		reg:              r,
		UpstreamRequests: upstreamRequests,
		UpstreamLatency:  upstreamLatency,
		ItemsNormalized:  itemsNormalized,
		HTTPRequests:     httpRequests,
		RateLimited:      rateLimited,
	}
}

// Handler serves the registry in the prometheus exposition format
func (r *Registry) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// ObserveUpstream records one upstream call
func (r *Registry) ObserveUpstream(source, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.UpstreamRequests.WithLabelValues(source, outcome).Inc()
	r.UpstreamLatency.WithLabelValues(source).Observe(elapsed.Seconds())
}

// Normalized counts n items built from source
func (r *Registry) Normalized(source string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.ItemsNormalized.WithLabelValues(source).Add(float64(n))
}

// Request counts one finished inbound request
func (r *Registry) Request(method string, status int) {
	if r == nil {
		return
	}
	r.HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// Limited counts one rate limited request
func (r *Registry) Limited() {
	if r == nil {
		return
	}
	r.RateLimited.Inc()
}
