// Package observability exposes Prometheus metrics for GraphQL execution and
// location lookups.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GraphQLMetrics holds custom metrics for GraphQL operations. A nil
// *GraphQLMetrics is valid and records nothing.
type GraphQLMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestCounter  *prometheus.CounterVec
	errorCounter    *prometheus.CounterVec
	activeRequests  prometheus.Gauge
	geoipLookups    *prometheus.CounterVec
}

// NewGraphQLMetrics registers the GraphQL metrics with the given registerer.
func NewGraphQLMetrics(reg prometheus.Registerer) *GraphQLMetrics {
	factory := promauto.With(reg)
	return &GraphQLMetrics{
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "graphql_request_duration_seconds",
			Help:    "Duration of GraphQL requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation_type"}),
		requestCounter: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "graphql_requests_total",
			Help: "Total number of GraphQL requests.",
		}, []string{"operation_type", "has_errors"}),
		errorCounter: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "graphql_errors_total",
			Help: "Total number of GraphQL requests that produced errors.",
		}, []string{"operation_type"}),
		activeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Name: "graphql_requests_active",
			Help: "Number of GraphQL requests currently executing.",
		}),
		geoipLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "geoip_lookups_total",
			Help: "Total number of location database lookups.",
		}, []string{"status"}),
	}
}

// RecordRequest records a GraphQL request with its duration and outcome.
func (m *GraphQLMetrics) RecordRequest(duration time.Duration, hasErrors bool, operationType string) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(operationType).Observe(duration.Seconds())
	m.requestCounter.WithLabelValues(operationType, strconv.FormatBool(hasErrors)).Inc()
	if hasErrors {
		m.errorCounter.WithLabelValues(operationType).Inc()
	}
}

// RecordGeoIPLookup records one location lookup by outcome (hit, miss, error).
func (m *GraphQLMetrics) RecordGeoIPLookup(status string) {
	if m == nil {
		return
	}
	m.geoipLookups.WithLabelValues(status).Inc()
}

// IncrementActiveRequests increments the active requests gauge.
func (m *GraphQLMetrics) IncrementActiveRequests() {
	if m == nil {
		return
	}
	m.activeRequests.Inc()
}

// DecrementActiveRequests decrements the active requests gauge.
func (m *GraphQLMetrics) DecrementActiveRequests() {
	if m == nil {
		return
	}
	m.activeRequests.Dec()
}
