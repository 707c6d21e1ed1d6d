package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, route template and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration observes request latency by route template.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// ProposalsSubmitted counts accepted negotiation turns by action.
	ProposalsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "proposals_submitted_total",
		Help: "Total number of negotiation proposals appended.",
	}, []string{"action"})

	// BookingsScheduled counts transport bookings created.
	BookingsScheduled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookings_scheduled_total",
		Help: "Total number of transport bookings scheduled.",
	})
)
