// Package telemetry holds the service's prometheus collectors.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "provincia"

var (
	Computations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "dashboard",
		Name:      "computations_total",
		Help:      "Dashboard metric computations by kind.",
	}, []string{"kind"})

	ComputeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "dashboard",
		Name:      "compute_duration_seconds",
		Help:      "Time to gather inputs and compute dashboard metrics.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind"})

	CollaboratorErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "dashboard",
		Name:      "collaborator_errors_total",
		Help:      "Failed collaborator calls replaced with empty inputs.",
	}, []string{"collaborator"})

	UnclassifiedProducts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "dashboard",
		Name:      "unclassified_products_total",
		Help:      "Paid line items whose names matched no cost keyword.",
	})

	RateLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rates",
		Name:      "lookups_total",
		Help:      "Exchange rate resolutions by source.",
	}, []string{"source"})

	SyncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync",
		Name:      "runs_total",
		Help:      "Upstream sync runs by kind and status.",
	}, []string{"kind", "status"})

	SyncRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync",
		Name:      "records_total",
		Help:      "Records upserted by sync runs.",
	}, []string{"kind"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route and status code.",
	}, []string{"method", "route", "code"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
