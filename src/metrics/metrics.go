package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RosterOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_roster_operations_total",
			Help: "Signup and unregister requests by outcome",
		},
		[]string{"operation", "outcome"},
	)

	RosterEventsEnqueued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_roster_events_enqueued_total",
			Help: "Roster change tasks handed to asynq",
		},
		[]string{"result"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "activities_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
