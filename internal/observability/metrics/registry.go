package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RegistryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registry_requests_total",
			Help: "Total number of registry HTTP requests",
		},
		[]string{"method", "path"},
	)

	RegistryRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "registry_requests_in_flight",
			Help: "Number of registry HTTP requests currently being processed",
		},
	)

	RegistryRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "registry_request_duration_seconds",
			Help:    "Duration of registry HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RegistryOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registry_operations_total",
			Help: "Total number of registry operations by outcome",
		},
		[]string{"operation", "result"},
	)

	UsersRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of users registered",
		},
	)

	RegistryUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "registry_users",
			Help: "Number of users currently held in the registry",
		},
	)
)
