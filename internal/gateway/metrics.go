package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess  = "success"
	outcomeFailure  = "failure"
	outcomeRejected = "rejected"
)

var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_gateway_operations_total",
			Help: "Total number of catalog gateway operations",
		},
		[]string{"backend", "operation", "outcome"},
	)

	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_gateway_operation_duration_seconds",
			Help:    "Catalog gateway operation duration in seconds, simulated latency included",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)
)
