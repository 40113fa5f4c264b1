// Package metrics provides the Prometheus metrics shared by the storage
// layers and the file use cases.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Database metrics
var (
	// DBQueryDuration measures collection operations by collection and operation.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"collection", "operation"},
	)

	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of connections currently in use",
		},
	)

	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle connections in the pool",
		},
	)
)

// File and object storage metrics
var (
	// FilesUploadedTotal counts upload attempts by result
	// (success, rejected, storage_error, metadata_error).
	FilesUploadedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "files_uploaded_total",
			Help: "Total number of file uploads by result",
		},
		[]string{"result"},
	)

	FileUploadSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "file_upload_size_bytes",
			Help:    "Size of accepted uploads in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 2, 9),
		},
	)

	ObjectStorageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "object_storage_duration_seconds",
			Help:    "Object storage operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "result"},
	)

	// CircuitBreakerState is 0 when closed, 1 when half-open and 2 when open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)
