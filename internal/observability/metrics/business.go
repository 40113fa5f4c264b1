package metrics

import (
	"time"
)

// Upload results.
const (
	UploadSuccess       = "success"
	UploadRejected      = "rejected"
	UploadStorageError  = "storage_error"
	UploadMetadataError = "metadata_error"
)

// ObserveDBQuery records the time elapsed since start. It is meant to be
// deferred at the top of a collection operation.
func ObserveDBQuery(collection, operation string, start time.Time) {
	DBQueryDuration.WithLabelValues(collection, operation).Observe(time.Since(start).Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}

// RecordFileUpload records an upload attempt. size is only observed for
// successful uploads.
func RecordFileUpload(result string, size int64) {
	FilesUploadedTotal.WithLabelValues(result).Inc()
	if result == UploadSuccess {
		FileUploadSize.Observe(float64(size))
	}
}

// ObserveObjectStorage records an object storage call that started at start.
func ObserveObjectStorage(operation string, start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	ObjectStorageDuration.WithLabelValues(operation, result).Observe(time.Since(start).Seconds())
}

// SetCircuitBreakerState records the state of the named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
