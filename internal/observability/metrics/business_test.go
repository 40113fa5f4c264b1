package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordFileUpload(t *testing.T) {
	before := testutil.ToFloat64(FilesUploadedTotal.WithLabelValues(UploadRejected))
	RecordFileUpload(UploadRejected, 0)
	assert.Equal(t, before+1, testutil.ToFloat64(FilesUploadedTotal.WithLabelValues(UploadRejected)))

	beforeOK := testutil.ToFloat64(FilesUploadedTotal.WithLabelValues(UploadSuccess))
	RecordFileUpload(UploadSuccess, 2048)
	assert.Equal(t, beforeOK+1, testutil.ToFloat64(FilesUploadedTotal.WithLabelValues(UploadSuccess)))
}

func TestUpdateDBConnectionStats(t *testing.T) {
	UpdateDBConnectionStats(3, 7)
	assert.Equal(t, float64(3), testutil.ToFloat64(DBConnectionsActive))
	assert.Equal(t, float64(7), testutil.ToFloat64(DBConnectionsIdle))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("object-storage", 2)
	assert.Equal(t, float64(2), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("object-storage")))
}

func TestObserveHistograms(t *testing.T) {
	start := time.Now().Add(-10 * time.Millisecond)
	ObserveDBQuery("doctors", "find_all", start)
	ObserveObjectStorage("put", start, nil)
	ObserveObjectStorage("put", start, errors.New("boom"))

	assert.GreaterOrEqual(t, testutil.CollectAndCount(DBQueryDuration), 1)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(ObjectStorageDuration), 2)
}
