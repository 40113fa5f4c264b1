package pagination

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts paginated list requests.
	// Labels: collection, status (HTTP status code), page_range (1-10, 11-50, ...)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_pagination_requests_total",
			Help: "Total number of pagination requests",
		},
		[]string{"collection", "status", "page_range"},
	)

	// DurationSeconds tracks paginated request duration.
	// Labels: collection, operation (handler, service, repository)
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clinic_pagination_duration_seconds",
			Help:    "Paginated request duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"collection", "operation"},
	)

	// TotalCount holds the last observed document count per collection.
	TotalCount = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "clinic_collection_total_count",
			Help: "Last observed number of documents per collection",
		},
		[]string{"collection"},
	)

	// ErrorsTotal counts pagination errors by type.
	// Labels: collection, type (database, timeout)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_pagination_errors_total",
			Help: "Total number of pagination errors",
		},
		[]string{"collection", "type"},
	)
)

// RecordRequest records a pagination request metric.
func RecordRequest(collection string, statusCode int, page int) {
	RequestsTotal.WithLabelValues(
		collection,
		fmt.Sprintf("%d", statusCode),
		getPageRangeBucket(page),
	).Inc()
}

// RecordDuration records operation duration in seconds.
func RecordDuration(collection, operation string, duration float64) {
	DurationSeconds.WithLabelValues(collection, operation).Observe(duration)
}

// UpdateTotalCount updates the document count gauge of a collection.
func UpdateTotalCount(collection string, count uint64) {
	TotalCount.WithLabelValues(collection).Set(float64(count))
}

// RecordError records an error metric.
func RecordError(collection, errorType string) {
	ErrorsTotal.WithLabelValues(collection, errorType).Inc()
}

// getPageRangeBucket returns the page range bucket for a given page number.
func getPageRangeBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
