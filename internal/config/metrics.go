package config

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LoadMetrics tracks configuration loads, validation failures and fallbacks.
//
// Metrics (prefixed by namespace):
//   - {namespace}_config_load_timestamp: Unix timestamp of the last load
//   - {namespace}_config_validation_errors_total: validation errors by field
//   - {namespace}_config_fallbacks_total: fallbacks applied by field
//   - {namespace}_config_fallback_active: 1 while any fallback is in effect
type LoadMetrics struct {
	LoadTimestamp         prometheus.Gauge
	ValidationErrorsTotal *prometheus.CounterVec
	FallbacksTotal        *prometheus.CounterVec
	FallbackActive        prometheus.Gauge
}

// Metrics is registered with the default Prometheus registry.
var Metrics = NewLoadMetrics(prometheus.DefaultRegisterer, "clinic")

// NewLoadMetrics registers the configuration metrics with reg.
func NewLoadMetrics(reg prometheus.Registerer, namespace string) *LoadMetrics {
	factory := promauto.With(reg)
	return &LoadMetrics{
		LoadTimestamp: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "config_load_timestamp",
			Help:      "Unix timestamp of the last configuration load",
		}),
		ValidationErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "config_validation_errors_total",
			Help:      "Total configuration validation errors by field",
		}, []string{"field"}),
		FallbacksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "config_fallbacks_total",
			Help:      "Total configuration fallbacks applied by field",
		}, []string{"field"}),
		FallbackActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "config_fallback_active",
			Help:      "Whether any configuration fallback is active (1) or not (0)",
		}),
	}
}

func (m *LoadMetrics) RecordLoadTimestamp() {
	m.LoadTimestamp.Set(float64(time.Now().Unix()))
}

func (m *LoadMetrics) RecordValidationError(field string) {
	m.ValidationErrorsTotal.WithLabelValues(field).Inc()
}

func (m *LoadMetrics) RecordFallback(field string) {
	m.FallbacksTotal.WithLabelValues(field).Inc()
}

func (m *LoadMetrics) SetFallbackActive(active bool) {
	if active {
		m.FallbackActive.Set(1)
		return
	}
	m.FallbackActive.Set(0)
}
