package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector provides application metrics collection
type Collector struct {
	// Velocity calculation metrics
	CalculationsTotal *prometheus.CounterVec
	CalculationErrors *prometheus.CounterVec

	// Calibration session metrics
	CalibrationPointsTotal prometheus.Counter
	SessionClearsTotal     prometheus.Counter
	SessionPointCount      prometheus.Gauge

	// Statistics metrics
	StatsRecomputeDuration prometheus.Histogram

	// Export metrics
	ReportExportsTotal prometheus.Counter
	ChartRendersTotal  prometheus.Counter
	ExportErrorsTotal  *prometheus.CounterVec
}

// NewCollector creates a new metrics collector on the default registry.
func NewCollector(namespace string) *Collector {
	return NewCollectorWith(namespace, prometheus.DefaultRegisterer)
}

// NewCollectorWith creates a new metrics collector on the given registerer.
// Tests use a fresh registry to avoid duplicate registration.
func NewCollectorWith(namespace string, reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		CalculationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "velocity_calculations_total",
				Help:      "Total number of velocity calculations by resulting regime",
			},
			[]string{"regime"},
		),

		CalculationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "velocity_calculation_errors_total",
				Help:      "Total number of rejected calculation inputs by error type",
			},
			[]string{"error_type"},
		),

		CalibrationPointsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calibration_points_total",
				Help:      "Total number of calibration points recorded",
			},
		),

		SessionClearsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calibration_session_clears_total",
				Help:      "Total number of calibration session resets",
			},
		),

		SessionPointCount: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "calibration_session_point_count",
				Help:      "Number of points in the current calibration session",
			},
		),

		StatsRecomputeDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "statistics_recompute_duration_seconds",
				Help:      "Duration of full statistics recomputation in seconds",
				Buckets:   []float64{0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001},
			},
		),

		ReportExportsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_exports_total",
				Help:      "Total number of calibration reports written",
			},
		),

		ChartRendersTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "chart_renders_total",
				Help:      "Total number of calibration charts rendered",
			},
		),

		ExportErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "export_errors_total",
				Help:      "Total number of failed exports by error type",
			},
			[]string{"error_type"},
		),
	}
}

// Timer provides timing functionality for operations
type Timer struct {
	start    time.Time
	observer prometheus.Observer
}

// NewTimer creates a new timer
func (c *Collector) NewTimer(histogram prometheus.Observer) *Timer {
	return &Timer{
		start:    time.Now(),
		observer: histogram,
	}
}

// ObserveDuration records the elapsed time since timer creation
func (t *Timer) ObserveDuration() time.Duration {
	duration := time.Since(t.start)
	if t.observer != nil {
		t.observer.Observe(duration.Seconds())
	}
	return duration
}

// RecordCalculation increments the calculation counter for a regime
func (c *Collector) RecordCalculation(regime string) {
	c.CalculationsTotal.WithLabelValues(regime).Inc()
}

// RecordCalculationError increments the calculation error counter
func (c *Collector) RecordCalculationError(errorType string) {
	c.CalculationErrors.WithLabelValues(errorType).Inc()
}

// RecordExportError increments the export error counter
func (c *Collector) RecordExportError(errorType string) {
	c.ExportErrorsTotal.WithLabelValues(errorType).Inc()
}
