package services

import (
	"context"
	"math"

	"velocimetry-platform/internal/models"
	"velocimetry-platform/pkg/logging"
	"velocimetry-platform/pkg/metrics"
)

// StatisticsService derives aggregate calibration statistics from a
// point sequence. Statistics are always recomputed from the full
// sequence; point counts are small by convention.
type StatisticsService struct {
	logger  *logging.StructuredLogger
	metrics *metrics.Collector
}

// NewStatisticsService creates a new statistics service
func NewStatisticsService(logger *logging.StructuredLogger, metricsCollector *metrics.Collector) *StatisticsService {
	return &StatisticsService{
		logger:  logger,
		metrics: metricsCollector,
	}
}

// Compute derives statistics from the given point sequence.
// An empty sequence yields an EmptyStateError, never a zero-valued result.
func (s *StatisticsService) Compute(ctx context.Context, points []models.CalibrationPoint) (*models.CalibrationStatistics, error) {
	if len(points) == 0 {
		return nil, &models.EmptyStateError{Operation: "statistics computation"}
	}

	timer := s.metrics.NewTimer(s.metrics.StatsRecomputeDuration)
	defer timer.ObserveDuration()

	n := len(points)

	meanError := 0.0
	maxError := points[0].Error
	minError := points[0].Error
	rangeMin := points[0].ReferenceVelocity
	rangeMax := points[0].ReferenceVelocity

	for _, p := range points {
		meanError += p.Error
		if p.Error > maxError {
			maxError = p.Error
		}
		if p.Error < minError {
			minError = p.Error
		}
		if p.ReferenceVelocity < rangeMin {
			rangeMin = p.ReferenceVelocity
		}
		if p.ReferenceVelocity > rangeMax {
			rangeMax = p.ReferenceVelocity
		}
	}
	meanError /= float64(n)

	// Sample standard deviation (n-1 divisor). A single point yields 0,
	// not NaN: report formatting and uncertainty bands need a number.
	stdError := 0.0
	if n >= 2 {
		sumSq := 0.0
		for _, p := range points {
			d := p.Error - meanError
			sumSq += d * d
		}
		stdError = math.Sqrt(sumSq / float64(n-1))
	}

	stats := &models.CalibrationStatistics{
		PointCount:          n,
		MeanError:           meanError,
		StdError:            stdError,
		MaxError:            maxError,
		MinError:            minError,
		ExpandedUncertainty: 2 * stdError,
		VelocityRangeMin:    rangeMin,
		VelocityRangeMax:    rangeMax,
	}

	if n >= 2 {
		slope, intercept := fitTrend(points, meanError)
		stats.HasTrend = true
		stats.TrendSlope = slope
		stats.TrendIntercept = intercept
	}

	s.logger.Debug(ctx, "[STATS_RECOMPUTE] Statistics recomputed", logging.Fields{
		"point_count": n,
		"mean_error":  meanError,
		"std_error":   stdError,
	})

	return stats, nil
}

// fitTrend fits error = slope*referenceVelocity + intercept by ordinary
// least squares. When every point shares one reference velocity the
// normal-equation denominator is zero and the fit collapses to a flat
// line through the mean error.
func fitTrend(points []models.CalibrationPoint, meanError float64) (slope, intercept float64) {
	meanX := 0.0
	for _, p := range points {
		meanX += p.ReferenceVelocity
	}
	meanX /= float64(len(points))

	sxx := 0.0
	sxy := 0.0
	for _, p := range points {
		dx := p.ReferenceVelocity - meanX
		sxx += dx * dx
		sxy += dx * (p.Error - meanError)
	}

	if sxx == 0 {
		return 0, meanError
	}

	slope = sxy / sxx
	intercept = meanError - slope*meanX
	return slope, intercept
}
