package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"velocimetry-platform/internal/models"
	"velocimetry-platform/pkg/logging"
	"velocimetry-platform/pkg/metrics"
)

// DefaultTargetPoints is the advisory number of measurement pairs for a
// full calibration run. It is informational only; AddPoint never refuses
// further points because of the count.
const DefaultTargetPoints = 10

// CalibrationSession accumulates calibration points against a single pipe
// configuration and keeps their derived statistics current. All mutations
// and snapshot reads share one mutex: statistics are recomputed from the
// full point sequence, so a read during an append could observe an
// inconsistent count.
type CalibrationSession struct {
	mu        sync.Mutex
	id        uuid.UUID
	pipe      *models.PipeSpec
	points    []models.CalibrationPoint
	stats     *models.CalibrationStatistics
	announced bool

	velocity     *VelocityService
	statistics   *StatisticsService
	targetPoints int
	logger       *logging.StructuredLogger
	metrics      *metrics.Collector
}

// NewCalibrationSession creates an empty session. targetPoints <= 0 selects
// DefaultTargetPoints.
func NewCalibrationSession(velocity *VelocityService, statistics *StatisticsService, targetPoints int, logger *logging.StructuredLogger, metricsCollector *metrics.Collector) *CalibrationSession {
	if targetPoints <= 0 {
		targetPoints = DefaultTargetPoints
	}
	return &CalibrationSession{
		id:           uuid.New(),
		velocity:     velocity,
		statistics:   statistics,
		targetPoints: targetPoints,
		logger:       logger,
		metrics:      metricsCollector,
	}
}

// ID returns the session identifier. A fresh identifier is assigned at
// construction and after every Clear.
func (s *CalibrationSession) ID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// AddPoint computes the reference velocity for the given flow, appends a new
// point with the next index and recomputes the session statistics. Velocity
// computation errors propagate unchanged. The session is keyed to one pipe
// configuration; changing it mid-session is rejected.
func (s *CalibrationSession) AddPoint(ctx context.Context, pipe *models.PipeSpec, flowValue float64, unit models.FlowUnit, instrumentVelocity float64) (*models.CalibrationPoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pipe != nil && *s.pipe != *pipe {
		return nil, &models.ValidationError{
			Field:   "pipe",
			Message: "pipe configuration cannot change during a calibration session",
		}
	}

	reference, err := s.velocity.Compute(ctx, flowValue, unit, pipe)
	if err != nil {
		return nil, fmt.Errorf("reference velocity: %w", err)
	}

	point := models.CalibrationPoint{
		Index:              len(s.points) + 1,
		ReferenceVelocity:  reference.VelocityMPerS,
		InstrumentVelocity: instrumentVelocity,
		Error:              instrumentVelocity - reference.VelocityMPerS,
	}

	s.pipe = pipe
	s.points = append(s.points, point)

	stats, err := s.statistics.Compute(ctx, s.points)
	if err != nil {
		return nil, fmt.Errorf("recompute statistics: %w", err)
	}
	s.stats = stats

	s.metrics.CalibrationPointsTotal.Inc()
	s.metrics.SessionPointCount.Set(float64(len(s.points)))

	s.logger.Info(ctx, "[CALIB_POINT] Calibration point recorded", logging.Fields{
		"session_id":          s.id.String(),
		"point_index":         point.Index,
		"reference_velocity":  point.ReferenceVelocity,
		"instrument_velocity": point.InstrumentVelocity,
		"error":              point.Error,
	})

	if len(s.points) >= s.targetPoints && !s.announced {
		s.announced = true
		s.logger.Info(ctx, "[CALIB_TARGET] Target point count reached, calibration run complete", logging.Fields{
			"session_id":    s.id.String(),
			"point_count":   len(s.points),
			"target_points": s.targetPoints,
		})
	}

	return &point, nil
}

// Clear discards all points and starts a fresh session identity. Idempotent.
func (s *CalibrationSession) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.points = nil
	s.stats = nil
	s.pipe = nil
	s.announced = false
	s.id = uuid.New()

	s.metrics.SessionClearsTotal.Inc()
	s.metrics.SessionPointCount.Set(0)

	s.logger.Info(ctx, "[CALIB_CLEAR] Calibration session cleared", logging.Fields{
		"session_id": s.id.String(),
	})
}

// Points returns a copy of the ordered point sequence.
func (s *CalibrationSession) Points() []models.CalibrationPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	points := make([]models.CalibrationPoint, len(s.points))
	copy(points, s.points)
	return points
}

// Count returns the number of recorded points.
func (s *CalibrationSession) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.points)
}

// Statistics returns the current statistics snapshot, or nil while the
// session is empty. Consumers must treat nil distinctly from zero values.
func (s *CalibrationSession) Statistics() *models.CalibrationStatistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Pipe returns the pipe configuration the session points were computed
// against, or nil while the session is empty.
func (s *CalibrationSession) Pipe() *models.PipeSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pipe
}

// TargetReached reports whether the advisory point target has been met.
func (s *CalibrationSession) TargetReached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.points) >= s.targetPoints
}

// PlotData returns parallel reference-velocity and error slices in point
// order, for the plotting consumer.
func (s *CalibrationSession) PlotData() (referenceVelocities, errors []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	referenceVelocities = make([]float64, len(s.points))
	errors = make([]float64, len(s.points))
	for i, p := range s.points {
		referenceVelocities[i] = p.ReferenceVelocity
		errors[i] = p.Error
	}
	return referenceVelocities, errors
}
