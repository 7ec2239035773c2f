package services

import (
	"context"

	"velocimetry-platform/internal/models"
	"velocimetry-platform/pkg/logging"
	"velocimetry-platform/pkg/metrics"
)

// VelocityService computes fluid velocity from a flow rate and pipe geometry
type VelocityService struct {
	logger  *logging.StructuredLogger
	metrics *metrics.Collector
}

// NewVelocityService creates a new velocity service
func NewVelocityService(logger *logging.StructuredLogger, metricsCollector *metrics.Collector) *VelocityService {
	return &VelocityService{
		logger:  logger,
		metrics: metricsCollector,
	}
}

// Compute converts the flow to m³/s, divides by the pipe flow area and
// classifies the resulting velocity. flowValue must be positive; pipe must
// already be validated. Deterministic: identical inputs yield identical output.
func (s *VelocityService) Compute(ctx context.Context, flowValue float64, unit models.FlowUnit, pipe *models.PipeSpec) (*models.VelocityResult, error) {
	if flowValue <= 0 {
		s.metrics.RecordCalculationError("non_positive_flow")
		return nil, &models.ValidationError{
			Field:   "flow_value",
			Value:   flowValue,
			Message: "flow rate must be positive",
		}
	}

	flowM3S := unit.ToCubicMetersPerSecond(flowValue)
	area := pipe.FlowAreaM2()
	velocity := flowM3S / area
	regime := models.ClassifyVelocity(velocity)

	s.metrics.RecordCalculation(regime.String())
	s.logger.Debug(ctx, "[VELOCITY_COMPUTE] Velocity calculated", logging.Fields{
		"flow_value":    flowValue,
		"flow_unit":     unit.String(),
		"flow_m3_per_s": flowM3S,
		"flow_area_m2":  area,
		"velocity_m_s":  velocity,
		"regime":        regime.String(),
	})

	return &models.VelocityResult{
		VelocityMPerS:   velocity,
		Regime:          regime,
		FlowM3PerS:      flowM3S,
		InnerDiameterMM: pipe.InnerDiameterMM(),
		FlowAreaM2:      area,
	}, nil
}
