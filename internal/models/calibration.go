package models

// CalibrationPoint is one reference-vs-instrument measurement pair.
// Points are immutable once created and owned by the session's ordered
// sequence; indexes are 1-based, assigned at insertion and never reused.
type CalibrationPoint struct {
	Index              int     `json:"index"`
	ReferenceVelocity  float64 `json:"reference_velocity_m_per_s"`
	InstrumentVelocity float64 `json:"instrument_velocity_m_per_s"`
	Error              float64 `json:"error_m_per_s"`
}

// CalibrationStatistics is derived whole from the current point sequence
// on every session mutation, never maintained incrementally.
type CalibrationStatistics struct {
	PointCount int     `json:"point_count"`
	MeanError  float64 `json:"mean_error"`
	// StdError is the sample standard deviation (n-1 divisor) of the
	// errors. It is 0, not NaN, when fewer than two points exist:
	// downstream formatting and uncertainty bands assume a numeric value.
	StdError            float64 `json:"std_error"`
	MaxError            float64 `json:"max_error"`
	MinError            float64 `json:"min_error"`
	ExpandedUncertainty float64 `json:"expanded_uncertainty"` // k=2
	// Least-squares trend of error vs reference velocity,
	// only fitted when at least two points exist.
	HasTrend         bool    `json:"has_trend"`
	TrendSlope       float64 `json:"trend_slope,omitempty"`
	TrendIntercept   float64 `json:"trend_intercept,omitempty"`
	VelocityRangeMin float64 `json:"velocity_range_min"`
	VelocityRangeMax float64 `json:"velocity_range_max"`
}
