package models

// Regime is the qualitative velocity classification used for
// engineering judgment (sedimentation and erosion risk).
type Regime int

const (
	RegimeLow Regime = iota
	RegimeOptimal
	RegimeAcceptable
	RegimeHigh
	RegimeVeryHigh
)

// String returns string representation of the regime
func (r Regime) String() string {
	switch r {
	case RegimeLow:
		return "LOW"
	case RegimeOptimal:
		return "OPTIMAL"
	case RegimeAcceptable:
		return "ACCEPTABLE"
	case RegimeHigh:
		return "HIGH"
	case RegimeVeryHigh:
		return "VERY_HIGH"
	default:
		return "UNKNOWN"
	}
}

// Description returns the guidance text attached to each regime.
func (r Regime) Description() string {
	switch r {
	case RegimeLow:
		return "low velocity, possible sedimentation"
	case RegimeOptimal:
		return "optimal velocity for water piping"
	case RegimeAcceptable:
		return "acceptable velocity, monitor erosion"
	case RegimeHigh:
		return "high velocity, possible erosion and noise"
	case RegimeVeryHigh:
		return "very high velocity, review the line design"
	default:
		return "unknown regime"
	}
}

// ClassifyVelocity maps a velocity in m/s to its regime.
// Boundaries: 0.5 and 1.5 fall in OPTIMAL, 3.0 in ACCEPTABLE, 5.0 in HIGH.
func ClassifyVelocity(v float64) Regime {
	switch {
	case v < 0.5:
		return RegimeLow
	case v <= 1.5:
		return RegimeOptimal
	case v <= 3.0:
		return RegimeAcceptable
	case v <= 5.0:
		return RegimeHigh
	default:
		return RegimeVeryHigh
	}
}

// VelocityResult is the outcome of a single velocity calculation.
// It carries the intermediate values shown in the results panel.
type VelocityResult struct {
	VelocityMPerS   float64 `json:"velocity_m_per_s"`
	Regime          Regime  `json:"regime"`
	FlowM3PerS      float64 `json:"flow_m3_per_s"`
	InnerDiameterMM float64 `json:"inner_diameter_mm"`
	FlowAreaM2      float64 `json:"flow_area_m2"`
}
