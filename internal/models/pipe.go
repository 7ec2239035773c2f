package models

import "math"

// PipeSpec holds the outer dimensions of a pipe section in millimeters.
// Inner diameter and flow area are derived on demand, never stored.
type PipeSpec struct {
	OuterDiameterMM float64 `json:"outer_diameter_mm"`
	WallThicknessMM float64 `json:"wall_thickness_mm"`
}

// NewPipeSpec validates the dimensions and returns the spec.
// The wall must leave a positive inner diameter: wall < outer/2.
func NewPipeSpec(outerMM, wallMM float64) (*PipeSpec, error) {
	if outerMM <= 0 {
		return nil, &GeometryError{
			Field:   "outer_diameter_mm",
			Value:   outerMM,
			Message: "outer diameter must be positive",
		}
	}
	if wallMM < 0 {
		return nil, &GeometryError{
			Field:   "wall_thickness_mm",
			Value:   wallMM,
			Message: "wall thickness cannot be negative",
		}
	}
	if wallMM >= outerMM/2 {
		return nil, &GeometryError{
			Field:   "wall_thickness_mm",
			Value:   wallMM,
			Message: "wall thickness leaves no inner diameter",
		}
	}
	return &PipeSpec{OuterDiameterMM: outerMM, WallThicknessMM: wallMM}, nil
}

// InnerDiameterMM returns the inner diameter: De - 2*wall.
func (p *PipeSpec) InnerDiameterMM() float64 {
	return p.OuterDiameterMM - 2*p.WallThicknessMM
}

// FlowAreaM2 returns the cross-sectional flow area in m².
func (p *PipeSpec) FlowAreaM2() float64 {
	radiusM := p.InnerDiameterMM() / 2000
	return math.Pi * radiusM * radiusM
}
