package models

import (
	"fmt"
	"strings"
)

// FlowUnit identifies one of the supported flow-rate units.
// The set is closed; conversion factors are fixed.
type FlowUnit int

const (
	CubicMetersPerHour FlowUnit = iota
	LitersPerHour
	LitersPerMinute
	LitersPerSecond
	CubicMetersPerSecond
	GallonsPerMinute
	CubicFeetPerMinute
)

// FlowUnits returns all supported units in presentation order.
func FlowUnits() []FlowUnit {
	return []FlowUnit{
		CubicMetersPerHour,
		LitersPerHour,
		LitersPerMinute,
		LitersPerSecond,
		CubicMetersPerSecond,
		GallonsPerMinute,
		CubicFeetPerMinute,
	}
}

// ToCubicMetersPerSecond converts a flow value expressed in u to m³/s.
// A value outside the enum is a caller programming error and panics.
func (u FlowUnit) ToCubicMetersPerSecond(value float64) float64 {
	switch u {
	case CubicMetersPerHour:
		return value / 3600
	case LitersPerHour:
		return value / 3600000
	case LitersPerMinute:
		return value / 60000
	case LitersPerSecond:
		return value / 1000
	case CubicMetersPerSecond:
		return value
	case GallonsPerMinute:
		return value * 0.00006309
	case CubicFeetPerMinute:
		return value * 0.00047194
	}
	panic(fmt.Sprintf("unknown flow unit %d", int(u)))
}

// String returns the short unit label.
func (u FlowUnit) String() string {
	switch u {
	case CubicMetersPerHour:
		return "m³/h"
	case LitersPerHour:
		return "L/h"
	case LitersPerMinute:
		return "L/min"
	case LitersPerSecond:
		return "L/s"
	case CubicMetersPerSecond:
		return "m³/s"
	case GallonsPerMinute:
		return "GPM"
	case CubicFeetPerMinute:
		return "CFM"
	default:
		return "UNKNOWN"
	}
}

// Description returns the long label used in unit selection menus.
func (u FlowUnit) Description() string {
	switch u {
	case CubicMetersPerHour:
		return "cubic meters per hour"
	case LitersPerHour:
		return "liters per hour"
	case LitersPerMinute:
		return "liters per minute"
	case LitersPerSecond:
		return "liters per second"
	case CubicMetersPerSecond:
		return "cubic meters per second"
	case GallonsPerMinute:
		return "US gallons per minute"
	case CubicFeetPerMinute:
		return "cubic feet per minute"
	default:
		return "unknown unit"
	}
}

// ParseFlowUnit maps a short unit label to its FlowUnit.
// Matching is case-insensitive and accepts the ASCII spelling of m³.
func ParseFlowUnit(s string) (FlowUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m³/h", "m3/h":
		return CubicMetersPerHour, nil
	case "l/h":
		return LitersPerHour, nil
	case "l/min":
		return LitersPerMinute, nil
	case "l/s":
		return LitersPerSecond, nil
	case "m³/s", "m3/s":
		return CubicMetersPerSecond, nil
	case "gpm":
		return GallonsPerMinute, nil
	case "cfm":
		return CubicFeetPerMinute, nil
	}
	return 0, fmt.Errorf("unsupported flow unit %q", s)
}
