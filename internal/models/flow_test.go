package models

import (
	"math"
	"testing"
)

func TestFlowUnit_ToCubicMetersPerSecond(t *testing.T) {
	tests := []struct {
		name  string
		unit  FlowUnit
		value float64
		want  float64
	}{
		{name: "cubic meters per hour", unit: CubicMetersPerHour, value: 3600, want: 1.0},
		{name: "liters per hour", unit: LitersPerHour, value: 3600000, want: 1.0},
		{name: "liters per minute", unit: LitersPerMinute, value: 60000, want: 1.0},
		{name: "liters per second", unit: LitersPerSecond, value: 1000, want: 1.0},
		{name: "cubic meters per second identity", unit: CubicMetersPerSecond, value: 1, want: 1.0},
		{name: "gallons per minute", unit: GallonsPerMinute, value: 1, want: 0.00006309},
		{name: "cubic feet per minute", unit: CubicFeetPerMinute, value: 1, want: 0.00047194},
		{name: "ten cubic meters per hour", unit: CubicMetersPerHour, value: 10, want: 10.0 / 3600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.unit.ToCubicMetersPerSecond(tt.value)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ToCubicMetersPerSecond(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestFlowUnit_ToCubicMetersPerSecond_UnknownUnitPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown flow unit")
		}
	}()
	FlowUnit(99).ToCubicMetersPerSecond(1)
}

func TestParseFlowUnit(t *testing.T) {
	tests := []struct {
		input   string
		want    FlowUnit
		wantErr bool
	}{
		{input: "m³/h", want: CubicMetersPerHour},
		{input: "m3/h", want: CubicMetersPerHour},
		{input: "L/h", want: LitersPerHour},
		{input: "l/min", want: LitersPerMinute},
		{input: "L/s", want: LitersPerSecond},
		{input: " m3/s ", want: CubicMetersPerSecond},
		{input: "GPM", want: GallonsPerMinute},
		{input: "cfm", want: CubicFeetPerMinute},
		{input: "barrels/day", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFlowUnit(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFlowUnit(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFlowUnit(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFlowUnit_RoundTrip(t *testing.T) {
	// Every unit's label must parse back to the same unit.
	for _, u := range FlowUnits() {
		parsed, err := ParseFlowUnit(u.String())
		if err != nil {
			t.Fatalf("ParseFlowUnit(%q) failed: %v", u.String(), err)
		}
		if parsed != u {
			t.Errorf("ParseFlowUnit(%q) = %v, want %v", u.String(), parsed, u)
		}
	}
}
