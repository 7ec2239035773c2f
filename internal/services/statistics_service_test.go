package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"velocimetry-platform/internal/models"
)

func TestStatisticsService_Compute_Empty(t *testing.T) {
	logger, collector := newTestDeps()
	svc := NewStatisticsService(logger, collector)

	stats, err := svc.Compute(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error for empty point sequence")
	}
	var emptyErr *models.EmptyStateError
	if !errors.As(err, &emptyErr) {
		t.Errorf("error = %T, want *models.EmptyStateError", err)
	}
	if stats != nil {
		t.Errorf("stats = %v, want nil sentinel", stats)
	}
}

func TestStatisticsService_Compute_SinglePoint(t *testing.T) {
	logger, collector := newTestDeps()
	svc := NewStatisticsService(logger, collector)

	points := []models.CalibrationPoint{
		{Index: 1, ReferenceVelocity: 1.2, InstrumentVelocity: 1.26, Error: 0.06},
	}
	stats, err := svc.Compute(context.Background(), points)
	if err != nil {
		t.Fatalf("Compute() failed: %v", err)
	}

	if stats.PointCount != 1 {
		t.Errorf("PointCount = %d, want 1", stats.PointCount)
	}
	if stats.MeanError != 0.06 {
		t.Errorf("MeanError = %v, want 0.06", stats.MeanError)
	}
	if stats.StdError != 0 {
		t.Errorf("StdError = %v, want 0 for a single point", stats.StdError)
	}
	if stats.ExpandedUncertainty != 0 {
		t.Errorf("ExpandedUncertainty = %v, want 0 for a single point", stats.ExpandedUncertainty)
	}
	if stats.MaxError != 0.06 || stats.MinError != 0.06 {
		t.Errorf("extrema = %v/%v, want 0.06/0.06", stats.MaxError, stats.MinError)
	}
	if stats.HasTrend {
		t.Error("HasTrend = true, want false for a single point")
	}
	if stats.VelocityRangeMin != 1.2 || stats.VelocityRangeMax != 1.2 {
		t.Errorf("velocity range = %v..%v, want 1.2..1.2", stats.VelocityRangeMin, stats.VelocityRangeMax)
	}
}

func TestStatisticsService_Compute_TwoPoints(t *testing.T) {
	logger, collector := newTestDeps()
	svc := NewStatisticsService(logger, collector)

	points := []models.CalibrationPoint{
		{Index: 1, ReferenceVelocity: 1.0, InstrumentVelocity: 1.05, Error: 0.05},
		{Index: 2, ReferenceVelocity: 2.0, InstrumentVelocity: 2.10, Error: 0.10},
	}
	stats, err := svc.Compute(context.Background(), points)
	if err != nil {
		t.Fatalf("Compute() failed: %v", err)
	}

	if math.Abs(stats.MeanError-0.075) > 1e-12 {
		t.Errorf("MeanError = %v, want 0.075", stats.MeanError)
	}
	if math.Abs(stats.StdError-0.035355339) > 5e-5 {
		t.Errorf("StdError = %v, want ≈0.03536", stats.StdError)
	}
	if math.Abs(stats.ExpandedUncertainty-0.070710678) > 1e-4 {
		t.Errorf("ExpandedUncertainty = %v, want ≈0.0707", stats.ExpandedUncertainty)
	}
	if stats.MaxError != 0.10 || stats.MinError != 0.05 {
		t.Errorf("extrema = %v/%v, want 0.10/0.05", stats.MaxError, stats.MinError)
	}
	if !stats.HasTrend {
		t.Fatal("HasTrend = false, want true for two points")
	}
	if math.Abs(stats.TrendSlope-0.05) > 1e-12 {
		t.Errorf("TrendSlope = %v, want 0.05", stats.TrendSlope)
	}
	if math.Abs(stats.TrendIntercept) > 1e-12 {
		t.Errorf("TrendIntercept = %v, want 0", stats.TrendIntercept)
	}
	if stats.VelocityRangeMin != 1.0 || stats.VelocityRangeMax != 2.0 {
		t.Errorf("velocity range = %v..%v, want 1.0..2.0", stats.VelocityRangeMin, stats.VelocityRangeMax)
	}
}

func TestStatisticsService_Compute_DegenerateTrend(t *testing.T) {
	logger, collector := newTestDeps()
	svc := NewStatisticsService(logger, collector)

	// All points share one reference velocity: the fit collapses to a
	// flat line through the mean error.
	points := []models.CalibrationPoint{
		{Index: 1, ReferenceVelocity: 1.5, Error: 0.02},
		{Index: 2, ReferenceVelocity: 1.5, Error: 0.04},
		{Index: 3, ReferenceVelocity: 1.5, Error: 0.06},
	}
	stats, err := svc.Compute(context.Background(), points)
	if err != nil {
		t.Fatalf("Compute() failed: %v", err)
	}
	if !stats.HasTrend {
		t.Fatal("HasTrend = false, want true")
	}
	if stats.TrendSlope != 0 {
		t.Errorf("TrendSlope = %v, want 0 for degenerate fit", stats.TrendSlope)
	}
	if math.Abs(stats.TrendIntercept-0.04) > 1e-12 {
		t.Errorf("TrendIntercept = %v, want mean error 0.04", stats.TrendIntercept)
	}
}

func TestStatisticsService_Compute_NegativeErrors(t *testing.T) {
	logger, collector := newTestDeps()
	svc := NewStatisticsService(logger, collector)

	points := []models.CalibrationPoint{
		{Index: 1, ReferenceVelocity: 0.8, Error: -0.03},
		{Index: 2, ReferenceVelocity: 1.6, Error: 0.01},
		{Index: 3, ReferenceVelocity: 2.4, Error: -0.07},
	}
	stats, err := svc.Compute(context.Background(), points)
	if err != nil {
		t.Fatalf("Compute() failed: %v", err)
	}
	if math.Abs(stats.MeanError-(-0.03)) > 1e-12 {
		t.Errorf("MeanError = %v, want -0.03", stats.MeanError)
	}
	if stats.MaxError != 0.01 {
		t.Errorf("MaxError = %v, want 0.01", stats.MaxError)
	}
	if stats.MinError != -0.07 {
		t.Errorf("MinError = %v, want -0.07", stats.MinError)
	}
	if stats.StdError <= 0 {
		t.Errorf("StdError = %v, want > 0", stats.StdError)
	}
}
