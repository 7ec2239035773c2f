package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"velocimetry-platform/internal/models"
	"velocimetry-platform/internal/report"
	"velocimetry-platform/internal/services"
	"velocimetry-platform/pkg/logging"
	"velocimetry-platform/pkg/metrics"
)

// Demonstrates the calibration engine end to end without the interactive CLI.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════════")
	fmt.Println("VELOCIMETRY PLATFORM - CALIBRATION DEMONSTRATION")
	fmt.Println("════════════════════════════════════════════════════════════════")
	fmt.Println()

	logger := logging.NewStructuredLogger("demo", "1.0.0", "info", "text")
	collector := metrics.NewCollectorWith("velocimetry_demo", prometheus.NewRegistry())
	ctx := context.Background()

	velocity := services.NewVelocityService(logger, collector)
	statistics := services.NewStatisticsService(logger, collector)
	session := services.NewCalibrationSession(velocity, statistics, 0, logger, collector)

	pipe, err := models.NewPipeSpec(114.3, 6.02)
	if err != nil {
		fmt.Printf("Invalid pipe: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Pipe: outer %.2f mm, wall %.2f mm, inner %.2f mm, area %.6f m²\n\n",
		pipe.OuterDiameterMM, pipe.WallThicknessMM, pipe.InnerDiameterMM(), pipe.FlowAreaM2())

	// Reference flows in m³/h paired with the velocimeter readings taken
	// against them.
	measurements := []struct {
		flowM3H    float64
		instrument float64
	}{
		{15, 0.52},
		{30, 1.03},
		{45, 1.56},
		{60, 2.01},
		{75, 2.57},
	}

	for _, m := range measurements {
		point, err := session.AddPoint(ctx, pipe, m.flowM3H, models.CubicMetersPerHour, m.instrument)
		if err != nil {
			fmt.Printf("Rejected measurement (%.1f m³/h): %v\n", m.flowM3H, err)
			continue
		}
		fmt.Printf("Point %d: reference %.4f m/s, instrument %.4f m/s, error %+.4f m/s\n",
			point.Index, point.ReferenceVelocity, point.InstrumentVelocity, point.Error)
	}

	fmt.Println()
	fmt.Println("─────────────────────────────────────────────────────────────")

	text, err := report.Render(session.Pipe(), session.ID().String(), session.Points(), session.Statistics())
	if err != nil {
		fmt.Printf("Report rendering failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(text)
}
