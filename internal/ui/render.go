package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"velocimetry-platform/internal/models"
)

var regimeColors = map[models.Regime]*color.Color{
	models.RegimeLow:        color.New(color.FgCyan),
	models.RegimeOptimal:    color.New(color.FgGreen),
	models.RegimeAcceptable: color.New(color.FgYellow),
	models.RegimeHigh:       color.New(color.FgRed),
	models.RegimeVeryHigh:   color.New(color.FgRed, color.Bold),
}

var advisoryColor = color.New(color.FgGreen, color.Bold)

// RenderVelocityResult writes the results panel for a single calculation,
// including the intermediate values.
func RenderVelocityResult(w io.Writer, flowValue float64, unit models.FlowUnit, pipe *models.PipeSpec, result *models.VelocityResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "CALCULATION RESULTS")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintf(w, "- Flow rate: %.2f %s\n", flowValue, unit)
	fmt.Fprintf(w, "- Outer diameter: %.2f mm\n", pipe.OuterDiameterMM)
	fmt.Fprintf(w, "- Wall thickness: %.2f mm\n", pipe.WallThicknessMM)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Intermediate values:")
	fmt.Fprintf(w, "- Inner diameter: %.2f mm (%.4f m)\n", result.InnerDiameterMM, result.InnerDiameterMM/1000)
	fmt.Fprintf(w, "- Flow area: %.6f m²\n", result.FlowAreaM2)
	fmt.Fprintf(w, "- Converted flow: %.6f m³/s\n", result.FlowM3PerS)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "VELOCITY: %.3f m/s\n", result.VelocityMPerS)
	regimeColors[result.Regime].Fprintf(w, "Regime: %s - %s\n", result.Regime, result.Regime.Description())
}

// RenderPointsTable writes the calibration point table.
func RenderPointsTable(w io.Writer, points []models.CalibrationPoint) {
	if len(points) == 0 {
		fmt.Fprintln(w, "no calibration points recorded")
		return
	}
	fmt.Fprintf(w, "%-6s %-12s %-12s %-10s\n", "Point", "Ref(m/s)", "Inst(m/s)", "Error(m/s)")
	for _, p := range points {
		fmt.Fprintf(w, "%-6d %-12.4f %-12.4f %-10.4f\n", p.Index, p.ReferenceVelocity, p.InstrumentVelocity, p.Error)
	}
}

// RenderStatistics writes the calibration statistics panel.
func RenderStatistics(w io.Writer, stats *models.CalibrationStatistics) {
	if stats == nil {
		fmt.Fprintln(w, "no statistics: the session is empty")
		return
	}
	fmt.Fprintln(w, "CALIBRATION STATISTICS:")
	fmt.Fprintf(w, "- Points: %d\n", stats.PointCount)
	fmt.Fprintf(w, "- Mean error: %.4f m/s\n", stats.MeanError)
	fmt.Fprintf(w, "- Standard deviation: %.4f m/s\n", stats.StdError)
	fmt.Fprintf(w, "- Maximum error: %.4f m/s\n", stats.MaxError)
	fmt.Fprintf(w, "- Minimum error: %.4f m/s\n", stats.MinError)
	fmt.Fprintf(w, "- Expanded uncertainty (k=2): ±%.4f m/s\n", stats.ExpandedUncertainty)
	if stats.HasTrend {
		fmt.Fprintf(w, "- Trend: error = %.4f·v + %.4f\n", stats.TrendSlope, stats.TrendIntercept)
	}
	fmt.Fprintf(w, "- Velocity range: %.3f - %.3f m/s\n", stats.VelocityRangeMin, stats.VelocityRangeMax)
}

// RenderAdvisory writes the highlighted calibration-complete advisory.
func RenderAdvisory(w io.Writer, pointCount int) {
	advisoryColor.Fprintf(w, "%d points recorded. Calibration run complete; more points may still be added.\n", pointCount)
}
