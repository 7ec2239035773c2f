// Package report renders and exports the calibration report.
package report

import (
	"fmt"
	"strings"

	"velocimetry-platform/internal/models"
)

const sectionWidth = 50

// Render produces the fixed-layout calibration report: header, pipe
// configuration, point table and statistics block. It performs no
// computation; an empty point sequence is a "nothing to report" error.
func Render(pipe *models.PipeSpec, sessionID string, points []models.CalibrationPoint, stats *models.CalibrationStatistics) (string, error) {
	if len(points) == 0 || stats == nil {
		return "", &models.EmptyStateError{Operation: "report rendering"}
	}

	var b strings.Builder

	b.WriteString("VELOCIMETER CALIBRATION REPORT\n")
	b.WriteString(strings.Repeat("=", sectionWidth) + "\n\n")
	fmt.Fprintf(&b, "Session: %s\n\n", sessionID)

	b.WriteString("Pipe configuration:\n")
	fmt.Fprintf(&b, "- Outer diameter: %.2f mm\n", pipe.OuterDiameterMM)
	fmt.Fprintf(&b, "- Wall thickness: %.2f mm\n", pipe.WallThicknessMM)
	fmt.Fprintf(&b, "- Inner diameter: %.2f mm\n\n", pipe.InnerDiameterMM())

	b.WriteString("CALIBRATION DATA:\n")
	b.WriteString(strings.Repeat("-", sectionWidth) + "\n")
	fmt.Fprintf(&b, "%-6s %-12s %-12s %-10s\n", "Point", "Ref(m/s)", "Inst(m/s)", "Error(m/s)")
	b.WriteString(strings.Repeat("-", sectionWidth) + "\n")
	for _, p := range points {
		fmt.Fprintf(&b, "%-6d %-12.4f %-12.4f %-10.4f\n", p.Index, p.ReferenceVelocity, p.InstrumentVelocity, p.Error)
	}

	b.WriteString("\n" + strings.Repeat("=", sectionWidth) + "\n")
	b.WriteString("STATISTICS:\n")
	fmt.Fprintf(&b, "- Mean error: %.4f m/s\n", stats.MeanError)
	fmt.Fprintf(&b, "- Standard deviation: %.4f m/s\n", stats.StdError)
	fmt.Fprintf(&b, "- Maximum error: %.4f m/s\n", stats.MaxError)
	fmt.Fprintf(&b, "- Minimum error: %.4f m/s\n", stats.MinError)
	fmt.Fprintf(&b, "- Expanded uncertainty (k=2): ±%.4f m/s\n", stats.ExpandedUncertainty)

	return b.String(), nil
}
