package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"velocimetry-platform/internal/models"
	"velocimetry-platform/internal/plot"
	"velocimetry-platform/pkg/logging"
	"velocimetry-platform/pkg/metrics"
)

// Exporter writes calibration artifacts to the export directory.
type Exporter struct {
	logger  *logging.StructuredLogger
	metrics *metrics.Collector
}

// NewExporter creates a new exporter
func NewExporter(logger *logging.StructuredLogger, metricsCollector *metrics.Collector) *Exporter {
	return &Exporter{
		logger:  logger,
		metrics: metricsCollector,
	}
}

// ReportFilename returns the deterministic report name for a point count.
func ReportFilename(pointCount int) string {
	return fmt.Sprintf("velocimeter_calibration_%d_points.txt", pointCount)
}

// ChartFilename returns the deterministic chart name for a point count.
func ChartFilename(pointCount int) string {
	return fmt.Sprintf("velocimeter_calibration_%d_points.png", pointCount)
}

// WriteReport renders the report and writes it UTF-8 encoded into dir,
// returning the full path. Nothing is written for an empty session;
// rendering and filesystem errors both propagate.
func (e *Exporter) WriteReport(ctx context.Context, dir string, pipe *models.PipeSpec, sessionID string, points []models.CalibrationPoint, stats *models.CalibrationStatistics) (string, error) {
	text, err := Render(pipe, sessionID, points, stats)
	if err != nil {
		e.metrics.RecordExportError("empty_session")
		return "", err
	}

	path := filepath.Join(dir, ReportFilename(len(points)))
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		e.metrics.RecordExportError("write_failed")
		return "", fmt.Errorf("write report: %w", err)
	}

	e.metrics.ReportExportsTotal.Inc()
	e.logger.Info(ctx, "[EXPORT_REPORT] Calibration report written", logging.Fields{
		"path":        path,
		"point_count": len(points),
	})

	return path, nil
}

// WriteChart renders the error-vs-velocity chart PNG into dir, returning
// the full path. Follows the same empty-session contract as WriteReport.
func (e *Exporter) WriteChart(ctx context.Context, dir string, points []models.CalibrationPoint, stats *models.CalibrationStatistics, width, height int) (string, error) {
	png, err := plot.RenderChart(points, stats, width, height)
	if err != nil {
		e.metrics.RecordExportError("chart_render")
		return "", err
	}

	path := filepath.Join(dir, ChartFilename(len(points)))
	if err := os.WriteFile(path, png, 0644); err != nil {
		e.metrics.RecordExportError("write_failed")
		return "", fmt.Errorf("write chart: %w", err)
	}

	e.metrics.ChartRendersTotal.Inc()
	e.logger.Info(ctx, "[EXPORT_CHART] Calibration chart written", logging.Fields{
		"path":        path,
		"point_count": len(points),
	})
	return path, nil
}
