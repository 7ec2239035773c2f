// Package plot renders the error-vs-velocity calibration chart.
package plot

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"velocimetry-platform/internal/models"
)

const (
	defaultWidth  = 800
	defaultHeight = 500
)

// RenderChart draws the calibration scatter, the zero-error baseline, the
// least-squares trend (when fitted) and the ±2σ band around the mean error
// (when the dispersion is non-zero), returning PNG bytes.
func RenderChart(points []models.CalibrationPoint, stats *models.CalibrationStatistics, width, height int) ([]byte, error) {
	if len(points) == 0 || stats == nil {
		return nil, &models.EmptyStateError{Operation: "chart rendering"}
	}
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	minX, maxX := points[0].ReferenceVelocity, points[0].ReferenceVelocity
	for i, p := range points {
		xs[i] = p.ReferenceVelocity
		ys[i] = p.Error
		if p.ReferenceVelocity < minX {
			minX = p.ReferenceVelocity
		}
		if p.ReferenceVelocity > maxX {
			maxX = p.ReferenceVelocity
		}
	}
	// go-chart cannot draw a zero-width X range; pad around a single
	// reference velocity.
	if minX == maxX {
		minX -= 0.5
		maxX += 0.5
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Zero error",
			XValues: []float64{minX, maxX},
			YValues: []float64{0, 0},
			Style: chart.Style{
				StrokeColor: chart.ColorBlack,
				StrokeWidth: 1,
			},
		},
		chart.ContinuousSeries{
			Name:    "Measurements",
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(chart.ColorRed),
		},
	}

	if stats.HasTrend {
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("Trend: y = %.4fx + %.4f", stats.TrendSlope, stats.TrendIntercept),
			XValues: []float64{minX, maxX},
			YValues: []float64{
				stats.TrendSlope*minX + stats.TrendIntercept,
				stats.TrendSlope*maxX + stats.TrendIntercept,
			},
			Style: chart.Style{
				StrokeColor:     chart.ColorBlue,
				StrokeWidth:     1.5,
				StrokeDashArray: []float64{5, 5},
			},
		})
	}

	if stats.StdError > 0 {
		upper := stats.MeanError + stats.ExpandedUncertainty
		lower := stats.MeanError - stats.ExpandedUncertainty
		bandStyle := chart.Style{
			StrokeColor:     chart.ColorOrange,
			StrokeWidth:     1,
			StrokeDashArray: []float64{2, 2},
		}
		series = append(series,
			chart.ContinuousSeries{
				Name:    "+2σ",
				XValues: []float64{minX, maxX},
				YValues: []float64{upper, upper},
				Style:   bandStyle,
			},
			chart.ContinuousSeries{
				Name:    "-2σ",
				XValues: []float64{minX, maxX},
				YValues: []float64{lower, lower},
				Style:   bandStyle,
			},
		)
	}

	ch := chart.Chart{
		Title:  "Error vs Reference Velocity",
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Name: "Reference velocity (m/s)"},
		YAxis:  chart.YAxis{Name: "Error (m/s)"},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// pointStyle returns a style that renders points only (no connecting line)
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}
