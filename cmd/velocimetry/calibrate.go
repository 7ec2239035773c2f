package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"velocimetry-platform/internal/models"
	"velocimetry-platform/internal/ui"
)

func newCalibrateCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "calibrate",
		Short: "Run an interactive velocimeter calibration session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*configPath, "velocimetry-calibrate")
			if err != nil {
				return err
			}
			return a.runCalibration(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (a *app) runCalibration(in io.Reader, out io.Writer) error {
	ctx := context.Background()
	prompter := ui.NewPrompter(in, out)

	fmt.Fprintln(out, "Velocimeter calibration session")
	fmt.Fprintln(out, "Pipe configuration for the whole session:")
	pipe, err := prompter.PipeSpec()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	fmt.Fprintln(out, "commands: add, list, stats, export, chart, clear, quit")
	for {
		command, err := prompter.Line("calibrate>")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch command {
		case "add":
			if err := a.addPoint(ctx, prompter, out, pipe); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		case "list":
			ui.RenderPointsTable(out, a.session.Points())
		case "stats":
			ui.RenderStatistics(out, a.session.Statistics())
		case "export":
			path, err := a.exporter.WriteReport(ctx, a.cfg.Export.Directory, a.session.Pipe(), a.session.ID().String(), a.session.Points(), a.session.Statistics())
			if err != nil {
				fmt.Fprintf(out, "export failed: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "report written to %s\n", path)
		case "chart":
			path, err := a.exporter.WriteChart(ctx, a.cfg.Export.Directory, a.session.Points(), a.session.Statistics(), a.cfg.Chart.Width, a.cfg.Chart.Height)
			if err != nil {
				fmt.Fprintf(out, "chart failed: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "chart written to %s\n", path)
		case "clear":
			a.session.Clear(ctx)
			fmt.Fprintln(out, "calibration data cleared")
		case "quit", "exit":
			return nil
		case "", "help":
			fmt.Fprintln(out, "commands: add, list, stats, export, chart, clear, quit")
		default:
			fmt.Fprintf(out, "unknown command %q\n", command)
		}
	}
}

func (a *app) addPoint(ctx context.Context, prompter *ui.Prompter, out io.Writer, pipe *models.PipeSpec) error {
	flowValue, err := prompter.PositiveFloat("Reference flow rate")
	if err != nil {
		return err
	}
	unit, err := prompter.Unit("Flow unit")
	if err != nil {
		return err
	}
	instrument, err := prompter.Float("Instrument velocity (m/s)")
	if err != nil {
		return err
	}

	targetBefore := a.session.TargetReached()
	point, err := a.session.AddPoint(ctx, pipe, flowValue, unit, instrument)
	if err != nil {
		fmt.Fprintf(out, "could not add point: %v\n", err)
		return nil
	}

	fmt.Fprintf(out, "point %d: reference %.4f m/s, error %.4f m/s\n", point.Index, point.ReferenceVelocity, point.Error)
	ui.RenderStatistics(out, a.session.Statistics())
	if !targetBefore && a.session.TargetReached() {
		ui.RenderAdvisory(out, a.session.Count())
	}
	return nil
}
