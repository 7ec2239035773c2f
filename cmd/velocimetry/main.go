package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"velocimetry-platform/internal/config"
	"velocimetry-platform/internal/report"
	"velocimetry-platform/internal/services"
	"velocimetry-platform/pkg/logging"
	"velocimetry-platform/pkg/metrics"
)

const version = "1.0.0"

func main() {
	if err := NewCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewCommand builds the root command with the calc and calibrate subcommands.
func NewCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "velocimetry",
		Short:        "Pipe velocity calculator and velocimeter calibration bench",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the JSON config file")

	cmd.AddCommand(newCalcCommand(&configPath))
	cmd.AddCommand(newCalibrateCommand(&configPath))
	return cmd
}

// app bundles the wired services behind the CLI.
type app struct {
	cfg        config.Config
	logger     *logging.StructuredLogger
	velocity   *services.VelocityService
	statistics *services.StatisticsService
	session    *services.CalibrationSession
	exporter   *report.Exporter
}

func buildApp(configPath, service string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.NewStructuredLogger(service, version, cfg.Logging.Level, cfg.Logging.Format)
	collector := metrics.NewCollector("velocimetry")

	velocity := services.NewVelocityService(logger, collector)
	statistics := services.NewStatisticsService(logger, collector)
	session := services.NewCalibrationSession(velocity, statistics, cfg.Calibration.TargetPoints, logger, collector)
	exporter := report.NewExporter(logger, collector)

	return &app{
		cfg:        cfg,
		logger:     logger,
		velocity:   velocity,
		statistics: statistics,
		session:    session,
		exporter:   exporter,
	}, nil
}
