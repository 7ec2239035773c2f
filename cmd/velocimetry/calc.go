package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"velocimetry-platform/internal/ui"
)

func newCalcCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "calc",
		Short: "Compute fluid velocity from a flow rate and pipe geometry",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*configPath, "velocimetry-calc")
			if err != nil {
				return err
			}
			return a.runCalculator(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (a *app) runCalculator(in io.Reader, out io.Writer) error {
	ctx := context.Background()
	prompter := ui.NewPrompter(in, out)

	flowValue, err := prompter.PositiveFloat("Flow rate")
	if err != nil {
		return err
	}
	unit, err := prompter.Unit("Flow unit")
	if err != nil {
		return err
	}
	pipe, err := prompter.PipeSpec()
	if err != nil {
		return err
	}

	result, err := a.velocity.Compute(ctx, flowValue, unit, pipe)
	if err != nil {
		return err
	}
	ui.RenderVelocityResult(out, flowValue, unit, pipe, result)
	return nil
}
