package cli

import (
	"fmt"

	"github.com/AntonioJCosta/bellcurve/internal/core/ports"
	"github.com/spf13/cobra"
)

// NewRunCommand creates the 'run' subcommand.
func NewRunCommand(
	flags *simulationFlags,
	configLoader ports.ConfigLoader,
	simulationService ports.SimulationService,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate coin-flip trials and print the histogram.",
		Long: `Runs the configured number of trials and prints one line per possible
number of heads: the count, a tab, and one '*' for every <scale> trials.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulationCmd(cmd, flags, configLoader, simulationService)
		},
	}
	return cmd
}

// runSimulationCmd contains the core logic for the 'run' command.
func runSimulationCmd(
	cmd *cobra.Command,
	flags *simulationFlags,
	configLoader ports.ConfigLoader,
	simulationService ports.SimulationService,
) error {
	cfg, err := resolveConfig(cmd, flags, configLoader)
	if err != nil {
		return err
	}

	sim, err := simulationService.Simulate(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("could not run simulation: %w", err)
	}

	return sim.Print(cmd.OutOrStdout(), cfg.Scale)
}
