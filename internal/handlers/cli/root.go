package cli

import (
	"fmt"

	"github.com/AntonioJCosta/bellcurve/internal/core/ports"
	"github.com/AntonioJCosta/bellcurve/internal/logging"
	"github.com/go-kit/log"
	"github.com/spf13/cobra"
)

/*
NewRootCommand builds the bellcurve command tree. Running the root command
without a subcommand behaves like "run". logger, when not nil, is swapped to
the level chosen with --log-level before any command runs.
*/
func NewRootCommand(
	version string,
	simulationService ports.SimulationService,
	analyzer ports.DistributionAnalyzer,
	configLoader ports.ConfigLoader,
	logger *log.SwapLogger,
) *cobra.Command {
	flags := &simulationFlags{}

	rootCmd := &cobra.Command{
		Use:   "bellcurve",
		Short: "bellcurve flips coins and draws the bell curve they make.",
		Long: `bellcurve runs many trials of repeated fair coin flips, counts how many
flips in each trial came up heads, and prints the counts as a text histogram
that approaches the normal distribution.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if simulationService == nil {
				return fmt.Errorf("simulation service not initialized for command %s", cmd.Name())
			}
			if configLoader == nil {
				return fmt.Errorf("configuration loader not initialized for command %s", cmd.Name())
			}
			if analyzer == nil && cmd.Name() == "stats" {
				return fmt.Errorf("distribution analyzer not initialized for command %s", cmd.Name())
			}
			if logger != nil {
				l, err := logging.New(cmd.ErrOrStderr(), flags.logLevel)
				if err != nil {
					return err
				}
				logger.Swap(l)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulationCmd(cmd, flags, configLoader, simulationService)
		},
	}

	bindSimulationFlags(rootCmd.PersistentFlags(), flags)

	rootCmd.AddCommand(NewRunCommand(flags, configLoader, simulationService))
	rootCmd.AddCommand(NewStatsCommand(flags, configLoader, simulationService, analyzer))

	return rootCmd
}
