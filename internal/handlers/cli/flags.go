package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/bellcurve/internal/core/domain/simulation"
	"github.com/AntonioJCosta/bellcurve/internal/core/ports"
	"github.com/AntonioJCosta/bellcurve/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flag names shared by every command.
const (
	flagConfig      = "config"
	flagLogLevel    = "log-level"
	flagOccurrences = "occurrences"
	flagTrials      = "trials"
	flagScale       = "scale"
	flagSeed        = "seed"
	flagWorkers     = "workers"
)

type simulationFlags struct {
	configPath  string
	logLevel    string
	occurrences int
	trials      int
	scale       float64
	seed        uint64
	workers     int
}

func bindSimulationFlags(fs *pflag.FlagSet, f *simulationFlags) {
	fs.StringVarP(&f.configPath, flagConfig, "c", "", "Path to a YAML file with simulation settings.")
	fs.StringVar(&f.logLevel, flagLogLevel, logging.DefaultLevel, fmt.Sprintf("Diagnostics level on stderr (%s).", strings.Join(logging.Levels, "|")))
	fs.IntVarP(&f.occurrences, flagOccurrences, "o", simulation.DefaultOccurrencesPerTrial, "Coin flips per trial.")
	fs.IntVarP(&f.trials, flagTrials, "n", simulation.DefaultNumTrials, "Number of trials to run.")
	fs.Float64VarP(&f.scale, flagScale, "s", simulation.DefaultScale, "Trials represented by one '*' marker; must be positive.")
	fs.Uint64Var(&f.seed, flagSeed, 0, "Seed for a reproducible run (0 draws one from OS entropy).")
	fs.IntVarP(&f.workers, flagWorkers, "w", simulation.DefaultWorkers, "Goroutines sharing the trials.")
}

/*
resolveConfig builds the configuration for a run. The loader supplies the
defaults, the optional config file and the environment; flags the user set
explicitly win over all of them. The result is validated.
*/
func resolveConfig(cmd *cobra.Command, f *simulationFlags, loader ports.ConfigLoader) (simulation.Config, error) {
	cfg, err := loader.Load(f.configPath)
	if err != nil {
		return cfg, fmt.Errorf("could not load configuration: %w", err)
	}

	fs := cmd.Flags()
	if fs.Changed(flagOccurrences) {
		cfg.OccurrencesPerTrial = f.occurrences
	}
	if fs.Changed(flagTrials) {
		cfg.NumTrials = f.trials
	}
	if fs.Changed(flagScale) {
		cfg.Scale = f.scale
	}
	if fs.Changed(flagSeed) {
		cfg.Seed = f.seed
	}
	if fs.Changed(flagWorkers) {
		cfg.Workers = f.workers
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
