package ports

import (
	"context"
	"io"

	"github.com/AntonioJCosta/bellcurve/internal/core/domain/frequency"
	"github.com/AntonioJCosta/bellcurve/internal/core/domain/simulation"
)

// TrialSimulator is a finished simulation run. Its table never changes after construction.
type TrialSimulator interface {
	OccurrencesPerTrial() int
	NumTrials() int
	// Seed is the seed the run's coin sources were derived from, zero if unknown.
	Seed() uint64
	// Frequencies returns a copy of the frequency table.
	Frequencies() frequency.Table
	// Print writes the histogram of the run, one marker per scale trials.
	Print(w io.Writer, scale float64) error
}

// SimulationService runs simulations described by a configuration.
type SimulationService interface {
	Simulate(ctx context.Context, cfg simulation.Config) (TrialSimulator, error)
}
