package testutil

import (
	"context"
	"io"

	"github.com/AntonioJCosta/bellcurve/internal/core/domain/frequency"
	"github.com/AntonioJCosta/bellcurve/internal/core/domain/simulation"
	"github.com/AntonioJCosta/bellcurve/internal/core/ports"
)

// MockSimulationService is a mock implementation of the ports.SimulationService interface.
type MockSimulationService struct {
	SimulateFunc func(ctx context.Context, cfg simulation.Config) (ports.TrialSimulator, error)

	// LastConfig holds the configuration of the most recent Simulate call.
	LastConfig simulation.Config
}

// Simulate mocks the Simulate method.
func (m *MockSimulationService) Simulate(ctx context.Context, cfg simulation.Config) (ports.TrialSimulator, error) {
	m.LastConfig = cfg
	if m.SimulateFunc != nil {
		return m.SimulateFunc(ctx, cfg)
	}
	return &MockTrialSimulator{Occurrences: cfg.OccurrencesPerTrial, Trials: cfg.NumTrials, RunSeed: cfg.Seed, Table: frequency.New(cfg.OccurrencesPerTrial)}, nil
}

// MockTrialSimulator is a finished run with a fixed table.
type MockTrialSimulator struct {
	Occurrences int
	Trials      int
	RunSeed     uint64
	Table       frequency.Table
	PrintFunc   func(w io.Writer, scale float64) error
}

func (m *MockTrialSimulator) OccurrencesPerTrial() int { return m.Occurrences }

func (m *MockTrialSimulator) NumTrials() int { return m.Trials }

func (m *MockTrialSimulator) Seed() uint64 { return m.RunSeed }

func (m *MockTrialSimulator) Frequencies() frequency.Table { return m.Table.Clone() }

// Print mocks the Print method. By default it writes nothing.
func (m *MockTrialSimulator) Print(w io.Writer, scale float64) error {
	if m.PrintFunc != nil {
		return m.PrintFunc(w, scale)
	}
	return nil
}

// Ensure the mocks implement their interfaces.
var (
	_ ports.SimulationService = (*MockSimulationService)(nil)
	_ ports.TrialSimulator    = (*MockTrialSimulator)(nil)
)
