package trialsimulation

import (
	"context"
	"fmt"
	"time"

	"github.com/AntonioJCosta/bellcurve/internal/core/domain/simulation"
	"github.com/AntonioJCosta/bellcurve/internal/core/ports"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type service struct {
	sources  ports.CoinSourceFactory
	renderer ports.HistogramRenderer
	logger   log.Logger
}

// NewService creates a new simulation service.
// It panics if the coin source factory or renderer are nil. A nil logger discards output.
func NewService(
	csf ports.CoinSourceFactory,
	hr ports.HistogramRenderer,
	logger log.Logger,
) ports.SimulationService {
	if csf == nil {
		panic("coinSourceFactory cannot be nil")
	}
	if hr == nil {
		panic("renderer cannot be nil")
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &service{
		sources:  csf,
		renderer: hr,
		logger:   logger,
	}
}

// Simulate validates cfg, scale included, and runs the simulation it describes.
// The scale is checked up front so a bad one fails before any trial runs.
func (s *service) Simulate(ctx context.Context, cfg simulation.Config) (ports.TrialSimulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	workers := cfg.EffectiveWorkers()
	sources, seed, err := s.sources.NewSources(cfg.Seed, workers)
	if err != nil {
		return nil, fmt.Errorf("failed to create coin sources: %w", err)
	}

	level.Info(s.logger).Log(
		"msg", "starting simulation",
		"occurrences_per_trial", cfg.OccurrencesPerTrial,
		"trials", cfg.NumTrials,
		"workers", workers,
		"seed", seed,
	)
	start := time.Now()

	sim, err := newSimulator(ctx, cfg.OccurrencesPerTrial, cfg.NumTrials, seed, sources, s.renderer)
	if err != nil {
		level.Error(s.logger).Log("msg", "simulation failed", "err", err)
		return nil, err
	}

	level.Info(s.logger).Log("msg", "simulation complete", "elapsed", time.Since(start))
	level.Debug(s.logger).Log("msg", "frequency table", "peak", sim.table.Peak())
	return sim, nil
}
