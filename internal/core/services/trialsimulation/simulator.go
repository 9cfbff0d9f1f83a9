package trialsimulation

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/AntonioJCosta/bellcurve/internal/core/domain/frequency"
	"github.com/AntonioJCosta/bellcurve/internal/core/domain/simulation"
	"github.com/AntonioJCosta/bellcurve/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is how many trials run between context checks.
const cancelCheckInterval = 1 << 14

type simulator struct {
	occurrencesPerTrial int
	numTrials           int
	seed                uint64
	table               frequency.Table
	renderer            ports.HistogramRenderer
}

/*
NewSimulator runs numTrials trials of occurrencesPerTrial draws and returns the
finished run. Simulation is eager: the table is complete when NewSimulator
returns and is never modified afterwards.

Each source in sources drives one worker. With a single source the trials run
sequentially; with several, every worker tallies a private partial table over
its share of the trials and merges it into the result when done.
It panics if renderer is nil.
*/
func NewSimulator(
	ctx context.Context,
	occurrencesPerTrial, numTrials int,
	sources []ports.CoinSource,
	renderer ports.HistogramRenderer,
) (ports.TrialSimulator, error) {
	s, err := newSimulator(ctx, occurrencesPerTrial, numTrials, 0, sources, renderer)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// newSimulator is NewSimulator with the seed the sources were derived from, zero if unknown.
func newSimulator(
	ctx context.Context,
	occurrencesPerTrial, numTrials int,
	seed uint64,
	sources []ports.CoinSource,
	renderer ports.HistogramRenderer,
) (*simulator, error) {
	if renderer == nil {
		panic("renderer cannot be nil")
	}
	counts := simulation.Config{OccurrencesPerTrial: occurrencesPerTrial, NumTrials: numTrials}
	if err := counts.ValidateCounts(); err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: at least one coin source is required", simulation.ErrInvalidConfig)
	}
	for i, src := range sources {
		if src == nil {
			return nil, fmt.Errorf("%w: coin source %d is nil", simulation.ErrInvalidConfig, i)
		}
	}

	s := &simulator{
		occurrencesPerTrial: occurrencesPerTrial,
		numTrials:           numTrials,
		seed:                seed,
		table:               frequency.New(occurrencesPerTrial),
		renderer:            renderer,
	}

	var err error
	if len(sources) == 1 {
		err = runTrials(ctx, s.table, sources[0], occurrencesPerTrial, numTrials)
	} else {
		err = s.runParallel(ctx, sources)
	}
	if err != nil {
		return nil, fmt.Errorf("simulation interrupted: %w", err)
	}
	return s, nil
}

func (s *simulator) runParallel(ctx context.Context, sources []ports.CoinSource) error {
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	workers := len(sources)
	for w, src := range sources {
		share := s.numTrials / workers
		if w < s.numTrials%workers {
			share++
		}
		g.Go(func() error {
			partial := frequency.New(s.occurrencesPerTrial)
			if err := runTrials(ctx, partial, src, s.occurrencesPerTrial, share); err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			return s.table.Merge(partial)
		})
	}
	return g.Wait()
}

// runTrials tallies trials into table.
func runTrials(ctx context.Context, table frequency.Table, src ports.CoinSource, occurrencesPerTrial, trials int) error {
	for trial := 0; trial < trials; trial++ {
		if trial%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		positives := 0
		for j := 0; j < occurrencesPerTrial; j++ {
			if src.Toss() {
				positives++
			}
		}
		table.Record(positives)
	}
	return nil
}

func (s *simulator) OccurrencesPerTrial() int {
	return s.occurrencesPerTrial
}

func (s *simulator) NumTrials() int {
	return s.numTrials
}

func (s *simulator) Seed() uint64 {
	return s.seed
}

func (s *simulator) Frequencies() frequency.Table {
	return s.table.Clone()
}

// Print writes the histogram of the run to w, one marker per scale trials.
func (s *simulator) Print(w io.Writer, scale float64) error {
	if err := s.renderer.Render(w, s.table, scale); err != nil {
		return fmt.Errorf("could not print histogram: %w", err)
	}
	return nil
}
