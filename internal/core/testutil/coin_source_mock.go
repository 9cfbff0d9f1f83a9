package testutil

import (
	"sync"

	"github.com/AntonioJCosta/bellcurve/internal/core/ports"
)

// SequenceCoin replays a fixed sequence of draws, starting over when it runs out.
// An empty sequence always tosses false.
type SequenceCoin struct {
	mu       sync.Mutex
	Sequence []bool
	next     int
	Tosses   int
}

// NewSequenceCoin creates a coin that replays draws in order.
func NewSequenceCoin(draws ...bool) *SequenceCoin {
	return &SequenceCoin{Sequence: draws}
}

// Toss returns the next draw of the sequence.
func (c *SequenceCoin) Toss() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Tosses++
	if len(c.Sequence) == 0 {
		return false
	}
	v := c.Sequence[c.next]
	c.next = (c.next + 1) % len(c.Sequence)
	return v
}

// MockCoinSourceFactory is a mock implementation of the ports.CoinSourceFactory interface.
type MockCoinSourceFactory struct {
	NewSourcesFunc func(seed uint64, count int) ([]ports.CoinSource, uint64, error)

	// Calls records the arguments of every NewSources call.
	Calls []SourceRequest
}

// SourceRequest is one recorded NewSources call.
type SourceRequest struct {
	Seed  uint64
	Count int
}

// NewSources mocks the NewSources method.
func (m *MockCoinSourceFactory) NewSources(seed uint64, count int) ([]ports.CoinSource, uint64, error) {
	m.Calls = append(m.Calls, SourceRequest{Seed: seed, Count: count})
	if m.NewSourcesFunc != nil {
		return m.NewSourcesFunc(seed, count)
	}
	// Default behavior: every source tosses false.
	sources := make([]ports.CoinSource, count)
	for i := range sources {
		sources[i] = NewSequenceCoin()
	}
	return sources, seed, nil
}

// Ensure the mocks implement their interfaces.
var (
	_ ports.CoinSource        = (*SequenceCoin)(nil)
	_ ports.CoinSourceFactory = (*MockCoinSourceFactory)(nil)
)
