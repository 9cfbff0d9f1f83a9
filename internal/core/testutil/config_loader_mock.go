package testutil

import (
	"github.com/AntonioJCosta/bellcurve/internal/core/domain/simulation"
	"github.com/AntonioJCosta/bellcurve/internal/core/ports"
)

// MockConfigLoader is a mock implementation of the ports.ConfigLoader interface.
type MockConfigLoader struct {
	LoadFunc func(path string) (simulation.Config, error)
}

// Load mocks the Load method.
func (m *MockConfigLoader) Load(path string) (simulation.Config, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(path)
	}
	// Default behavior: the stock configuration.
	return simulation.DefaultConfig(), nil
}

// Ensure MockConfigLoader implements the ports.ConfigLoader interface.
var _ ports.ConfigLoader = (*MockConfigLoader)(nil)
