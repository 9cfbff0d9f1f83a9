package testutil

import (
	"io"

	"github.com/AntonioJCosta/bellcurve/internal/core/domain/frequency"
	"github.com/AntonioJCosta/bellcurve/internal/core/ports"
)

// MockHistogramRenderer is a mock implementation of the ports.HistogramRenderer interface.
type MockHistogramRenderer struct {
	RenderFunc func(w io.Writer, table frequency.Table, scale float64) error
}

// Render mocks the Render method.
func (m *MockHistogramRenderer) Render(w io.Writer, table frequency.Table, scale float64) error {
	if m.RenderFunc != nil {
		return m.RenderFunc(w, table, scale)
	}
	return nil
}

// Ensure MockHistogramRenderer implements the ports.HistogramRenderer interface.
var _ ports.HistogramRenderer = (*MockHistogramRenderer)(nil)
