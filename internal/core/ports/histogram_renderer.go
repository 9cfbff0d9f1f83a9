package ports

import (
	"io"

	"github.com/AntonioJCosta/bellcurve/internal/core/domain/frequency"
)

// HistogramRenderer draws a frequency table as a scaled text bar chart.
type HistogramRenderer interface {
	// Render writes one line per table entry. It fails without writing
	// anything when scale is not a positive finite number.
	Render(w io.Writer, table frequency.Table, scale float64) error
}
