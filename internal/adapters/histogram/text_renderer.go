package histogram

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/bellcurve/internal/core/domain/frequency"
	"github.com/AntonioJCosta/bellcurve/internal/core/domain/simulation"
	"github.com/AntonioJCosta/bellcurve/internal/core/ports"
)

// DefaultMarker is the character a bar is drawn with.
const DefaultMarker = "*"

// MaxBarLength caps a single bar.
const MaxBarLength = 1 << 24

// ErrBarTooLong is returned when a valid scale would still draw a bar longer than MaxBarLength.
var ErrBarTooLong = errors.New("histogram bar too long")

// TextRenderer implements the HistogramRenderer interface as plain text lines
// of the form "<index>\t<markers>".
type TextRenderer struct {
	marker string
}

// NewTextRenderer creates a renderer that draws bars with DefaultMarker.
func NewTextRenderer() ports.HistogramRenderer {
	return &TextRenderer{marker: DefaultMarker}
}

// Render writes the histogram of table to w. Bar lengths are computed up
// front, so an unusable scale leaves w untouched.
func (r *TextRenderer) Render(w io.Writer, table frequency.Table, scale float64) error {
	if err := simulation.ValidateScale(scale); err != nil {
		return err
	}

	lengths := make([]int, len(table))
	for i, count := range table {
		n, err := BarLength(count, scale)
		if err != nil {
			return fmt.Errorf("bar %d: %w", i, err)
		}
		lengths[i] = n
	}

	bw := bufio.NewWriter(w)
	for i, n := range lengths {
		bw.WriteString(strconv.Itoa(i))
		bw.WriteByte('\t')
		bw.WriteString(strings.Repeat(r.marker, n))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write histogram: %w", err)
	}
	return nil
}

// BarLength returns floor(count/scale), the number of markers for count trials.
func BarLength(count int, scale float64) (int, error) {
	if err := simulation.ValidateScale(scale); err != nil {
		return 0, err
	}
	length := math.Floor(float64(count) / scale)
	if length > MaxBarLength {
		return 0, fmt.Errorf("%w: %d trials at scale %v need %.0f markers, limit is %d",
			ErrBarTooLong, count, scale, length, MaxBarLength)
	}
	if length < 0 {
		return 0, nil
	}
	return int(length), nil
}
