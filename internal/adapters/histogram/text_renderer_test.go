package histogram

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/AntonioJCosta/bellcurve/internal/core/domain/frequency"
	"github.com/AntonioJCosta/bellcurve/internal/core/domain/simulation"
)

func TestTextRenderer_Render(t *testing.T) {
	tests := []struct {
		name  string
		table frequency.Table
		scale float64
		want  string
	}{
		{
			name:  "scale one draws one marker per trial",
			table: frequency.Table{1, 2, 1},
			scale: 1,
			want:  "0\t*\n1\t**\n2\t*\n",
		},
		{
			name:  "partial markers are floored",
			table: frequency.Table{3, 7, 10},
			scale: 4,
			want:  "0\t\n1\t*\n2\t**\n",
		},
		{
			name:  "fractional scale widens bars",
			table: frequency.Table{2},
			scale: 0.5,
			want:  "0\t****\n",
		},
		{
			name:  "all-zero table prints empty bars",
			table: frequency.Table{0, 0, 0, 0},
			scale: 2000,
			want:  "0\t\n1\t\n2\t\n3\t\n",
		},
		{
			name:  "empty table prints nothing",
			table: frequency.Table{},
			scale: 1,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewTextRenderer().Render(&buf, tt.table, tt.scale); err != nil {
				t.Fatalf("Render() unexpected error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Render() output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextRenderer_Render_InvalidScale(t *testing.T) {
	table := frequency.Table{5, 10, 5}
	for _, scale := range []float64{0, -1, -2000, math.NaN(), math.Inf(1), math.Inf(-1)} {
		var buf bytes.Buffer
		err := NewTextRenderer().Render(&buf, table, scale)
		if !errors.Is(err, simulation.ErrInvalidScale) {
			t.Errorf("Render(scale=%v) error = %v, want ErrInvalidScale", scale, err)
		}
		if buf.Len() != 0 {
			t.Errorf("Render(scale=%v) wrote %q, want no output", scale, buf.String())
		}
	}
}

func TestTextRenderer_Render_BarTooLong(t *testing.T) {
	var buf bytes.Buffer
	err := NewTextRenderer().Render(&buf, frequency.Table{5, 10, 5}, 1e-30)
	if !errors.Is(err, ErrBarTooLong) {
		t.Errorf("Render() error = %v, want ErrBarTooLong", err)
	}
	if errors.Is(err, simulation.ErrInvalidScale) {
		t.Errorf("Render() error = %v, a positive scale must not be reported as invalid", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Render() wrote %q, want no output", buf.String())
	}
}

func TestBarLength_DoublingScaleHalvesBars(t *testing.T) {
	counts := []int{0, 1, 1999, 2000, 2001, 3999, 4000, 39876, 112345}
	for _, count := range counts {
		single, err := BarLength(count, 2000)
		if err != nil {
			t.Fatalf("BarLength(%d, 2000) unexpected error = %v", count, err)
		}
		double, err := BarLength(count, 4000)
		if err != nil {
			t.Fatalf("BarLength(%d, 4000) unexpected error = %v", count, err)
		}
		if single != count/2000 {
			t.Errorf("BarLength(%d, 2000) = %d, want %d", count, single, count/2000)
		}
		if double != single/2 {
			t.Errorf("BarLength(%d, 4000) = %d, want floor(%d/2) = %d", count, double, single, single/2)
		}
	}
}

func TestTextRenderer_Render_LineShape(t *testing.T) {
	table := frequency.Table{4000, 8000, 12000}
	var buf bytes.Buffer
	if err := NewTextRenderer().Render(&buf, table, 2000); err != nil {
		t.Fatalf("Render() unexpected error = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != len(table) {
		t.Fatalf("Render() wrote %d lines, want %d", len(lines), len(table))
	}
	for i, line := range lines {
		idx, bar, ok := strings.Cut(line, "\t")
		if !ok {
			t.Fatalf("line %d %q has no tab separator", i, line)
		}
		if want := []string{"0", "1", "2"}[i]; idx != want {
			t.Errorf("line %d index = %q, want %q", i, idx, want)
		}
		if strings.Trim(bar, DefaultMarker) != "" {
			t.Errorf("line %d bar %q contains characters other than %q", i, bar, DefaultMarker)
		}
		if len(bar) != table[i]/2000 {
			t.Errorf("line %d bar length = %d, want %d", i, len(bar), table[i]/2000)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTextRenderer_Render_WriteError(t *testing.T) {
	err := NewTextRenderer().Render(failingWriter{}, frequency.Table{1}, 1)
	if err == nil || !strings.Contains(err.Error(), "failed to write histogram") {
		t.Errorf("Render() error = %v, want a write failure", err)
	}
}
