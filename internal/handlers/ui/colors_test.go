package ui

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFit(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = saved })

	tests := []struct {
		name        string
		correlation float64
		want        string
	}{
		{"close fit", 0.995, SuccessColor("x")},
		{"loose fit", 0.95, WarningColor("x")},
		{"poor fit", 0.2, ErrorColor("x")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(tt.correlation, "x")
			if got != tt.want {
				t.Errorf("Fit(%v) = %q, want %q", tt.correlation, got, tt.want)
			}
			if !strings.Contains(got, "x") {
				t.Errorf("Fit(%v) = %q lost the text", tt.correlation, got)
			}
		})
	}
}
