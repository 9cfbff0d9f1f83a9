package simulation

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.OccurrencesPerTrial != 50 || cfg.NumTrials != 1000000 || cfg.Scale != 2000.0 {
		t.Errorf("DefaultConfig() = %+v, want 50 draws, 1000000 trials, scale 2000", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() unexpected error = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"zero counts are valid", Config{Scale: 1}, nil},
		{"fractional scale", Config{OccurrencesPerTrial: 3, NumTrials: 3, Scale: 0.25}, nil},
		{"negative occurrences", Config{OccurrencesPerTrial: -1, Scale: 1}, ErrInvalidConfig},
		{"negative trials", Config{NumTrials: -1, Scale: 1}, ErrInvalidConfig},
		{"largest occurrences", Config{OccurrencesPerTrial: MaxOccurrencesPerTrial, Scale: 1}, nil},
		{"occurrences past the table limit", Config{OccurrencesPerTrial: MaxOccurrencesPerTrial + 1, Scale: 1}, ErrInvalidConfig},
		{"occurrences at MaxInt", Config{OccurrencesPerTrial: math.MaxInt, Scale: 1}, ErrInvalidConfig},
		{"negative workers", Config{Workers: -1, Scale: 1}, ErrInvalidConfig},
		{"zero scale", Config{Scale: 0}, ErrInvalidScale},
		{"negative scale", Config{Scale: -2000}, ErrInvalidScale},
		{"NaN scale", Config{Scale: math.NaN()}, ErrInvalidScale},
		{"infinite scale", Config{Scale: math.Inf(1)}, ErrInvalidScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateCounts_IgnoresScale(t *testing.T) {
	if err := (Config{Scale: -1}).ValidateCounts(); err != nil {
		t.Errorf("ValidateCounts() unexpected error = %v", err)
	}
}

func TestConfig_EffectiveWorkers(t *testing.T) {
	tests := []struct {
		workers, trials, want int
	}{
		{0, 100, 1},
		{1, 100, 1},
		{4, 100, 4},
		{8, 3, 3},
		{8, 0, 8},
	}
	for _, tt := range tests {
		cfg := Config{Workers: tt.workers, NumTrials: tt.trials}
		if got := cfg.EffectiveWorkers(); got != tt.want {
			t.Errorf("EffectiveWorkers(workers=%d, trials=%d) = %d, want %d", tt.workers, tt.trials, got, tt.want)
		}
	}
}
