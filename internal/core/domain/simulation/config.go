/*
Package simulation defines the configuration of a coin-trial simulation run.
*/
package simulation

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidConfig marks negative trial or draw counts and other unusable settings.
	ErrInvalidConfig = errors.New("invalid simulation configuration")
	// ErrInvalidScale marks a render scale that is not a positive finite number.
	ErrInvalidScale = errors.New("invalid histogram scale")
)

// Defaults used when nothing else configures a run.
const (
	DefaultOccurrencesPerTrial = 50
	DefaultNumTrials           = 1000000
	DefaultScale               = 2000.0
	DefaultWorkers             = 1
)

// MaxOccurrencesPerTrial bounds the draws per trial, and with it the frequency table size.
const MaxOccurrencesPerTrial = math.MaxInt32 - 1

/*
Config describes one simulation run: how many trials to run, how many draws
each trial makes, and how many trials one histogram marker stands for.
*/
type Config struct {
	OccurrencesPerTrial int     `yaml:"occurrences_per_trial" env:"OCCURRENCES"`
	NumTrials           int     `yaml:"trials" env:"TRIALS"`
	Scale               float64 `yaml:"scale" env:"SCALE"`
	// Seed fixes the random stream. Zero draws a fresh seed from OS entropy.
	Seed uint64 `yaml:"seed" env:"SEED"`
	// Workers is the number of goroutines sharing the trials. Zero means one.
	Workers int `yaml:"workers" env:"WORKERS"`
}

// DefaultConfig returns the configuration of the stock run: 50 draws, one million trials, scale 2000.
func DefaultConfig() Config {
	return Config{
		OccurrencesPerTrial: DefaultOccurrencesPerTrial,
		NumTrials:           DefaultNumTrials,
		Scale:               DefaultScale,
		Workers:             DefaultWorkers,
	}
}

// Validate checks the whole configuration, scale included.
func (c Config) Validate() error {
	if err := c.ValidateCounts(); err != nil {
		return err
	}
	return ValidateScale(c.Scale)
}

// ValidateCounts checks the settings the simulation itself depends on.
func (c Config) ValidateCounts() error {
	if c.OccurrencesPerTrial < 0 {
		return fmt.Errorf("%w: occurrences per trial must not be negative, got %d", ErrInvalidConfig, c.OccurrencesPerTrial)
	}
	if c.OccurrencesPerTrial > MaxOccurrencesPerTrial {
		return fmt.Errorf("%w: occurrences per trial must be at most %d, got %d", ErrInvalidConfig, MaxOccurrencesPerTrial, c.OccurrencesPerTrial)
	}
	if c.NumTrials < 0 {
		return fmt.Errorf("%w: number of trials must not be negative, got %d", ErrInvalidConfig, c.NumTrials)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// EffectiveWorkers returns the number of goroutines a run will actually use.
func (c Config) EffectiveWorkers() int {
	workers := c.Workers
	if workers < 1 {
		workers = 1
	}
	// More workers than trials would leave some of them idle.
	if c.NumTrials > 0 && workers > c.NumTrials {
		workers = c.NumTrials
	}
	return workers
}

// ValidateScale rejects zero, negative, NaN and infinite scales.
func ValidateScale(scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return fmt.Errorf("%w: scale must be a positive number, got %v", ErrInvalidScale, scale)
	}
	return nil
}
