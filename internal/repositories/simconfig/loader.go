package simconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/bellcurve/internal/core/domain/simulation"
	"github.com/AntonioJCosta/bellcurve/internal/core/ports"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// e.g. BELLCURVE_TRIALS.
const EnvPrefix = "BELLCURVE_"

// Loader implements the ConfigLoader interface. It starts from the default
// configuration, applies a YAML file and then the environment.
type Loader struct {
	// environ replaces the process environment when not nil.
	environ map[string]string
}

// NewLoader creates a loader that reads the process environment.
func NewLoader() ports.ConfigLoader {
	return &Loader{}
}

// NewLoaderWithEnvironment creates a loader that reads environ instead of the process environment.
func NewLoaderWithEnvironment(environ map[string]string) ports.ConfigLoader {
	if environ == nil {
		environ = map[string]string{}
	}
	return &Loader{environ: environ}
}

// Load returns the defaults overlaid with the file at path (when path is set)
// and then with BELLCURVE_* environment variables. The result is not validated.
func (l *Loader) Load(path string) (simulation.Config, error) {
	cfg := simulation.DefaultConfig()

	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	opts := env.Options{Prefix: EnvPrefix, Environment: l.environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to read configuration from environment: %w", err)
	}
	return cfg, nil
}

// applyFile decodes the YAML file at path over cfg. Keys missing from the file
// keep their current values; unknown keys are an error.
func applyFile(cfg *simulation.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		// A file holding only comments or "---" has no document at all.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to parse configuration file %s: %w", path, err)
	}
	return nil
}
