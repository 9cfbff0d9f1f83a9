package ports

import "github.com/AntonioJCosta/bellcurve/internal/core/domain/simulation"

/*
ConfigLoader assembles a simulation configuration from defaults, an optional
configuration file and the environment. Command-line overrides are applied by
the caller on top of the returned value.
*/
type ConfigLoader interface {
	// Load reads the file at path when path is not empty.
	Load(path string) (simulation.Config, error)
}
