// Package config holds the run parameters for a simulation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parameters are the wake-related run settings, fixed before a simulation
// run begins. They are plain values: hand a copy to each component that
// needs one instead of sharing mutable state.
type Parameters struct {
	// WakeEmissionFollowBisector couples the emission direction to the
	// trailing-edge bisector instead of the raw apparent velocity.
	WakeEmissionFollowBisector bool `yaml:"wake_emission_follow_bisector"`

	// ConvectWake advects previously shed wake nodes with the local flow.
	ConvectWake bool `yaml:"convect_wake"`

	// WakeEmissionDistanceFactor scales the first wake panel's length
	// relative to the emission velocity times the time step.
	WakeEmissionDistanceFactor float64 `yaml:"wake_emission_distance_factor"`
}

// Default returns the standard parameter set.
func Default() Parameters {
	return Parameters{
		WakeEmissionFollowBisector: false,
		ConvectWake:                true,
		WakeEmissionDistanceFactor: 1.0,
	}
}

// Load reads YAML parameters from path over the defaults. Keys absent from
// the file keep their default values.
func Load(path string) (Parameters, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if p.WakeEmissionDistanceFactor <= 0 {
		return p, fmt.Errorf("config: wake_emission_distance_factor must be positive, got %g", p.WakeEmissionDistanceFactor)
	}
	return p, nil
}
