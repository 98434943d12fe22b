package config

import (
	"sort"

	"github.com/san-kum/springsim/internal/sim"
)

// Presets are named parameter sets. "unstable" uses a step larger than
// 2/omega so the integrator diverges.
var Presets = map[string]sim.Params{
	"default": sim.DefaultParams(),
	"bounce": {
		Mass: 1.0, Stiffness: 10.0, X0: 2.0, V0: 0.0, TMax: 20.0, Dt: 0.01,
	},
	"fast": {
		Mass: 1.0, Stiffness: 10.0, X0: 1.0, V0: 5.0, TMax: 10.0, Dt: 0.01,
	},
	"stiff": {
		Mass: 0.5, Stiffness: 200.0, X0: 0.5, V0: 0.0, TMax: 5.0, Dt: 0.001,
	},
	"unstable": {
		Mass: 1.0, Stiffness: 10.0, X0: 1.0, V0: 0.0, TMax: 30.0, Dt: 0.7,
	},
}

// GetPreset returns a default Config carrying the named parameters, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Params = p
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
