package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/san-kum/springsim/internal/config"
	"github.com/san-kum/springsim/internal/sim"
)

const envPrefix = "SPRINGSIM"

func addParamFlags(fs *pflag.FlagSet) {
	d := sim.DefaultParams()
	fs.Float64("mass", d.Mass, "mass m (kg)")
	fs.Float64("k", d.Stiffness, "spring constant k (N/m)")
	fs.Float64("x0", d.X0, "initial position x0 (m)")
	fs.Float64("v0", d.V0, "initial velocity v0 (m/s)")
	fs.Float64("time", d.TMax, "total simulation time t_max (s)")
	fs.Float64("dt", d.Dt, "time step dt (s)")
	fs.String("config", "", "config file path (yaml)")
	fs.String("preset", "", "use preset configuration")
	fs.String("theme", "", "color theme")
}

// newViper binds fs and SPRINGSIM_* environment variables. Flags set on
// the command line win over the environment.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	return v, nil
}

// resolveConfig layers defaults, preset, config file, environment and flags
// in that order and validates the resulting parameters.
func resolveConfig(cmd *cobra.Command) (*config.Config, *viper.Viper, error) {
	v, err := newViper(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	cfg := config.DefaultConfig()
	if name := v.GetString("preset"); name != "" {
		cfg = config.GetPreset(name)
		if cfg == nil {
			return nil, nil, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(config.ListPresets(), ", "))
		}
	}
	if path := v.GetString("config"); path != "" {
		if err := config.LoadInto(cfg, path); err != nil {
			return nil, nil, err
		}
	}

	overrides := []struct {
		key string
		dst *float64
	}{
		{"mass", &cfg.Params.Mass},
		{"k", &cfg.Params.Stiffness},
		{"x0", &cfg.Params.X0},
		{"v0", &cfg.Params.V0},
		{"time", &cfg.Params.TMax},
		{"dt", &cfg.Params.Dt},
	}
	for _, o := range overrides {
		if v.IsSet(o.key) {
			*o.dst = v.GetFloat64(o.key)
		}
	}
	if v.IsSet("theme") {
		cfg.Render.Theme = v.GetString("theme")
	}
	if v.IsSet("gif") {
		cfg.Render.GIF = v.GetString("gif")
	}

	if err := cfg.Params.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}
