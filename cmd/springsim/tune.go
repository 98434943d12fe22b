package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/springsim/internal/analysis"
	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/metrics"
	"github.com/san-kum/springsim/internal/optim"
	"github.com/san-kum/springsim/internal/physics"
	"github.com/san-kum/springsim/internal/sim"
)

var objectives = map[string]optim.Objective{
	"energy_drift": func(p sim.Params, traj sim.Trajectory) float64 {
		dyn := physics.NewSpringMassWith(p.Mass, p.Stiffness)
		return metrics.Evaluate(traj, metrics.NewEnergyDrift(dyn))["energy_drift"]
	},
	"period_error": func(p sim.Params, traj sim.Trajectory) float64 {
		measured := analysis.MeasuredPeriod(traj)
		if measured == 0 {
			return math.Inf(1)
		}
		natural := p.NaturalPeriod()
		return math.Abs(measured-natural) / natural
	},
}

func newTuneCmd() *cobra.Command {
	tuneCmd := &cobra.Command{
		Use:     "tune",
		Short:   "grid search for the parameters that minimize an objective",
		Example: "  springsim tune --grid dt=0.001,0.01,0.1 --grid mass=1,2 --objective period_error",
		Args:    cobra.NoArgs,
		RunE:    tuneParams,
	}
	fs := tuneCmd.Flags()
	addParamFlags(fs)
	fs.StringArray("grid", nil, "name=v1,v2,... candidate values (repeatable)")
	fs.String("objective", "energy_drift", "energy_drift or period_error")
	return tuneCmd
}

func tuneParams(cmd *cobra.Command, args []string) error {
	cfg, v, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	objective, ok := objectives[v.GetString("objective")]
	if !ok {
		return fmt.Errorf("unknown objective %q", v.GetString("objective"))
	}

	specs, err := cmd.Flags().GetStringArray("grid")
	if err != nil {
		return err
	}
	names, ranges, err := parseGrid(specs)
	if err != nil {
		return err
	}

	g, err := optim.NewGridSearch(names, ranges)
	if err != nil {
		return err
	}
	best, score, err := g.Search(cmd.Context(), cfg.Params, objective)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "best %s: %.6g\n", v.GetString("objective"), score)
	fmt.Fprintf(out, "mass=%g k=%g x0=%g v0=%g time=%g dt=%g\n", best.Mass, best.Stiffness, best.X0, best.V0, best.TMax, best.Dt)
	return nil
}

// parseGrid reads "name=v1,v2" specs.
func parseGrid(specs []string) ([]string, [][]float64, error) {
	if len(specs) == 0 {
		return nil, nil, fmt.Errorf("%w: at least one --grid is required", dynamo.ErrInvalidParameters)
	}
	names := make([]string, 0, len(specs))
	ranges := make([][]float64, 0, len(specs))
	for _, spec := range specs {
		name, list, ok := strings.Cut(spec, "=")
		if !ok || list == "" {
			return nil, nil, fmt.Errorf("%w: grid %q is not name=v1,v2", dynamo.ErrInvalidParameters, spec)
		}
		var values []float64
		for _, s := range strings.Split(list, ",") {
			val, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: grid %s: %q", dynamo.ErrInvalidNumericInput, name, s)
			}
			values = append(values, val)
		}
		names = append(names, strings.TrimSpace(name))
		ranges = append(ranges, values)
	}
	return names, ranges, nil
}
