package scenario

import (
	"context"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/params"
	"github.com/san-kum/springsim/internal/sim"
)

// Sweep varies one parameter linearly between Min and Max over Steps runs,
// starting from Base.
type Sweep struct {
	Param string
	Min   float64
	Max   float64
	Steps int
	Base  sim.Params
	Out   io.Writer
}

type SweepResult struct {
	ParamValue float64
	FinalState dynamo.State
	MaxEnergy  float64
	MinEnergy  float64
}

// RunSweep executes a parameter sweep
func RunSweep(ctx context.Context, sw *Sweep) ([]SweepResult, error) {
	field, ok := params.Lookup(sw.Param)
	if !ok {
		return nil, fmt.Errorf("%w: unknown sweep parameter %q", dynamo.ErrInvalidParameters, sw.Param)
	}
	if sw.Steps < 1 {
		return nil, &dynamo.ParamError{Field: "steps", Value: float64(sw.Steps), Reason: "must be at least 1"}
	}
	out := sw.Out
	if out == nil {
		out = os.Stdout
	}

	paramStep := 0.0
	if sw.Steps > 1 {
		paramStep = (sw.Max - sw.Min) / float64(sw.Steps-1)
	}

	results := make([]SweepResult, 0, sw.Steps)
	for i := 0; i < sw.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		paramVal := sw.Min + float64(i)*paramStep
		p := sw.Base
		field.Set(&p, paramVal)
		if err := p.Validate(); err != nil {
			return results, fmt.Errorf("sweep %s=%g: %w", sw.Param, paramVal, err)
		}

		traj, err := sim.Simulate(p)
		if err != nil {
			return results, fmt.Errorf("sweep %s=%g: %w", sw.Param, paramVal, err)
		}

		energy := traj.Energy(p.Mass, p.Stiffness)
		results = append(results, SweepResult{
			ParamValue: paramVal,
			FinalState: traj.State(traj.Len() - 1),
			MaxEnergy:  floats.Max(energy),
			MinEnergy:  floats.Min(energy),
		})

		fmt.Fprintf(out, "Sweep %d/%d: %s=%.4f\n", i+1, sw.Steps, sw.Param, paramVal)
	}
	return results, nil
}
