package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/integrators"
	"github.com/san-kum/springsim/internal/physics"
)

// MaxSteps bounds the step count so it stays representable as an
// allocation size on every platform.
const MaxSteps = math.MaxInt32

// StepCount returns floor(TMax/Dt), or ErrInvalidParameters when that is
// below one or not finite.
func StepCount(p Params) (int, error) {
	ratio := p.TMax / p.Dt
	if math.IsNaN(ratio) || ratio < 1 {
		return 0, fmt.Errorf("%w: simulation produces no steps for t_max=%g, dt=%g", dynamo.ErrInvalidParameters, p.TMax, p.Dt)
	}
	if ratio > MaxSteps {
		return 0, fmt.Errorf("%w: t_max/dt=%g exceeds %d steps", dynamo.ErrInvalidParameters, ratio, MaxSteps)
	}
	return int(ratio), nil
}

// Simulate integrates the oscillator from (X0, V0) for floor(TMax/Dt) steps
// and returns steps+1 samples. Mass and stiffness are used as given.
func Simulate(p Params) (Trajectory, error) {
	steps, err := StepCount(p)
	if err != nil {
		return Trajectory{}, err
	}

	dyn := physics.NewSpringMassWith(p.Mass, p.Stiffness)
	integ := integrators.NewSemiImplicitEuler()

	traj := newTrajectory(steps + 1)
	x := dynamo.State{p.X0, p.V0}
	t := 0.0
	traj.append(t, x)

	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, t, p.Dt)
		t += p.Dt
		traj.append(t, x)
	}

	return traj, nil
}
