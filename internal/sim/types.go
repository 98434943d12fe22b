package sim

import (
	"math"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/physics"
)

const (
	DefaultX0       = 1.0
	DefaultV0       = 0.0
	DefaultDuration = 10.0
	DefaultDt       = 0.01
)

// Params are the inputs of a single run.
type Params struct {
	Mass      float64 `yaml:"mass" json:"mass"`
	Stiffness float64 `yaml:"stiffness" json:"stiffness"`
	X0        float64 `yaml:"x0" json:"x0"`
	V0        float64 `yaml:"v0" json:"v0"`
	TMax      float64 `yaml:"t_max" json:"t_max"`
	Dt        float64 `yaml:"dt" json:"dt"`
}

func DefaultParams() Params {
	return Params{
		Mass:      physics.DefaultMass,
		Stiffness: physics.DefaultStiffness,
		X0:        DefaultX0,
		V0:        DefaultV0,
		TMax:      DefaultDuration,
		Dt:        DefaultDt,
	}
}

// Validate is the strict check applied by parameter sources. Simulate itself
// only rejects step counts below one; mass and stiffness are left alone there.
func (p Params) Validate() error {
	fields := []struct {
		name     string
		value    float64
		positive bool
	}{
		{"mass", p.Mass, true},
		{"stiffness", p.Stiffness, true},
		{"x0", p.X0, false},
		{"v0", p.V0, false},
		{"t_max", p.TMax, true},
		{"dt", p.Dt, true},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &dynamo.ParamError{Field: f.name, Value: f.value, Reason: "must be finite"}
		}
		if f.positive && f.value <= 0 {
			return &dynamo.ParamError{Field: f.name, Value: f.value, Reason: "must be positive"}
		}
	}

	_, err := StepCount(p)
	return err
}

// NaturalPeriod returns 2*pi*sqrt(m/k) for the parameters.
func (p Params) NaturalPeriod() float64 {
	return physics.NewSpringMassWith(p.Mass, p.Stiffness).NaturalPeriod()
}

// Trajectory holds aligned samples of one run. Index 0 is the initial state.
type Trajectory struct {
	Time     []float64 `json:"time"`
	Position []float64 `json:"position"`
	Velocity []float64 `json:"velocity"`
}

func newTrajectory(n int) Trajectory {
	return Trajectory{
		Time:     make([]float64, 0, n),
		Position: make([]float64, 0, n),
		Velocity: make([]float64, 0, n),
	}
}

func (tr *Trajectory) append(t float64, x dynamo.State) {
	tr.Time = append(tr.Time, t)
	tr.Position = append(tr.Position, x[0])
	tr.Velocity = append(tr.Velocity, x[1])
}

func (tr Trajectory) Len() int { return len(tr.Time) }

// Steps is the number of integration steps taken, Len()-1.
func (tr Trajectory) Steps() int {
	if len(tr.Time) == 0 {
		return 0
	}
	return len(tr.Time) - 1
}

func (tr Trajectory) Empty() bool {
	return len(tr.Time) == 0 || len(tr.Position) == 0
}

// State returns sample i as an [x, v] state.
func (tr Trajectory) State(i int) dynamo.State {
	return dynamo.State{tr.Position[i], tr.Velocity[i]}
}

// Energy returns E_i = 0.5*m*v_i^2 + 0.5*k*x_i^2 for every sample.
func (tr Trajectory) Energy(mass, stiffness float64) []float64 {
	dyn := physics.NewSpringMassWith(mass, stiffness)
	energy := make([]float64, len(tr.Position))
	for i := range tr.Position {
		energy[i] = dyn.Energy(tr.State(i))
	}
	return energy
}
