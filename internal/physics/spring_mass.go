package physics

import (
	"math"

	"github.com/san-kum/springsim/internal/dynamo"
)

const (
	DefaultMass      = 1.0
	DefaultStiffness = 10.0
)

// SpringMass is a single point mass on an ideal linear spring, with state
// laid out as [x, v]. There is no damping and no external force.
type SpringMass struct {
	Mass      float64
	Stiffness float64
}

func NewSpringMass() *SpringMass {
	return &SpringMass{
		Mass:      DefaultMass,
		Stiffness: DefaultStiffness,
	}
}

func NewSpringMassWith(mass, stiffness float64) *SpringMass {
	return &SpringMass{Mass: mass, Stiffness: stiffness}
}

func (s *SpringMass) StateDim() int { return 2 }

// Acceleration evaluates Hooke's law divided by mass as (-k/m)*x. Other
// groupings change the last bit of results.
func (s *SpringMass) Acceleration(x float64) float64 {
	return -s.Stiffness / s.Mass * x
}

func (s *SpringMass) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], s.Acceleration(x[0])}
}

func (s *SpringMass) Energy(x dynamo.State) float64 {
	pos, vel := x[0], x[1]
	return 0.5*s.Mass*vel*vel + 0.5*s.Stiffness*pos*pos
}

// AngularFrequency returns sqrt(k/m) in rad/s.
func (s *SpringMass) AngularFrequency() float64 {
	return math.Sqrt(s.Stiffness / s.Mass)
}

// NaturalPeriod returns 2*pi*sqrt(m/k) in seconds.
func (s *SpringMass) NaturalPeriod() float64 {
	return 2 * math.Pi * math.Sqrt(s.Mass/s.Stiffness)
}

// Exact returns the analytic position and velocity at time t for the
// initial conditions (x0, v0).
func (s *SpringMass) Exact(x0, v0, t float64) (float64, float64) {
	w := s.AngularFrequency()
	sin, cos := math.Sincos(w * t)
	return x0*cos + v0/w*sin, -x0*w*sin + v0*cos
}
