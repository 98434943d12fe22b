package integrators

import "github.com/san-kum/springsim/internal/dynamo"

// SemiImplicitEuler is the symplectic Euler stepper. Velocities are advanced
// with the acceleration at the current positions, then positions are
// advanced with the new velocities. The state must be laid out as
// [positions..., velocities...].
type SemiImplicitEuler struct{}

func NewSemiImplicitEuler() *SemiImplicitEuler {
	return &SemiImplicitEuler{}
}

func (e *SemiImplicitEuler) Step(dyn dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	half := x.Half()
	dx := dyn.Derive(x, t)
	result := make(dynamo.State, len(x))

	// The float64 conversions force each product to be rounded on its own
	// so the compiler cannot fuse them into an FMA.
	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + float64(dx[half+i]*dt)
	}
	for i := 0; i < half; i++ {
		result[i] = x[i] + float64(result[half+i]*dt)
	}

	return result
}
