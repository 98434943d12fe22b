// Package dynamo provides the simulation primitives shared by the oscillator
// engine and its consumers.
//
// The package defines:
//
//   - [State]: vector representing system state, positions first then velocities
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical stepper
//   - [Metric]: observer that reduces a run to a scalar
//
// and the error taxonomy used across the module ([ErrInvalidParameters],
// [ErrInvalidNumericInput], [ErrEmptyTrajectory], [ErrAborted]).
//
// # Example
//
//	dyn := physics.NewSpringMass()
//	integ := integrators.NewSemiImplicitEuler()
//	x := dynamo.State{1.0, 0.0}
//	x = integ.Step(dyn, x, 0, 0.01)
package dynamo
