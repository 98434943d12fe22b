// Package physics provides the spring-mass oscillator model.
//
// [SpringMass] implements [dynamo.System] with the equation of motion
// a = -k/m * x and [dynamo.Hamiltonian] for energy monitoring:
//
//	dyn := physics.NewSpringMassWith(m, k)
//	energy := dyn.Energy(state)
//
// The closed-form solution [SpringMass.Exact] is available for comparing
// integrator output against the analytic motion.
package physics
