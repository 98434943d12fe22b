// Package sim is the oscillator engine: it turns [Params] into a
// [Trajectory] by stepping a spring-mass system with semi-implicit Euler.
//
// [Simulate] is pure. It performs no I/O, keeps no global state and
// returns fresh slices on every call, so independent runs may be executed
// from separate goroutines by the caller without coordination.
//
// # Step count
//
// The number of steps is floor(TMax/Dt). A fractional final step is
// dropped, never rounded up, so TMax=0.025 with Dt=0.01 yields two steps.
package sim
