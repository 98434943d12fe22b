// Package analysis inspects finished trajectories.
//
//   - [DominantFrequency]: peak of the FFT power spectrum of the position
//   - [MeasuredPeriod]: mean spacing of upward zero crossings
//   - [NewPhasePortrait], [PhasePortraitToASCII]: position-velocity plot
//
// Compare the measured values with [NaturalPeriod] to see how far the
// integrator has moved the oscillation from the exact 2*pi*sqrt(m/k).
package analysis
