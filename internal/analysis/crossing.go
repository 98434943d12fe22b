package analysis

import (
	"math"

	"github.com/san-kum/springsim/internal/sim"
)

// Crossings returns the interpolated times at which the position passes
// upward through threshold.
func Crossings(traj sim.Trajectory, threshold float64) []float64 {
	var times []float64
	for i := 1; i < len(traj.Position) && i < len(traj.Time); i++ {
		prev, curr := traj.Position[i-1], traj.Position[i]
		if prev < threshold && curr >= threshold {
			frac := (threshold - prev) / (curr - prev)
			if math.IsNaN(frac) || math.IsInf(frac, 0) {
				frac = 0.5
			}
			t0, t1 := traj.Time[i-1], traj.Time[i]
			times = append(times, t0+frac*(t1-t0))
		}
	}
	return times
}

// MeasuredPeriod is the mean spacing between upward zero crossings, or 0
// when fewer than two crossings occur.
func MeasuredPeriod(traj sim.Trajectory) float64 {
	times := Crossings(traj, 0)
	if len(times) < 2 {
		return 0
	}
	return (times[len(times)-1] - times[0]) / float64(len(times)-1)
}
