package metrics

import (
	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/sim"
)

// Evaluate resets each metric, feeds it every sample of traj and returns
// the final values keyed by metric name.
func Evaluate(traj sim.Trajectory, ms ...dynamo.Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for i := 0; i < traj.Len(); i++ {
		x := traj.State(i)
		for _, m := range ms {
			m.Observe(x, traj.Time[i])
		}
	}

	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
