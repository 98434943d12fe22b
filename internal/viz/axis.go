package viz

import "gonum.org/v1/gonum/floats"

// AxisLimits returns the horizontal limits used for the animation: the data
// range widened by 0.1 on each side when degenerate, then scaled by 1.2.
// x must not be empty.
func AxisLimits(x []float64) (lo, hi float64) {
	lo, hi = floats.Min(x), floats.Max(x)
	if lo == hi {
		lo -= 0.1
		hi += 0.1
	}
	return lo * 1.2, hi * 1.2
}

// Project maps v from [lo, hi] onto [0, size-1].
func Project(v, lo, hi float64, size int) int {
	if hi == lo || size <= 1 {
		return 0
	}
	return int((v - lo) / (hi - lo) * float64(size-1))
}
