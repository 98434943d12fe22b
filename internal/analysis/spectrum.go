package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/physics"
)

// PowerSpectrum returns |X_k| for k in [0, N/2) where N is len(data)
// rounded up to a power of two. The mean is removed before transforming.
func PowerSpectrum(data []float64) []float64 {
	n := nextPow2(len(data))
	buf := make([]float64, n)
	copy(buf, data)
	if len(data) > 0 {
		mean := floats.Sum(data) / float64(len(data))
		floats.AddConst(-mean, buf[:len(data)])
	}

	coeffs := fft.FFTReal(buf)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC
// spectral peak of x sampled every dt seconds.
func DominantFrequency(x []float64, dt float64) (float64, error) {
	if len(x) < 2 {
		return 0, fmt.Errorf("dominant frequency: %w", dynamo.ErrEmptyTrajectory)
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return 0, &dynamo.ParamError{Field: "dt", Value: dt, Reason: "must be positive"}
	}

	ps := PowerSpectrum(x)
	if len(ps) < 2 {
		return 0, nil
	}
	peak := 1 + floats.MaxIdx(ps[1:])
	n := 2 * len(ps)
	return float64(peak) / (float64(n) * dt), nil
}

// NaturalPeriod is the exact period 2*pi*sqrt(m/k).
func NaturalPeriod(mass, stiffness float64) float64 {
	return physics.NewSpringMassWith(mass, stiffness).NaturalPeriod()
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
