package threshold

import (
	"math"
	"sort"
)

// MADToSigma converts a median absolute deviation into a standard deviation
// estimate for Gaussian noise.
const MADToSigma = 0.6745

// Median returns the median of values, averaging the two middle elements for
// even lengths. Returns NaN for an empty slice. values is not modified.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// NoiseSigma estimates the noise standard deviation of a detail band as
// median(|band|) / 0.6745. An empty band yields 1.
func NoiseSigma(band []float64) float64 {
	if len(band) == 0 {
		return 1
	}

	abs := make([]float64, len(band))
	for i, v := range band {
		abs[i] = math.Abs(v)
	}
	return Median(abs) / MADToSigma
}

// UniversalThreshold returns sigma * sqrt(2 ln n), or 0 for n < 2.
func UniversalThreshold(sigma float64, n int) float64 {
	if n < 2 {
		return 0
	}
	return sigma * math.Sqrt(2*math.Log(float64(n)))
}
