package testutil

import (
	"math"
	"math/rand"
)

// Peak describes one Lorentzian band of a synthetic spectrum.
type Peak struct {
	Center    float64 // position in samples
	HalfWidth float64 // half width at half maximum, in samples
	Height    float64
}

// Spectrum builds a synthetic intensity trace of length n: a slowly rising
// baseline plus the given Lorentzian peaks.
func Spectrum(n int, peaks ...Peak) []float64 {
	out := make([]float64, n)
	for i := range out {
		x := float64(i)
		out[i] = 0.2 + 0.1*x/float64(max(n, 1))
		for _, p := range peaks {
			d := (x - p.Center) / p.HalfWidth
			out[i] += p.Height / (1 + d*d)
		}
	}
	return out
}

// DefaultSpectrum is a three-band trace used across the denoising tests.
func DefaultSpectrum(n int) []float64 {
	fn := float64(n)
	return Spectrum(n,
		Peak{Center: 0.25 * fn, HalfWidth: 0.02 * fn, Height: 1.0},
		Peak{Center: 0.55 * fn, HalfWidth: 0.04 * fn, Height: 0.6},
		Peak{Center: 0.8 * fn, HalfWidth: 0.015 * fn, Height: 1.4},
	)
}

// GaussianNoise returns n samples of zero-mean Gaussian noise with the given
// standard deviation, reproducible for a fixed seed.
func GaussianNoise(seed int64, sigma float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.NormFloat64() * sigma
	}
	return out
}

// AddNoise returns signal plus seeded Gaussian noise; signal is not modified.
func AddNoise(signal []float64, seed int64, sigma float64) []float64 {
	noise := GaussianNoise(seed, sigma, len(signal))
	for i, v := range signal {
		noise[i] += v
	}
	return noise
}

// Ramp returns 0, 1, ..., n-1.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
