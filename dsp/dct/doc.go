// Package dct implements the orthonormal discrete cosine transform pair:
// DCT-II for analysis and DCT-III for synthesis.
//
// Both directions use the same orthonormal scaling, so the transform is
// energy preserving and Inverse(Forward(x)) reproduces x to rounding error.
// Coefficients can therefore be compared against a single scalar threshold
// without per-coefficient weights.
//
// # Usage
//
// One-shot transforms allocate a plan per call:
//
//	coeffs, err := dct.Forward(signal)
//	restored, err := dct.Inverse(coeffs)
//
// For repeated transforms of the same length, create a [Plan]:
//
//	p, err := dct.NewPlan(len(signal))
//	err = p.Forward(coeffs, signal)
//	err = p.Inverse(restored, coeffs)
//
// # Algorithm
//
// The length-N DCT-II is reduced to one length-N complex DFT by Makhoul's
// even/odd reordering. Power-of-two lengths run the DFT directly on an FFT
// plan; any other length uses Bluestein's chirp-z convolution on a
// power-of-two plan of at least 2N-1 points. Every length costs O(N log N).
//
// [Direct] evaluates the defining sum in O(N^2) and serves as a reference.
package dct
