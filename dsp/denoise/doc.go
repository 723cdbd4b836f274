// Package denoise provides the transform-domain thresholding denoisers for
// 1-D measurement traces.
//
// Both pipelines run forward transform, threshold estimation, shrinkage and
// inverse transform in a single pass and return a signal of the input length:
//
//	smooth, err := denoise.DCT(intensity, 0.07, threshold.Soft)
//	smooth, err := denoise.Wavelet(intensity, "db4", 3, threshold.Soft)
//
// The DCT pipeline keeps a fraction of the largest orthonormal DCT
// coefficients ([threshold.RankFraction]). The wavelet pipeline estimates the
// noise level from the finest detail band and shrinks every detail band with
// the universal threshold ([threshold.Universal]); the approximation band is
// never modified. [WithEstimator] swaps in any other [threshold.Estimator].
//
// Parameters are validated before any transform work, and errors wrap
// [core.ErrConfiguration] or [core.ErrInvalidParameter]. Every call is a pure
// function of its arguments and safe for concurrent use.
//
// [Run] drives the same pipelines, plus Savitzky-Golay smoothing, from a
// [Config] value.
package denoise
