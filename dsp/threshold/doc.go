// Package threshold estimates shrinkage thresholds for transform
// coefficients and applies hard or soft shrinkage.
//
// A threshold policy is an [Estimator] paired with a [Mode]. Estimators see
// coefficients through the [Coefficients] interface, which separates the
// bands that may be shrunk from the band used for noise estimation:
//
//	t, err := threshold.Apply(coeffs, threshold.Universal{}, threshold.Soft)
//
// Three estimators are provided:
//
//   - [RankFraction] keeps roughly a fixed fraction of the largest magnitudes.
//     It has no noise model and suits the flat DCT coefficient layout.
//   - [Universal] is the Donoho-Johnstone threshold sigma*sqrt(2 ln N) with
//     sigma estimated from the finest detail band by the median absolute
//     deviation.
//   - [Fixed] uses a caller-supplied value; +Inf removes every shrinkable
//     coefficient.
//
// Shrinkage is expressed as a per-coefficient gain in [0, 1] multiplied into
// the band, which keeps both modes on the same vector kernel.
package threshold
