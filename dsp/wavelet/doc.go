// Package wavelet implements multi-level orthogonal wavelet decomposition
// and reconstruction with periodic (circular) boundary handling.
//
// A decomposition of depth L produces one approximation band and L detail
// bands ordered from the coarsest to the finest:
//
//	c, err := wavelet.Decompose(signal, basis, 3)
//	// c.Approx, c.Details[0] (coarsest) ... c.Details[2] (finest)
//	restored, err := wavelet.Reconstruct(c)
//
// Each level halves its input, rounding up: an odd-length input is extended
// by repeating its last sample before filtering. Band lengths therefore
// depend only on the signal length and the depth, and their sum can exceed
// the signal length. Reconstruction trims every rebuilt approximation to the
// next detail band and finally truncates to the original length; the padding
// always sits past the end of the signal, so truncation is exact.
//
// Depth is limited by [MaxLevel]: a level whose input is shorter than the
// filter support wraps the filter onto itself and no longer separates scales.
package wavelet
