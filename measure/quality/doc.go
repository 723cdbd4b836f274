// Package quality scores a denoised trace against the trace it was computed
// from.
//
// [Compare] reports the residual (original minus denoised) statistics, the
// correlation between both traces, a signal-to-residual ratio in dB and the
// reduction in total variation, which is the roughness measure the DCT and
// wavelet smoothers are judged by.
package quality
