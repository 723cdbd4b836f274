package quality

import (
	"errors"
	"fmt"
	"math"

	"github.com/belielov/denoise-method/dsp/core"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"
)

// ErrLengthMismatch is returned when the two traces differ in length.
var ErrLengthMismatch = errors.New("quality: length mismatch")

// Report holds the comparison of a trace and its denoised version.
//
//nolint:revive
type Report struct {
	Length int

	RMSE         float64 // root-mean-square of the residual
	ResidualMean float64
	ResidualStd  float64 // sample standard deviation
	MaxDeviation float64 // max |residual|

	// Correlation is Pearson's r between both traces. NaN when either
	// trace is constant.
	Correlation float64

	// SNR_dB is 10*log10(power(denoised)/power(residual)); +Inf when the
	// traces are identical.
	SNR_dB float64

	TVOriginal  float64
	TVDenoised  float64
	TVReduction float64 // 1 - TVDenoised/TVOriginal, 0 when TVOriginal is 0
}

// TotalVariation returns sum |x[i+1]-x[i]|.
func TotalVariation(x []float64) float64 {
	var tv float64
	for i := 1; i < len(x); i++ {
		tv += math.Abs(x[i] - x[i-1])
	}
	return tv
}

// Residual returns original - denoised.
func Residual(original, denoised []float64) ([]float64, error) {
	if len(original) != len(denoised) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(original), len(denoised))
	}

	res := make([]float64, len(original))
	vecmath.ScaleBlock(res, denoised, -1)
	vecmath.AddBlockInPlace(res, original)
	return res, nil
}

// Compare scores denoised against original.
func Compare(original, denoised []float64) (Report, error) {
	if len(original) == 0 {
		return Report{}, fmt.Errorf("quality: %w: empty trace", core.ErrInvalidParameter)
	}

	res, err := Residual(original, denoised)
	if err != nil {
		return Report{}, err
	}

	n := len(res)
	var sumSq, sigSq, maxDev float64
	for i, r := range res {
		sumSq += r * r
		sigSq += denoised[i] * denoised[i]
		maxDev = math.Max(maxDev, math.Abs(r))
	}

	mean := stat.Mean(res, nil)
	var std float64
	if n > 1 {
		std = stat.StdDev(res, nil)
	}

	snr := math.Inf(1)
	if sumSq > 0 {
		snr = core.LinearPowerToDB(sigSq / sumSq)
	}

	corr := math.NaN()
	if n > 1 {
		corr = stat.Correlation(original, denoised, nil)
	}

	tvo := TotalVariation(original)
	tvd := TotalVariation(denoised)
	var reduction float64
	if tvo > 0 {
		reduction = 1 - tvd/tvo
	}

	return Report{
		Length:       n,
		RMSE:         math.Sqrt(sumSq / float64(n)),
		ResidualMean: mean,
		ResidualStd:  std,
		MaxDeviation: maxDev,
		Correlation:  corr,
		SNR_dB:       snr,
		TVOriginal:   tvo,
		TVDenoised:   tvd,
		TVReduction:  reduction,
	}, nil
}
