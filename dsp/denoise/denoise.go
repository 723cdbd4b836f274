package denoise

import (
	"fmt"

	"github.com/belielov/denoise-method/dsp/core"
	"github.com/belielov/denoise-method/dsp/dct"
	"github.com/belielov/denoise-method/dsp/threshold"
	"github.com/belielov/denoise-method/dsp/wavelet"
)

// Result is the outcome of one denoising call.
type Result struct {
	// Output has the same length as the input signal.
	Output []float64

	// Threshold is the shrinkage threshold that was applied.
	Threshold float64

	// Retained and Total count the non-zero and all shrinkable coefficients
	// after shrinkage.
	Retained int
	Total    int
}

// DCT denoises signal by keeping approximately fraction of its largest
// orthonormal DCT coefficients. fraction must be in (0, 1].
func DCT(signal []float64, fraction float64, mode threshold.Mode, opts ...Option) ([]float64, error) {
	res, err := dctResult(signal, fraction, mode, opts...)
	if err != nil {
		return nil, err
	}
	return res.Output, nil
}

// Wavelet denoises signal with a level-deep decomposition in the named basis,
// shrinking detail bands with the universal threshold.
func Wavelet(signal []float64, basis string, level int, mode threshold.Mode, opts ...Option) ([]float64, error) {
	res, err := waveletResult(signal, basis, level, mode, opts...)
	if err != nil {
		return nil, err
	}
	return res.Output, nil
}

func dctResult(signal []float64, fraction float64, mode threshold.Mode, opts ...Option) (Result, error) {
	if err := mode.Validate(); err != nil {
		return Result{}, fmt.Errorf("denoise: %w", err)
	}
	rank := threshold.RankFraction{Fraction: fraction}
	if err := rank.Validate(); err != nil {
		return Result{}, fmt.Errorf("denoise: %w", err)
	}

	o := applyOptions(opts)
	est := o.estimator
	if est == nil {
		est = rank
	}
	if err := est.Validate(); err != nil {
		return Result{}, fmt.Errorf("denoise: %w", err)
	}
	if len(signal) == 0 {
		return Result{}, fmt.Errorf("denoise: %w: signal must not be empty", core.ErrInvalidParameter)
	}

	plan, err := dct.NewPlan(len(signal))
	if err != nil {
		return Result{}, fmt.Errorf("denoise: %w", err)
	}

	coeffs := make(threshold.Flat, len(signal))
	if err := plan.Forward(coeffs, signal); err != nil {
		return Result{}, fmt.Errorf("denoise: %w", err)
	}

	t, err := threshold.Apply(coeffs, est, mode)
	if err != nil {
		return Result{}, fmt.Errorf("denoise: %w", err)
	}
	retained, total := countBands(coeffs)

	out := make([]float64, len(signal))
	if err := plan.Inverse(out, coeffs); err != nil {
		return Result{}, fmt.Errorf("denoise: %w", err)
	}

	return Result{Output: out, Threshold: t, Retained: retained, Total: total}, nil
}

func waveletResult(signal []float64, basis string, level int, mode threshold.Mode, opts ...Option) (Result, error) {
	if err := mode.Validate(); err != nil {
		return Result{}, fmt.Errorf("denoise: %w", err)
	}
	b, err := wavelet.Lookup(basis)
	if err != nil {
		return Result{}, fmt.Errorf("denoise: %w", err)
	}

	o := applyOptions(opts)
	est := o.estimator
	if est == nil {
		est = threshold.Universal{Scale: o.scale}
	}
	if err := est.Validate(); err != nil {
		return Result{}, fmt.Errorf("denoise: %w", err)
	}

	coeffs, err := wavelet.Decompose(signal, b, level)
	if err != nil {
		return Result{}, fmt.Errorf("denoise: %w", err)
	}

	t, err := threshold.Apply(coeffs, est, mode)
	if err != nil {
		return Result{}, fmt.Errorf("denoise: %w", err)
	}
	retained, total := countBands(coeffs)

	out, err := wavelet.Reconstruct(coeffs)
	if err != nil {
		return Result{}, fmt.Errorf("denoise: %w", err)
	}

	return Result{Output: out, Threshold: t, Retained: retained, Total: total}, nil
}

func countBands(c threshold.Coefficients) (retained, total int) {
	for _, band := range c.ShrinkBands() {
		total += len(band)
		for _, v := range band {
			if v != 0 {
				retained++
			}
		}
	}
	return retained, total
}
