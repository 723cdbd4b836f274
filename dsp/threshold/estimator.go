package threshold

import (
	"fmt"
	"math"
	"sort"

	"github.com/belielov/denoise-method/dsp/core"
)

// Coefficients is a transform-domain coefficient set as seen by the
// threshold policies.
type Coefficients interface {
	// SignalLen is the length of the signal the coefficients describe.
	SignalLen() int

	// ShrinkBands returns the bands that shrinkage modifies in place.
	ShrinkBands() [][]float64

	// NoiseBand returns the band used for noise estimation, reporting false
	// when the set has none.
	NoiseBand() ([]float64, bool)
}

// Flat is a single-band coefficient set, one coefficient per sample.
type Flat []float64

// SignalLen implements Coefficients.
func (f Flat) SignalLen() int { return len(f) }

// ShrinkBands implements Coefficients.
func (f Flat) ShrinkBands() [][]float64 { return [][]float64{f} }

// NoiseBand implements Coefficients; the whole set is the noise band.
func (f Flat) NoiseBand() ([]float64, bool) { return f, len(f) > 0 }

// Estimator computes a scalar threshold from a coefficient set.
type Estimator interface {
	// Validate checks the estimator parameters without looking at data.
	Validate() error

	// Estimate returns a threshold >= 0 for c.
	Estimate(c Coefficients) (float64, error)
}

// RankFraction keeps approximately Fraction of the shrinkable coefficients.
// The threshold is the magnitude at rank k = floor(len*Fraction) in
// descending order (rank 1 is the largest), so hard shrinkage keeps the top
// k. k >= len yields 0 and keeps everything; k is at least 1.
type RankFraction struct {
	Fraction float64
}

// Validate requires Fraction in (0, 1].
func (r RankFraction) Validate() error {
	if math.IsNaN(r.Fraction) || r.Fraction <= 0 || r.Fraction > 1 {
		return fmt.Errorf("threshold: %w: retained fraction must be in (0,1], got %v", core.ErrConfiguration, r.Fraction)
	}
	return nil
}

// Estimate implements Estimator.
func (r RankFraction) Estimate(c Coefficients) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}

	var mags []float64
	for _, band := range c.ShrinkBands() {
		for _, v := range band {
			mags = append(mags, math.Abs(v))
		}
	}

	n := len(mags)
	k := int(float64(n) * r.Fraction)
	if k >= n {
		return 0, nil
	}
	if k < 1 {
		k = 1
	}

	sort.Float64s(mags)
	return mags[n-k], nil
}

// Universal is the noise-adaptive threshold Scale * sigma * sqrt(2 ln N),
// with sigma = median(|noise band|)/0.6745, or 1 when there is no noise band.
// A zero Scale means 1.
type Universal struct {
	Scale float64
}

// Validate rejects negative or non-finite scales.
func (u Universal) Validate() error {
	if !core.IsFinite(u.Scale) || u.Scale < 0 {
		return fmt.Errorf("threshold: %w: universal scale must be a finite value >= 0, got %v", core.ErrConfiguration, u.Scale)
	}
	return nil
}

// Sigma returns the noise estimate Universal would use for c.
func (u Universal) Sigma(c Coefficients) float64 {
	band, ok := c.NoiseBand()
	if !ok {
		return 1
	}
	return NoiseSigma(band)
}

// Estimate implements Estimator.
func (u Universal) Estimate(c Coefficients) (float64, error) {
	if err := u.Validate(); err != nil {
		return 0, err
	}

	scale := u.Scale
	if scale == 0 {
		scale = 1
	}
	return scale * UniversalThreshold(u.Sigma(c), c.SignalLen()), nil
}

// Fixed always returns Value. +Inf is allowed.
type Fixed struct {
	Value float64
}

// Validate requires Value >= 0.
func (f Fixed) Validate() error {
	return validateThreshold(f.Value)
}

// Estimate implements Estimator.
func (f Fixed) Estimate(Coefficients) (float64, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	return f.Value, nil
}

// Apply estimates a threshold for c and shrinks every band in
// c.ShrinkBands() in place. It returns the threshold used.
func Apply(c Coefficients, est Estimator, mode Mode) (float64, error) {
	if err := mode.Validate(); err != nil {
		return 0, err
	}
	if est == nil {
		return 0, fmt.Errorf("threshold: %w: no estimator", core.ErrConfiguration)
	}

	t, err := est.Estimate(c)
	if err != nil {
		return 0, err
	}

	for _, band := range c.ShrinkBands() {
		if _, err := Shrink(band, t, mode); err != nil {
			return 0, err
		}
	}
	return t, nil
}
