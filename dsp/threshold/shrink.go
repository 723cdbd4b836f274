package threshold

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/belielov/denoise-method/dsp/core"
)

// ErrLengthMismatch is returned when a gain buffer does not match its band.
var ErrLengthMismatch = errors.New("threshold: buffer length mismatch")

func validateThreshold(t float64) error {
	if math.IsNaN(t) || t < 0 {
		return fmt.Errorf("threshold: %w: threshold must be >= 0, got %v", core.ErrConfiguration, t)
	}
	return nil
}

// Gain returns the factor that shrinkage applies to c under threshold t.
func Gain(c, t float64, mode Mode) float64 {
	a := math.Abs(c)
	switch mode {
	case Hard:
		if a >= t {
			return 1
		}
		return 0
	default:
		if a == 0 || a <= t {
			return 0
		}
		return 1 - t/a
	}
}

// Gains fills dst with the shrinkage gain of every coefficient.
func Gains(dst, coeffs []float64, t float64, mode Mode) error {
	if len(dst) != len(coeffs) {
		return ErrLengthMismatch
	}
	if err := mode.Validate(); err != nil {
		return err
	}
	if err := validateThreshold(t); err != nil {
		return err
	}

	for i, c := range coeffs {
		dst[i] = Gain(c, t, mode)
	}
	return nil
}

// Shrink applies shrinkage to coeffs in place and returns how many
// coefficients remain non-zero.
func Shrink(coeffs []float64, t float64, mode Mode) (int, error) {
	if len(coeffs) == 0 {
		return 0, nil
	}

	gains := make([]float64, len(coeffs))
	if err := Gains(gains, coeffs, t, mode); err != nil {
		return 0, err
	}
	vecmath.MulBlockInPlace(coeffs, gains)

	kept := 0
	for _, c := range coeffs {
		if c != 0 {
			kept++
		}
	}
	return kept, nil
}
