package denoise

import (
	"fmt"
	"strings"

	"github.com/belielov/denoise-method/dsp/core"
	"github.com/belielov/denoise-method/dsp/savgol"
	"github.com/belielov/denoise-method/dsp/threshold"
	"github.com/belielov/denoise-method/dsp/wavelet"
)

// Method names a smoothing pipeline.
type Method string

// Supported methods.
const (
	MethodDCT     Method = "dct"
	MethodWavelet Method = "wavelet"
	MethodSavGol  Method = "savgol"
)

// Methods lists every supported method.
func Methods() []Method {
	return []Method{MethodDCT, MethodWavelet, MethodSavGol}
}

// ParseMethod converts a method name (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Methods() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("denoise: %w: unknown method %q", core.ErrConfiguration, s)
}

// Config fully parameterizes one Run call.
type Config struct {
	Method Method
	Mode   threshold.Mode

	// Fraction is the retained coefficient fraction for MethodDCT.
	Fraction float64

	// Basis, Level and Scale configure MethodWavelet.
	Basis string
	Level int
	Scale float64

	// Window and Order configure MethodSavGol.
	Window int
	Order  int
}

// DefaultConfig returns a three-level soft db4 wavelet configuration. The
// DCT fallback keeps 7% of the coefficients.
func DefaultConfig() Config {
	return Config{
		Method:   MethodWavelet,
		Mode:     threshold.Soft,
		Fraction: 0.07,
		Basis:    wavelet.DefaultBasis,
		Level:    3,
		Scale:    1,
		Window:   savgol.DefaultWindow,
		Order:    savgol.DefaultOrder,
	}
}

// Validate checks the parameters used by c.Method without touching data.
func (c Config) Validate() error {
	switch c.Method {
	case MethodDCT:
		if err := c.Mode.Validate(); err != nil {
			return fmt.Errorf("denoise: %w", err)
		}
		if err := (threshold.RankFraction{Fraction: c.Fraction}).Validate(); err != nil {
			return fmt.Errorf("denoise: %w", err)
		}
	case MethodWavelet:
		if err := c.Mode.Validate(); err != nil {
			return fmt.Errorf("denoise: %w", err)
		}
		if _, err := wavelet.Lookup(c.Basis); err != nil {
			return fmt.Errorf("denoise: %w", err)
		}
		if err := (threshold.Universal{Scale: c.Scale}).Validate(); err != nil {
			return fmt.Errorf("denoise: %w", err)
		}
		if c.Level < 0 {
			return fmt.Errorf("denoise: %w: level must be >= 0, got %d", core.ErrInvalidParameter, c.Level)
		}
	case MethodSavGol:
		if _, err := savgol.Coefficients(c.Window, c.Order); err != nil {
			return fmt.Errorf("denoise: %w", err)
		}
	default:
		return fmt.Errorf("denoise: %w: unknown method %q", core.ErrConfiguration, c.Method)
	}
	return nil
}

// Run denoises signal according to cfg.
func Run(signal []float64, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	switch cfg.Method {
	case MethodDCT:
		return dctResult(signal, cfg.Fraction, cfg.Mode)
	case MethodWavelet:
		return waveletResult(signal, cfg.Basis, cfg.Level, cfg.Mode, WithScale(cfg.Scale))
	default:
		out, err := savgol.Filter(signal, cfg.Window, cfg.Order)
		if err != nil {
			return Result{}, fmt.Errorf("denoise: %w", err)
		}
		return Result{Output: out}, nil
	}
}
