package wavelet

import (
	"fmt"
	"math"

	"github.com/belielov/denoise-method/dsp/core"
)

// MaxLevel returns the deepest useful decomposition level for n samples:
// floor(log2(n / (L-1))) for a filter of L taps, or 0 when n < L-1.
func MaxLevel(n int, b Basis) int {
	l := b.FilterLen()
	if l <= 1 || n < l-1 {
		return 0
	}

	return int(math.Floor(math.Log2(float64(n) / float64(l-1))))
}

func validateLevel(n int, b Basis, level int) error {
	if n < 1 {
		return fmt.Errorf("wavelet: %w: signal must not be empty", core.ErrInvalidParameter)
	}
	if b.FilterLen() < 2 || b.FilterLen()%2 != 0 {
		return fmt.Errorf("wavelet: %w: basis %q needs an even filter length >= 2",
			core.ErrConfiguration, b.Name)
	}
	if level < 0 {
		return fmt.Errorf("wavelet: %w: level must be >= 0, got %d", core.ErrInvalidParameter, level)
	}
	if maxLevel := MaxLevel(n, b); level > maxLevel {
		return fmt.Errorf("wavelet: %w: level %d exceeds maximum %d for %d samples with %s",
			core.ErrInvalidParameter, level, maxLevel, n, b.Name)
	}

	return nil
}

// BandLengths returns the lengths a decomposition would produce, in band
// order: approximation first, then details from coarsest to finest.
func BandLengths(n int, b Basis, level int) ([]int, error) {
	if err := validateLevel(n, b, level); err != nil {
		return nil, err
	}

	lengths := make([]int, level+1)
	m := n
	for i := level; i >= 1; i-- {
		m = (m + 1) / 2
		lengths[i] = m
	}
	lengths[0] = m

	return lengths, nil
}

// Decompose performs a level-deep periodic wavelet decomposition of x.
// Level 0 returns a copy of x as the only (approximation) band.
//
// Levels deeper than MaxLevel(len(x), b) fail with core.ErrInvalidParameter
// even when every band would still hold at least one sample. This is
// stricter than a non-empty-band rule: db4 at level 3 needs 56 samples
// here, although 8 samples would leave each band non-empty.
func Decompose(x []float64, b Basis, level int) (*Coefficients, error) {
	if err := validateLevel(len(x), b, level); err != nil {
		return nil, err
	}

	lo := b.Lo
	hi := b.Hi()

	c := &Coefficients{
		Basis:   b,
		Details: make([][]float64, level),
		n:       len(x),
	}

	current := append([]float64(nil), x...)
	for l := level - 1; l >= 0; l-- {
		approx, detail := analyze(current, lo, hi)
		c.Details[l] = detail
		current = approx
	}
	c.Approx = current

	return c, nil
}

// Reconstruct inverts Decompose and returns exactly SignalLen() samples.
func Reconstruct(c *Coefficients) ([]float64, error) {
	if c == nil || c.n < 1 {
		return nil, fmt.Errorf("wavelet: %w: empty coefficient set", core.ErrInvalidParameter)
	}

	lo := c.Basis.Lo
	hi := c.Basis.Hi()

	current := append([]float64(nil), c.Approx...)
	for l, detail := range c.Details {
		if len(current) < len(detail) {
			return nil, fmt.Errorf("wavelet: %w: approximation of %d samples cannot pair with detail band %d of %d",
				core.ErrInvalidParameter, len(current), l, len(detail))
		}
		current = synthesize(current[:len(detail)], detail, lo, hi)
	}

	if len(current) < c.n {
		return nil, fmt.Errorf("wavelet: %w: reconstruction yields %d samples, want %d",
			core.ErrInvalidParameter, len(current), c.n)
	}

	return current[:c.n], nil
}

// analyze runs one periodic analysis step. Odd inputs are extended by their
// last sample, so both outputs have ceil(len(x)/2) samples. Coefficient k
// correlates the filters with x starting at 2k+1-L/2, which equals
// convolution with the time-reversed decomposition filters centred on 2k+L/2.
func analyze(x, lo, hi []float64) (approx, detail []float64) {
	if len(x)%2 == 1 {
		x = append(x[:len(x):len(x)], x[len(x)-1])
	}

	n := len(x)
	half := n / 2
	approx = make([]float64, half)
	detail = make([]float64, half)

	shift := filterShift(len(lo), n)
	for k := range half {
		var a, d float64
		for j := range lo {
			v := x[(2*k+j+shift)%n]
			a += lo[j] * v
			d += hi[j] * v
		}
		approx[k] = a
		detail[k] = d
	}

	return approx, detail
}

// synthesize is the adjoint of analyze for equal-length bands and returns
// 2*len(approx) samples.
func synthesize(approx, detail, lo, hi []float64) []float64 {
	n := 2 * len(approx)
	out := make([]float64, n)

	shift := filterShift(len(lo), n)
	for k := range approx {
		a := approx[k]
		d := detail[k]
		for j := range lo {
			out[(2*k+j+shift)%n] += lo[j]*a + hi[j]*d
		}
	}

	return out
}

// filterShift returns 1-L/2 reduced to [0, n) so indices stay non-negative.
func filterShift(l, n int) int {
	return ((1-l/2)%n + n) % n
}
