package dct

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/belielov/denoise-method/dsp/core"
)

// ErrLengthMismatch is returned when dst or src does not match the plan length.
var ErrLengthMismatch = errors.New("dct: buffer length mismatch")

// Plan holds precomputed twiddles and FFT state for one transform length.
// A Plan is not safe for concurrent use; create one per goroutine.
type Plan struct {
	n      int
	scale0 float64 // sqrt(1/n), applied to coefficient 0
	scale  float64 // sqrt(2/n), applied to every other coefficient

	// twiddle[k] = exp(-i*pi*k/(2n))
	twiddle []complex128
	work    []complex128

	fft *algofft.Plan[complex128]

	// Bluestein state, nil for power-of-two lengths.
	chirp  []complex128
	kernel []complex128
	conv   []complex128
}

// NewPlan creates a DCT plan for signals of length n.
func NewPlan(n int) (*Plan, error) {
	if n < 1 {
		return nil, fmt.Errorf("dct: %w: length must be >= 1, got %d", core.ErrInvalidParameter, n)
	}

	p := &Plan{
		n:       n,
		scale0:  math.Sqrt(1 / float64(n)),
		scale:   math.Sqrt(2 / float64(n)),
		twiddle: make([]complex128, n),
		work:    make([]complex128, n),
	}

	for k := range n {
		sin, cos := math.Sincos(math.Pi * float64(k) / float64(2*n))
		p.twiddle[k] = complex(cos, -sin)
	}

	if n == 1 {
		return p, nil
	}

	if core.IsPowerOfTwo(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("dct: failed to create FFT plan: %w", err)
		}
		p.fft = plan
		return p, nil
	}

	if err := p.initBluestein(); err != nil {
		return nil, err
	}

	return p, nil
}

// initBluestein prepares the chirp and the transformed convolution kernel
// for a length-n DFT evaluated on a power-of-two FFT.
func (p *Plan) initBluestein() error {
	n := p.n
	m := core.NextPowerOfTwo(2*n - 1)

	plan, err := algofft.NewPlan64(m)
	if err != nil {
		return fmt.Errorf("dct: failed to create FFT plan: %w", err)
	}

	p.fft = plan
	p.chirp = make([]complex128, n)
	p.kernel = make([]complex128, m)
	p.conv = make([]complex128, m)

	// chirp[k] = exp(-i*pi*k^2/n); k^2 is reduced mod 2n to keep the angle small.
	mod := 2 * n
	for k := range n {
		sq := (k * k) % mod
		sin, cos := math.Sincos(math.Pi * float64(sq) / float64(n))
		p.chirp[k] = complex(cos, -sin)
	}

	p.kernel[0] = conj(p.chirp[0])
	for k := 1; k < n; k++ {
		c := conj(p.chirp[k])
		p.kernel[k] = c
		p.kernel[m-k] = c
	}

	if err := plan.Forward(p.kernel, p.kernel); err != nil {
		return fmt.Errorf("dct: kernel FFT failed: %w", err)
	}

	return nil
}

// Len returns the transform length.
func (p *Plan) Len() int {
	return p.n
}

// Forward computes the orthonormal DCT-II of src into dst.
// dst and src must both have length Len(); they may alias.
func (p *Plan) Forward(dst, src []float64) error {
	if len(dst) != p.n || len(src) != p.n {
		return ErrLengthMismatch
	}

	n := p.n
	if n == 1 {
		dst[0] = src[0]
		return nil
	}

	// Makhoul reordering: even samples ascending, odd samples descending.
	for i := 0; 2*i < n; i++ {
		p.work[i] = complex(src[2*i], 0)
	}
	for i := 0; 2*i+1 < n; i++ {
		p.work[n-1-i] = complex(src[2*i+1], 0)
	}

	if err := p.dft(p.work); err != nil {
		return err
	}

	dst[0] = p.scale0 * real(p.work[0])
	for k := 1; k < n; k++ {
		dst[k] = p.scale * real(p.twiddle[k]*p.work[k])
	}

	return nil
}

// Inverse computes the orthonormal DCT-III of src into dst, the exact
// inverse of Forward. dst and src must both have length Len(); they may alias.
func (p *Plan) Inverse(dst, src []float64) error {
	if len(dst) != p.n || len(src) != p.n {
		return ErrLengthMismatch
	}

	n := p.n
	if n == 1 {
		dst[0] = src[0]
		return nil
	}

	// Rebuild the DFT of the reordered sequence from its real projections:
	// Re(tw[k]*V[k]) = c[k] and Im(tw[k]*V[k]) = -c[n-k].
	p.work[0] = complex(src[0]/p.scale0, 0)
	for k := 1; k < n; k++ {
		re := src[k] / p.scale
		im := -src[n-k] / p.scale
		p.work[k] = conj(p.twiddle[k]) * complex(re, im)
	}

	if err := p.idft(p.work); err != nil {
		return err
	}

	for i := 0; 2*i < n; i++ {
		dst[2*i] = real(p.work[i])
	}
	for i := 0; 2*i+1 < n; i++ {
		dst[2*i+1] = real(p.work[n-1-i])
	}

	return nil
}

// dft replaces buf (length n) with its forward DFT.
func (p *Plan) dft(buf []complex128) error {
	if p.chirp == nil {
		if err := p.fft.Forward(buf, buf); err != nil {
			return fmt.Errorf("dct: forward FFT failed: %w", err)
		}
		return nil
	}

	n := p.n
	for k := range n {
		p.conv[k] = buf[k] * p.chirp[k]
	}
	for k := n; k < len(p.conv); k++ {
		p.conv[k] = 0
	}

	if err := p.fft.Forward(p.conv, p.conv); err != nil {
		return fmt.Errorf("dct: forward FFT failed: %w", err)
	}
	for i, k := range p.kernel {
		p.conv[i] *= k
	}
	if err := p.fft.Inverse(p.conv, p.conv); err != nil {
		return fmt.Errorf("dct: inverse FFT failed: %w", err)
	}

	for k := range n {
		buf[k] = p.chirp[k] * p.conv[k]
	}

	return nil
}

// idft replaces buf (length n) with its normalized inverse DFT.
func (p *Plan) idft(buf []complex128) error {
	if p.chirp == nil {
		if err := p.fft.Inverse(buf, buf); err != nil {
			return fmt.Errorf("dct: inverse FFT failed: %w", err)
		}
		return nil
	}

	// idft(x) = conj(dft(conj(x))) / n
	for k := range buf {
		buf[k] = conj(buf[k])
	}
	if err := p.dft(buf); err != nil {
		return err
	}

	inv := 1 / float64(p.n)
	for k := range buf {
		c := conj(buf[k])
		buf[k] = complex(real(c)*inv, imag(c)*inv)
	}

	return nil
}

// Forward returns the orthonormal DCT-II of x.
func Forward(x []float64) ([]float64, error) {
	p, err := NewPlan(len(x))
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	if err := p.Forward(out, x); err != nil {
		return nil, err
	}

	return out, nil
}

// Inverse returns the orthonormal DCT-III of coeffs.
func Inverse(coeffs []float64) ([]float64, error) {
	p, err := NewPlan(len(coeffs))
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(coeffs))
	if err := p.Inverse(out, coeffs); err != nil {
		return nil, err
	}

	return out, nil
}

// Direct evaluates the orthonormal DCT-II by its defining sum in O(N^2).
// Returns nil for empty input.
func Direct(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}

	out := make([]float64, n)
	piOverN := math.Pi / float64(n)
	for k := range out {
		var acc float64
		for j, v := range x {
			acc += v * math.Cos(piOverN*(float64(j)+0.5)*float64(k))
		}
		if k == 0 {
			out[k] = acc * math.Sqrt(1/float64(n))
		} else {
			out[k] = acc * math.Sqrt(2/float64(n))
		}
	}

	return out
}

func conj(c complex128) complex128 {
	return complex(real(c), -imag(c))
}
