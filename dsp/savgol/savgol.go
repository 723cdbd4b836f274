// Package savgol implements Savitzky-Golay smoothing: a moving least-squares
// polynomial fit evaluated at the window centre.
//
// Interior samples use the convolution form with [Coefficients]. The first
// and last half-windows are taken from a polynomial fitted to the first and
// last full window, so the output has the input length and polynomials of
// degree <= order pass through unchanged everywhere.
package savgol

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/belielov/denoise-method/dsp/core"
)

// Defaults for instrument intensity traces.
const (
	DefaultWindow = 17
	DefaultOrder  = 3
)

func validate(window, order int) error {
	if window < 1 || window%2 == 0 {
		return fmt.Errorf("savgol: %w: window must be a positive odd number, got %d", core.ErrConfiguration, window)
	}
	if order < 0 || order >= window {
		return fmt.Errorf("savgol: %w: order must be in [0, window), got %d for window %d", core.ErrConfiguration, order, window)
	}
	return nil
}

// fitMatrix returns the (order+1) x window least-squares operator that maps
// window samples to polynomial coefficients in t = i - window/2.
func fitMatrix(window, order int) (*mat.Dense, error) {
	half := window / 2
	vander := mat.NewDense(window, order+1, nil)
	for i := range window {
		t := float64(i - half)
		p := 1.0
		for j := 0; j <= order; j++ {
			vander.Set(i, j, p)
			p *= t
		}
	}

	eye := mat.NewDense(window, window, nil)
	for i := range window {
		eye.Set(i, i, 1)
	}

	var fit mat.Dense
	if err := fit.Solve(vander, eye); err != nil {
		return nil, fmt.Errorf("savgol: least-squares design failed: %w", err)
	}
	return &fit, nil
}

// Coefficients returns the window smoothing weights for the centre sample.
func Coefficients(window, order int) ([]float64, error) {
	if err := validate(window, order); err != nil {
		return nil, err
	}

	fit, err := fitMatrix(window, order)
	if err != nil {
		return nil, err
	}
	return mat.Row(nil, 0, fit), nil
}

// Filter smooths x with the given window and polynomial order.
func Filter(x []float64, window, order int) ([]float64, error) {
	if err := validate(window, order); err != nil {
		return nil, err
	}
	n := len(x)
	if n < window {
		return nil, fmt.Errorf("savgol: %w: window %d exceeds signal length %d", core.ErrInvalidParameter, window, n)
	}

	fit, err := fitMatrix(window, order)
	if err != nil {
		return nil, err
	}
	weights := mat.Row(nil, 0, fit)

	half := window / 2
	out := make([]float64, n)
	for i := half; i < n-half; i++ {
		var acc float64
		for k, w := range weights {
			acc += w * x[i-half+k]
		}
		out[i] = acc
	}

	fitEdge(out, x, fit, 0, 0, half)
	fitEdge(out, x, fit, n-window, n-half, n)

	return out, nil
}

// fitEdge fits a polynomial to x[start:start+window] and evaluates it for
// output indices [from, to).
func fitEdge(out, x []float64, fit *mat.Dense, start, from, to int) {
	rows, window := fit.Dims()
	half := window / 2

	var poly mat.VecDense
	poly.MulVec(fit, mat.NewVecDense(window, x[start:start+window:start+window]))

	for i := from; i < to; i++ {
		t := float64(i - start - half)
		var y float64
		for j := rows - 1; j >= 0; j-- {
			y = y*t + poly.AtVec(j)
		}
		out[i] = y
	}
}
