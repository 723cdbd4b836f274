package wavelet

// Coefficients is the result of a multi-level decomposition.
type Coefficients struct {
	Basis Basis

	// Approx is the coarsest-scale approximation band.
	Approx []float64

	// Details holds one band per level, coarsest first and finest last.
	Details [][]float64

	n int
}

// Level returns the decomposition depth.
func (c *Coefficients) Level() int {
	return len(c.Details)
}

// SignalLen returns the length of the decomposed signal.
func (c *Coefficients) SignalLen() int {
	return c.n
}

// FinestDetail returns the highest-frequency detail band. It reports false
// for a level-0 decomposition, which has no detail band.
func (c *Coefficients) FinestDetail() ([]float64, bool) {
	if len(c.Details) == 0 {
		return nil, false
	}
	return c.Details[len(c.Details)-1], true
}

// Bands returns every band in storage order: approximation, then details
// from coarsest to finest. The slices share memory with c.
func (c *Coefficients) Bands() [][]float64 {
	bands := make([][]float64, 0, len(c.Details)+1)
	bands = append(bands, c.Approx)
	return append(bands, c.Details...)
}

// ShrinkBands returns the bands that thresholding may modify: the details.
// The approximation band is never shrunk.
func (c *Coefficients) ShrinkBands() [][]float64 {
	return c.Details
}

// NoiseBand returns the band used for noise estimation, the finest detail.
func (c *Coefficients) NoiseBand() ([]float64, bool) {
	return c.FinestDetail()
}

// ZeroDetails clears every detail band, leaving only the approximation.
func (c *Coefficients) ZeroDetails() {
	for _, d := range c.Details {
		clear(d)
	}
}

// Size returns the total number of coefficients stored.
func (c *Coefficients) Size() int {
	size := len(c.Approx)
	for _, d := range c.Details {
		size += len(d)
	}
	return size
}

// NonZero returns the number of non-zero coefficients.
func (c *Coefficients) NonZero() int {
	count := 0
	for _, band := range c.Bands() {
		for _, v := range band {
			if v != 0 {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of c.
func (c *Coefficients) Clone() *Coefficients {
	out := &Coefficients{
		Basis:   Basis{Name: c.Basis.Name, Lo: append([]float64(nil), c.Basis.Lo...)},
		Approx:  append([]float64(nil), c.Approx...),
		Details: make([][]float64, len(c.Details)),
		n:       c.n,
	}
	for i, d := range c.Details {
		out.Details[i] = append([]float64(nil), d...)
	}
	return out
}
