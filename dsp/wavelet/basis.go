package wavelet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/belielov/denoise-method/dsp/core"
)

// DefaultBasis is the basis used when none is configured.
const DefaultBasis = "db4"

// Basis is an orthogonal wavelet described by its scaling filter Lo, in
// reconstruction order (db2 starts 0.4830, 0.8365).
type Basis struct {
	Name string
	Lo   []float64
}

// FilterLen returns the number of filter taps.
func (b Basis) FilterLen() int {
	return len(b.Lo)
}

// Hi returns the quadrature-mirror high-pass filter g[j] = (-1)^j h[L-1-j].
func (b Basis) Hi() []float64 {
	l := len(b.Lo)
	hi := make([]float64, l)
	for j := range hi {
		v := b.Lo[l-1-j]
		if j%2 == 1 {
			v = -v
		}
		hi[j] = v
	}
	return hi
}

// Daubechies scaling filters, db1 (Haar) through db6, reconstruction order.
var (
	haarLo = []float64{0.7071067811865476, 0.7071067811865476}

	db2Lo = []float64{
		0.48296291314453427, 0.836516303737808, 0.2241438680420133, -0.12940952255126045,
	}

	db3Lo = []float64{
		0.3326705529500827, 0.8068915093110927, 0.45987750211849154,
		-0.13501102001025464, -0.08544127388202664, 0.03522629188570957,
	}

	db4Lo = []float64{
		0.23037781330889656, 0.7148465705529159, 0.630880767929859, -0.02798376941685991,
		-0.18703481171909314, 0.030841381835560764, 0.032883011666885203, -0.010597401785069037,
	}

	db5Lo = []float64{
		0.16010239797419298, 0.6038292697971899, 0.7243085284377733, 0.13842814590132022,
		-0.24229488706638208, -0.03224486958463836, 0.07757149384004577, -0.006241490212798298,
		-0.01258075199908201, 0.003335725285473777,
	}

	db6Lo = []float64{
		0.11154074335010952, 0.4946238903984533, 0.7511339080210956, 0.3152503517091976,
		-0.2262646939654401, -0.12976686756726194, 0.09750160558732315, 0.027522865530305723,
		-0.031582039317486064, 0.000553842201161505, 0.004777257510945514, -0.0010773010853084813,
	}
)

var registry = map[string][]float64{
	"haar": haarLo,
	"db1":  haarLo,
	"db2":  db2Lo,
	"db3":  db3Lo,
	"db4":  db4Lo,
	"db5":  db5Lo,
	"db6":  db6Lo,
}

// Lookup returns the basis registered under name (case-insensitive).
func Lookup(name string) (Basis, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	lo, ok := registry[key]
	if !ok {
		return Basis{}, fmt.Errorf("wavelet: %w: unknown basis %q (known: %s)",
			core.ErrConfiguration, name, strings.Join(Names(), ", "))
	}

	return Basis{Name: key, Lo: append([]float64(nil), lo...)}, nil
}

// Names returns the registered basis names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
