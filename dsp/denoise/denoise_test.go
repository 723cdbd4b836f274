package denoise_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/belielov/denoise-method/dsp/core"
	"github.com/belielov/denoise-method/dsp/dct"
	"github.com/belielov/denoise-method/dsp/denoise"
	"github.com/belielov/denoise-method/dsp/threshold"
	"github.com/belielov/denoise-method/dsp/wavelet"
	"github.com/belielov/denoise-method/internal/testutil"
)

func TestDCTRetainAllIsIdentity(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8, 17, 100, 256, 1000} {
		signal := testutil.AddNoise(testutil.DefaultSpectrum(n), int64(n), 0.05)
		for _, mode := range []threshold.Mode{threshold.Hard, threshold.Soft} {
			got, err := denoise.DCT(signal, 1, mode)
			if err != nil {
				t.Fatalf("n=%d %v: %v", n, mode, err)
			}
			testutil.RequireRelativeError(t, got, signal, 1e-9)
		}
	}
}

func TestDCTZeroThresholdIsIdentity(t *testing.T) {
	signal := testutil.AddNoise(testutil.DefaultSpectrum(300), 7, 0.1)
	got, err := denoise.DCT(signal, 0.1, threshold.Soft, denoise.WithEstimator(threshold.Fixed{Value: 0}))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireRelativeError(t, got, signal, 1e-9)
}

func TestWaveletZeroThresholdIsIdentity(t *testing.T) {
	for _, basis := range wavelet.Names() {
		for _, n := range []int{64, 100, 101, 511} {
			signal := testutil.AddNoise(testutil.DefaultSpectrum(n), int64(n), 0.05)
			got, err := denoise.Wavelet(signal, basis, 2, threshold.Soft, denoise.WithEstimator(threshold.Fixed{Value: 0}))
			if err != nil {
				t.Fatalf("%s n=%d: %v", basis, n, err)
			}
			testutil.RequireRelativeError(t, got, signal, 1e-6)
		}
	}
}

func TestLengthInvariance(t *testing.T) {
	for n := 1; n <= 70; n++ {
		signal := testutil.AddNoise(testutil.Ramp(n), int64(n), 0.3)

		out, err := denoise.DCT(signal, 0.2, threshold.Hard)
		if err != nil {
			t.Fatalf("dct n=%d: %v", n, err)
		}
		if len(out) != n {
			t.Fatalf("dct n=%d: len=%d", n, len(out))
		}

		b, _ := wavelet.Lookup("db2")
		level := min(wavelet.MaxLevel(n, b), 3)
		out, err = denoise.Wavelet(signal, "db2", level, threshold.Soft)
		if err != nil {
			t.Fatalf("wavelet n=%d level=%d: %v", n, level, err)
		}
		if len(out) != n {
			t.Fatalf("wavelet n=%d: len=%d", n, len(out))
		}
		testutil.RequireFinite(t, out)
	}
}

func TestDCTConcreteScenario(t *testing.T) {
	signal := []float64{0, 1, 0, -1, 0, 1, 0, -1}

	res, err := denoise.Run(signal, denoise.Config{Method: denoise.MethodDCT, Mode: threshold.Hard, Fraction: 0.25})
	if err != nil {
		t.Fatal(err)
	}
	if res.Retained != 2 || res.Total != 8 {
		t.Fatalf("retained %d of %d coefficients, want 2 of 8", res.Retained, res.Total)
	}

	coeffs, err := dct.Forward(res.Output)
	if err != nil {
		t.Fatal(err)
	}
	nonZero := 0
	for _, c := range coeffs {
		if math.Abs(c) > 1e-9 {
			nonZero++
		}
	}
	if nonZero != 2 {
		t.Fatalf("output spectrum has %d non-zero coefficients, want 2", nonZero)
	}

	before := testutil.TotalVariation(signal)
	after := testutil.TotalVariation(res.Output)
	if after >= before {
		t.Fatalf("total variation %v, want < %v", after, before)
	}
}

func TestWaveletInfiniteThresholdKeepsApproximation(t *testing.T) {
	signal := testutil.AddNoise(testutil.DefaultSpectrum(256), 3, 0.05)
	b, err := wavelet.Lookup("db4")
	if err != nil {
		t.Fatal(err)
	}

	coeffs, err := wavelet.Decompose(signal, b, 3)
	if err != nil {
		t.Fatal(err)
	}
	coeffs.ZeroDetails()
	want, err := wavelet.Reconstruct(coeffs)
	if err != nil {
		t.Fatal(err)
	}

	for _, mode := range []threshold.Mode{threshold.Hard, threshold.Soft} {
		got, err := denoise.Wavelet(signal, "db4", 3, mode, denoise.WithEstimator(threshold.Fixed{Value: math.Inf(1)}))
		if err != nil {
			t.Fatalf("%v: %v", mode, err)
		}
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
	}
}

func TestWaveletLevelZero(t *testing.T) {
	signal := testutil.AddNoise(testutil.DefaultSpectrum(100), 11, 0.2)
	cfg := denoise.DefaultConfig()
	cfg.Level = 0

	res, err := denoise.Run(signal, cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Sqrt(2 * math.Log(100))
	if math.Abs(res.Threshold-want) > 1e-12 {
		t.Fatalf("threshold=%v, want %v", res.Threshold, want)
	}
	if math.Abs(res.Threshold-3.035) > 5e-4 {
		t.Fatalf("threshold=%v, want about 3.035", res.Threshold)
	}
	if res.Total != 0 {
		t.Fatalf("total=%d, want no shrinkable coefficients", res.Total)
	}
	testutil.RequireRelativeError(t, res.Output, signal, 1e-6)
}

func TestWithScale(t *testing.T) {
	signal := testutil.AddNoise(testutil.DefaultSpectrum(100), 5, 0.1)
	cfg := denoise.DefaultConfig()
	cfg.Level = 0
	cfg.Scale = 0.5

	res, err := denoise.Run(signal, cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := 0.5 * math.Sqrt(2*math.Log(100))
	if math.Abs(res.Threshold-want) > 1e-12 {
		t.Fatalf("threshold=%v, want %v", res.Threshold, want)
	}
}

func TestDenoisingReducesError(t *testing.T) {
	clean := testutil.Spectrum(512,
		testutil.Peak{Center: 150, HalfWidth: 30, Height: 1},
		testutil.Peak{Center: 350, HalfWidth: 40, Height: 0.8},
	)
	noisy := testutil.AddNoise(clean, 42, 0.05)
	before := rmsError(noisy, clean)

	tests := []struct {
		name string
		cfg  denoise.Config
	}{
		{"dct", denoise.Config{Method: denoise.MethodDCT, Mode: threshold.Hard, Fraction: 0.07}},
		{"wavelet-hard", denoise.Config{Method: denoise.MethodWavelet, Mode: threshold.Hard, Basis: "db4", Level: 3}},
		{"wavelet-soft", denoise.Config{Method: denoise.MethodWavelet, Mode: threshold.Soft, Basis: "db4", Level: 3}},
		{"savgol", denoise.Config{Method: denoise.MethodSavGol, Window: 17, Order: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := denoise.Run(noisy, tt.cfg)
			if err != nil {
				t.Fatal(err)
			}
			after := rmsError(res.Output, clean)
			if after >= 0.8*before {
				t.Fatalf("rms error %v, want < %v", after, 0.8*before)
			}
		})
	}
}

func TestInputNotModified(t *testing.T) {
	signal := testutil.AddNoise(testutil.DefaultSpectrum(128), 1, 0.1)
	orig := append([]float64(nil), signal...)

	if _, err := denoise.DCT(signal, 0.1, threshold.Soft); err != nil {
		t.Fatal(err)
	}
	if _, err := denoise.Wavelet(signal, "db4", 3, threshold.Hard); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, signal, orig, 0)
}

func TestConcurrentCallsAreDeterministic(t *testing.T) {
	signal := testutil.AddNoise(testutil.DefaultSpectrum(1000), 9, 0.05)
	wantDCT, err := denoise.DCT(signal, 0.07, threshold.Soft)
	if err != nil {
		t.Fatal(err)
	}
	wantWav, err := denoise.Wavelet(signal, "db4", 3, threshold.Soft)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gotDCT, err := denoise.DCT(signal, 0.07, threshold.Soft)
			if err != nil {
				errs <- err
				return
			}
			gotWav, err := denoise.Wavelet(signal, "db4", 3, threshold.Soft)
			if err != nil {
				errs <- err
				return
			}
			for i := range signal {
				if gotDCT[i] != wantDCT[i] || gotWav[i] != wantWav[i] {
					errs <- errors.New("concurrent result differs from serial result")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestValidationOrder(t *testing.T) {
	signal := testutil.Ramp(16)

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"dct bad mode before empty signal", func() error {
			_, err := denoise.DCT(nil, 0.5, threshold.Mode(9))
			return err
		}, core.ErrConfiguration},
		{"dct zero fraction", func() error {
			_, err := denoise.DCT(nil, 0, threshold.Hard)
			return err
		}, core.ErrConfiguration},
		{"dct fraction above one", func() error {
			_, err := denoise.DCT(signal, 1.5, threshold.Hard)
			return err
		}, core.ErrConfiguration},
		{"dct NaN fraction", func() error {
			_, err := denoise.DCT(signal, math.NaN(), threshold.Hard)
			return err
		}, core.ErrConfiguration},
		{"dct empty signal", func() error {
			_, err := denoise.DCT(nil, 0.5, threshold.Hard)
			return err
		}, core.ErrInvalidParameter},
		{"dct negative fixed threshold", func() error {
			_, err := denoise.DCT(signal, 0.5, threshold.Hard, denoise.WithEstimator(threshold.Fixed{Value: -1}))
			return err
		}, core.ErrConfiguration},
		{"wavelet unknown basis before bad level", func() error {
			_, err := denoise.Wavelet(signal, "sym99", 40, threshold.Soft)
			return err
		}, core.ErrConfiguration},
		{"wavelet bad mode", func() error {
			_, err := denoise.Wavelet(signal, "db4", 1, threshold.Mode(-1))
			return err
		}, core.ErrConfiguration},
		{"wavelet negative scale", func() error {
			_, err := denoise.Wavelet(signal, "db4", 1, threshold.Soft, denoise.WithScale(-2))
			return err
		}, core.ErrConfiguration},
		{"wavelet negative level", func() error {
			_, err := denoise.Wavelet(signal, "db4", -1, threshold.Soft)
			return err
		}, core.ErrInvalidParameter},
		{"wavelet level too deep", func() error {
			_, err := denoise.Wavelet(signal, "db4", 5, threshold.Soft)
			return err
		}, core.ErrInvalidParameter},
		{"wavelet empty signal", func() error {
			_, err := denoise.Wavelet(nil, "db4", 0, threshold.Soft)
			return err
		}, core.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if !errors.Is(err, tt.want) {
				t.Fatalf("err=%v, want %v", err, tt.want)
			}
		})
	}
}

func rmsError(got, want []float64) float64 {
	var sum float64
	for i := range got {
		d := got[i] - want[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(got)))
}
