// Package testutil holds assertions and deterministic signals shared by the
// package tests.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps, absolute or
// relative to the larger magnitude. eps <= 0 uses 1e-12.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff/largest <= eps
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireRelativeError fails t if the L2 norm of got-want exceeds rel times
// the L2 norm of want. An all-zero want is compared with absolute tolerance rel.
func RequireRelativeError(t *testing.T, got, want []float64, rel float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	var errSq, refSq float64
	for i := range got {
		d := got[i] - want[i]
		errSq += d * d
		refSq += want[i] * want[i]
	}

	errNorm := math.Sqrt(errSq)
	refNorm := math.Sqrt(refSq)
	if refNorm == 0 {
		if errNorm > rel {
			t.Fatalf("absolute error %v > %v against zero reference", errNorm, rel)
		}
		return
	}
	if errNorm/refNorm > rel {
		t.Fatalf("relative error %v > %v", errNorm/refNorm, rel)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// TotalVariation returns sum |x[i+1]-x[i]|.
func TotalVariation(x []float64) float64 {
	var tv float64
	for i := 1; i < len(x); i++ {
		tv += math.Abs(x[i] - x[i-1])
	}
	return tv
}
