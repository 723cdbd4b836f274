package dct

import (
	"fmt"
	"testing"

	"github.com/belielov/denoise-method/internal/testutil"
)

func BenchmarkForward(b *testing.B) {
	for _, n := range []int{256, 1000, 1024, 4099} {
		x := testutil.GaussianNoise(1, 1, n)
		p, err := NewPlan(n)
		if err != nil {
			b.Fatal(err)
		}
		out := make([]float64, n)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = p.Forward(out, x)
			}
		})
	}
}

func BenchmarkDirect(b *testing.B) {
	x := testutil.GaussianNoise(1, 1, 1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Direct(x)
	}
}
