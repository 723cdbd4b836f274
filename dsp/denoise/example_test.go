package denoise_test

import (
	"fmt"

	"github.com/belielov/denoise-method/dsp/denoise"
	"github.com/belielov/denoise-method/dsp/threshold"
)

func ExampleRun() {
	signal := make([]float64, 100)
	for i := range signal {
		signal[i] = float64(i % 7)
	}

	cfg := denoise.DefaultConfig()
	cfg.Level = 0

	res, err := denoise.Run(signal, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%d %.3f\n", len(res.Output), res.Threshold)
	// Output: 100 3.035
}

func ExampleDCT() {
	signal := []float64{0, 1, 0, -1, 0, 1, 0, -1}

	smooth, err := denoise.DCT(signal, 1, threshold.Hard)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(smooth))
	// Output: 8
}
