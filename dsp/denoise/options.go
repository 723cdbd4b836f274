package denoise

import "github.com/belielov/denoise-method/dsp/threshold"

type options struct {
	estimator threshold.Estimator
	scale     float64
}

// Option configures a denoising call.
type Option func(*options)

// WithEstimator replaces the pipeline's default threshold policy.
func WithEstimator(est threshold.Estimator) Option {
	return func(o *options) {
		if est != nil {
			o.estimator = est
		}
	}
}

// WithScale multiplies the universal threshold of the wavelet pipeline.
// It has no effect when WithEstimator is also given.
func WithScale(scale float64) Option {
	return func(o *options) {
		o.scale = scale
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
