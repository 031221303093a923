// Package window provides the window functions used for spectral
// measurement framing.
//
// Symmetric form is the analysis default; periodic form should be used
// when the window frames blocks for an FFT, so that the implied
// periodic extension has no duplicated endpoint sample.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris4Term
)

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length.
// A non-positive length returns nil.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)

	denom := float64(length - 1)
	if cfg.periodic {
		denom = float64(length)
	}

	if denom == 0 {
		out[0] = 1
		return out
	}

	for i := range out {
		x := float64(i) / denom
		out[i] = eval(t, x)
	}

	return out
}

func eval(t Type, x float64) float64 {
	w := 2 * math.Pi * x

	switch t {
	case TypeHann:
		return 0.5 - 0.5*math.Cos(w)
	case TypeHamming:
		return 0.54 - 0.46*math.Cos(w)
	case TypeBlackman:
		return 0.42 - 0.5*math.Cos(w) + 0.08*math.Cos(2*w)
	case TypeBlackmanHarris4Term:
		return 0.35875 - 0.48829*math.Cos(w) + 0.14128*math.Cos(2*w) - 0.01168*math.Cos(3*w)
	default:
		return 1
	}
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf), opts...)
	if len(coeffs) != len(buf) {
		return
	}

	vecmath.MulBlockInPlace(buf, coeffs)
}

// CoherentGain returns sum(w[n]) / N, the DC response of the window.
// An empty window returns 0.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs))
}
