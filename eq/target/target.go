// Package target produces per-band target gain curves for calibration.
//
// A target curve is the desired equalizer response shape, expressed in dB
// per band relative to the calibration reference level. The built-in
// curves are deterministic closed-form functions of band center frequency,
// so any two runs over the same grid produce identical vectors.
package target

import (
	"errors"
	"fmt"
	"math"

	"github.com/namojo/car-audio-eq-pro/eq/band"
)

// ErrInvalidCurve reports an unknown curve name or a missing or
// mis-shaped custom curve.
var ErrInvalidCurve = errors.New("target: unknown or missing target curve")

// Curve identifies a target response curve.
type Curve string

const (
	// Flat is 0 dB at every band.
	Flat Curve = "flat"

	// Preference is a listener-preference weighting: a bass shelf, a
	// reduced low-mid shelf, flat mids, and a slight treble cut.
	Preference Curve = "preference-weighted"

	// House is a downward tilt of 1 dB per octave centered at 1 kHz,
	// the classic venue tuning curve.
	House Curve = "house-curve"

	// Custom is a caller-supplied vector; use [CustomGains].
	Custom Curve = "custom"
)

const (
	houseTiltDBPerOctave = 1.0
	housePivotHz         = 1000.0
)

// Gains returns the target gain in dB for every band of grid.
//
// [Custom] has no built-in shape and fails with [ErrInvalidCurve];
// callers holding an explicit vector use [CustomGains] instead.
func Gains(c Curve, grid *band.Grid) ([]float64, error) {
	switch c {
	case Flat:
		return make([]float64, grid.Len()), nil
	case Preference:
		return eval(grid, preferenceGain), nil
	case House:
		return eval(grid, houseGain), nil
	case Custom:
		return nil, fmt.Errorf("%w: custom curve requires explicit gains", ErrInvalidCurve)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCurve, string(c))
	}
}

// CustomGains validates a caller-supplied curve against grid and returns
// a defensive copy. Fails with [ErrInvalidCurve] if gains is missing or
// not aligned to the grid.
func CustomGains(grid *band.Grid, gains []float64) ([]float64, error) {
	if gains == nil {
		return nil, fmt.Errorf("%w: custom curve requires explicit gains", ErrInvalidCurve)
	}

	if err := grid.Validate(gains); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCurve, err)
	}

	out := make([]float64, len(gains))
	copy(out, gains)

	return out, nil
}

func eval(grid *band.Grid, fn func(freqHz float64) float64) []float64 {
	out := make([]float64, grid.Len())
	for i := range out {
		out[i] = fn(grid.Freq(i))
	}

	return out
}

// preferenceGain is piecewise-constant by frequency range.
func preferenceGain(freqHz float64) float64 {
	switch {
	case freqHz < 100:
		return 4
	case freqHz < 315:
		return 2
	case freqHz < 8000:
		return 0
	default:
		return -2
	}
}

// houseGain is a log-linear ramp: -1 dB/octave through 0 dB at 1 kHz.
func houseGain(freqHz float64) float64 {
	return -houseTiltDBPerOctave * math.Log2(freqHz/housePivotHz)
}
