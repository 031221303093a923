package calib

import (
	"math"

	"github.com/namojo/car-audio-eq-pro/dsp/core"
	"github.com/namojo/car-audio-eq-pro/eq/band"
)

// Correction output constants.
const (
	// DampingFactor scales raw corrections down so one measurement pass
	// does not overcorrect for noise and room-mode artifacts.
	DampingFactor = 0.7

	// MaxCorrectionDB bounds every correction to the filter headroom.
	MaxCorrectionDB = 10.0

	// StepDB is the correction quantization step, matching the
	// granularity of the EQ control surface.
	StepDB = 0.5
)

// Corrections computes the final per-band correction vector from a
// smoothed band response and a target curve.
//
// The measured peak is first normalized to referenceLevelDB, removing
// the dependence on playback volume: corrections address the shape of
// the response, not its absolute level. Target gains are interpreted
// relative to the reference level, so a band measuring exactly the
// reference level with a flat target needs no correction. Each raw
// difference is then damped, clamped to ±[MaxCorrectionDB], quantized to
// [StepDB], passed through a 3-point moving average across neighboring
// bands (the first and last band are left untouched), and re-quantized.
func Corrections(smoothed, targetGains []float64, grid *band.Grid, referenceLevelDB float64) ([]float64, error) {
	if err := grid.Validate(smoothed); err != nil {
		return nil, err
	}

	if err := grid.Validate(targetGains); err != nil {
		return nil, err
	}

	peak := math.Inf(-1)
	for _, v := range smoothed {
		if v > peak {
			peak = v
		}
	}

	offset := peak - referenceLevelDB

	quantized := make([]float64, grid.Len())
	for i := range quantized {
		normalized := smoothed[i] - offset

		raw := targetGains[i] + referenceLevelDB - normalized
		damped := raw * DampingFactor
		clamped := core.Clamp(damped, -MaxCorrectionDB, MaxCorrectionDB)

		quantized[i] = core.Quantize(clamped, StepDB)
	}

	// Final neighbor smoothing removes harsh single-band transitions the
	// earlier steps can introduce.
	out := make([]float64, len(quantized))
	out[0] = quantized[0]
	out[len(out)-1] = quantized[len(quantized)-1]

	for i := 1; i < len(quantized)-1; i++ {
		mean := (quantized[i-1] + quantized[i] + quantized[i+1]) / 3
		out[i] = core.Quantize(mean, StepDB)
	}

	return out, nil
}
