package calib

import (
	"math"
	"sort"

	"github.com/namojo/car-audio-eq-pro/eq/band"
)

// Recognized fractional-octave smoothing widths.
const (
	SmoothingThird   = 1.0 / 3.0
	SmoothingSixth   = 1.0 / 6.0
	SmoothingTwelfth = 1.0 / 12.0
)

const fractionTolerance = 1e-9

// SmoothFractionalOctave applies fractional-octave smoothing across the
// band response to suppress narrow-band measurement noise.
//
// Each band i with center frequency f is replaced by the arithmetic mean
// of all bands whose center frequency falls within
//
//	[f * 2^(-fraction/2), f * 2^(fraction/2)]
//
// skipping noise-floor sentinel values. A band with no valid value in
// its window keeps its original value. The fraction is a cosmetic knob:
// unrecognized values fall back to 1/3 rather than failing. The input is
// never mutated.
func SmoothFractionalOctave(resp []float64, grid *band.Grid, fraction, noiseFloorDB float64) ([]float64, error) {
	if err := grid.Validate(resp); err != nil {
		return nil, err
	}

	fraction = normalizeFraction(fraction)
	halfBand := math.Pow(2, fraction/2)

	freqs := grid.Frequencies()
	out := make([]float64, len(resp))

	for i, f := range freqs {
		fLo := f / halfBand
		fHi := f * halfBand

		i0 := sort.SearchFloat64s(freqs, fLo)
		i1 := sort.Search(len(freqs), func(k int) bool { return freqs[k] > fHi })

		sum := 0.0
		valid := 0

		for j := i0; j < i1; j++ {
			if resp[j] > noiseFloorDB {
				sum += resp[j]
				valid++
			}
		}

		if valid == 0 {
			out[i] = resp[i]
			continue
		}

		out[i] = sum / float64(valid)
	}

	return out, nil
}

func normalizeFraction(fraction float64) float64 {
	for _, known := range []float64{SmoothingThird, SmoothingSixth, SmoothingTwelfth} {
		if math.Abs(fraction-known) <= fractionTolerance {
			return known
		}
	}

	return SmoothingThird
}
