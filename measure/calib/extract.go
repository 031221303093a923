package calib

import (
	"fmt"
	"math"

	"github.com/namojo/car-audio-eq-pro/eq/band"
)

// BandLevels maps a wide-resolution averaged spectrum onto the band grid.
//
// For each band the nearest bin index is round(freq / binWidthHz), and
// the level is the mean of the bins one either side of it (clipped to
// the spectrum edges), skipping bins at or below the noise floor. The
// small window suppresses bin-quantization artifacts at low frequencies,
// where the bin spacing exceeds the inter-band spacing. A band whose
// window holds no valid bin yields the noise floor as a sentinel.
func BandLevels(wide []float64, grid *band.Grid, binWidthHz, noiseFloorDB float64) ([]float64, error) {
	if len(wide) == 0 {
		return nil, fmt.Errorf("calib: empty spectrum")
	}

	if binWidthHz <= 0 {
		return nil, fmt.Errorf("calib: bin width must be > 0: %v", binWidthHz)
	}

	last := len(wide) - 1
	out := make([]float64, grid.Len())

	for i := range out {
		idx := int(math.Round(grid.Freq(i) / binWidthHz))

		lo := idx - 1
		if lo < 0 {
			lo = 0
		}

		hi := idx + 1
		if hi > last {
			hi = last
		}

		if lo > hi {
			lo = hi
		}

		sum := 0.0
		valid := 0

		for k := lo; k <= hi; k++ {
			if wide[k] > noiseFloorDB {
				sum += wide[k]
				valid++
			}
		}

		if valid == 0 {
			out[i] = noiseFloorDB
			continue
		}

		out[i] = sum / float64(valid)
	}

	return out, nil
}
