package calib

import (
	"math"

	"github.com/namojo/car-audio-eq-pro/dsp/core"
)

// AverageSpectra combines retained snapshots, bin by bin, into one
// representative magnitude spectrum in dB.
//
// Levels of incoherent signals must be combined in the power domain, not
// by averaging decibel values. Per bin, every value strictly above the
// noise floor contributes its squared linear amplitude:
//
//	avg[k] = 20*log10( sqrt( sum(10^(db/20))^2 / validCount ) )
//
// A bin with zero valid contributors yields the noise floor as a
// sentinel, never -Inf or NaN.
func AverageSpectra(snapshots [][]float64, noiseFloorDB float64) ([]float64, error) {
	if len(snapshots) == 0 {
		return nil, ErrEmptyMeasurement
	}

	bins := len(snapshots[0])

	powerSum := make([]float64, bins)
	validCount := make([]int, bins)

	for _, snap := range snapshots {
		if len(snap) != bins {
			return nil, ErrBinCountMismatch
		}

		for k, db := range snap {
			// Strict comparison also rejects NaN values.
			if !(db > noiseFloorDB) {
				continue
			}

			amp := core.DBToLinear(db)
			powerSum[k] += amp * amp
			validCount[k]++
		}
	}

	out := make([]float64, bins)
	for k := range out {
		if validCount[k] == 0 {
			out[k] = noiseFloorDB
			continue
		}

		out[k] = core.LinearToDB(math.Sqrt(powerSum[k] / float64(validCount[k])))
	}

	return out, nil
}
