// Package calib implements the acoustic auto-calibration engine for the
// 31-band equalizer.
//
// The engine turns a sequence of noisy magnitude-spectrum snapshots,
// captured from a microphone while a test signal or music plays, into a
// bounded, smoothed, quantized per-band correction vector. The pipeline:
//
//   - [Session] accumulates snapshots, discarding a warm-up prefix and
//     anything below the noise floor
//   - [AverageSpectra] combines the retained snapshots bin by bin in the
//     power domain
//   - [BandLevels] maps the averaged spectrum onto the 31-band grid
//   - [SmoothFractionalOctave] removes narrow-band measurement noise
//   - [Corrections] normalizes, diffs against the target curve, damps,
//     clamps, quantizes, and neighbor-smooths
//
// [Calibrator] wires these steps behind a Start/Submit/Finish interface.
// The engine is synchronous and imposes no timing: an external loop
// decides when enough snapshots have arrived and calls Finish once.
// Failures ([ErrEmptyMeasurement], [band.ErrShapeMismatch],
// [target.ErrInvalidCurve]) end the run without producing a partial
// vector; the caller surfaces them and may retry.
//
// Basic usage:
//
//	c, _ := calib.New(band.ISOThirdOctave(),
//	    calib.WithTargetCurve(target.Preference),
//	    calib.WithNoiseFloor(-80),
//	)
//	c.Start()
//	for snapshot := range captured {
//	    c.Submit(snapshot)
//	}
//	corrections, err := c.Finish()
package calib
