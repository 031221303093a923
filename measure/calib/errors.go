package calib

import "errors"

// Errors returned by the calibration engine. All of them end the current
// calibration run; none of them is recoverable into a partial correction
// vector. The engine fails closed rather than returning garbage gains.
var (
	// ErrEmptyMeasurement reports that averaging was attempted with zero
	// (or fewer than the configured minimum) retained snapshots.
	ErrEmptyMeasurement = errors.New("calib: no valid snapshots retained for averaging")

	// ErrBinCountMismatch reports a snapshot whose bin count differs from
	// the first snapshot of the session.
	ErrBinCountMismatch = errors.New("calib: snapshot bin count differs from session")
)
