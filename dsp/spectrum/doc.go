// Package spectrum converts a stream of time-domain samples into
// decibel-scale magnitude snapshots for measurement.
//
// The [Analyzer] collects samples into a ring buffer and emits one
// snapshot per hop: the most recent FFT-size block is windowed,
// transformed, and converted to dB magnitudes over the one-sided bin
// range [0, N/2]. Magnitudes are normalized by FFT size and window
// coherent gain so that a full-scale sine reads near 0 dBFS at its bin.
//
// Basic usage:
//
//	a, _ := spectrum.NewAnalyzer(spectrum.WithFFTSize(2048))
//	a.ProcessBlock(samples, func(snapshot []float64) {
//	    // snapshot[k] is the level in dB at k * a.BinWidthHz()
//	})
package spectrum
