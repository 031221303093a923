// Package band defines the fixed 31-band third-octave frequency grid
// shared by every band-aligned vector in the equalizer.
//
// The grid uses the nominal IEC 61260 third-octave center frequencies
// from 20 Hz to 20 kHz. It is the canonical index space: responses,
// target curves, and correction vectors are all aligned to it
// index-for-index and must have exactly [Count] entries.
package band

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch reports a vector whose length does not match the grid.
var ErrShapeMismatch = errors.New("band: vector length does not match band grid")

// Count is the number of bands in the grid.
const Count = 31

// Nominal IEC 61260 third-octave centers, 20 Hz to 20 kHz.
var isoThirdOctave = [Count]float64{
	20, 25, 31.5, 40, 50, 63, 80, 100, 125, 160,
	200, 250, 315, 400, 500, 630, 800, 1000, 1250, 1600,
	2000, 2500, 3150, 4000, 5000, 6300, 8000, 10000, 12500, 16000,
	20000,
}

// Grid is a fixed, ordered set of band center frequencies.
// The zero value is not usable; construct with [ISOThirdOctave].
type Grid struct {
	freqs [Count]float64
}

// ISOThirdOctave returns the standard 31-band third-octave grid.
func ISOThirdOctave() *Grid {
	return &Grid{freqs: isoThirdOctave}
}

// Len returns the number of bands, always [Count].
func (g *Grid) Len() int { return Count }

// Freq returns the center frequency of band i in Hz.
// Panics if i is out of range, as slice indexing would.
func (g *Grid) Freq(i int) float64 { return g.freqs[i] }

// Frequencies returns a copy of the center frequencies in ascending order.
func (g *Grid) Frequencies() []float64 {
	out := make([]float64, Count)
	copy(out, g.freqs[:])

	return out
}

// Validate checks that vec is aligned to the grid.
func (g *Grid) Validate(vec []float64) error {
	if len(vec) != Count {
		return fmt.Errorf("%w: got %d, want %d", ErrShapeMismatch, len(vec), Count)
	}

	return nil
}
