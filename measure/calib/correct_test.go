package calib

import (
	"errors"
	"math"
	"testing"

	"github.com/namojo/car-audio-eq-pro/eq/band"
	"github.com/namojo/car-audio-eq-pro/eq/target"
)

func flatResponse(level float64) []float64 {
	out := make([]float64, band.Count)
	for i := range out {
		out[i] = level
	}

	return out
}

func TestCorrections_FlatTargetIdempotent(t *testing.T) {
	grid := band.ISOThirdOctave()

	flat, err := target.Gains(target.Flat, grid)
	if err != nil {
		t.Fatalf("Gains: %v", err)
	}

	// A perfectly flat measurement at any absolute level needs no
	// correction: normalization removes the playback-level dependence.
	for _, level := range []float64{-50, -20, -3} {
		got, err := Corrections(flatResponse(level), flat, grid, -20)
		if err != nil {
			t.Fatalf("Corrections: %v", err)
		}

		for i, v := range got {
			if v != 0 {
				t.Errorf("level %v: band %d = %v, want 0", level, i, v)
			}
		}
	}
}

func TestCorrections_DampingFactor(t *testing.T) {
	grid := band.ISOThirdOctave()

	flat, _ := target.Gains(target.Flat, grid)

	// A 5 dB dip across three adjacent bands: raw +5, damped to exactly
	// +3.5. The center band's neighbors agree, so the final moving
	// average leaves it at +3.5.
	resp := flatResponse(-20)
	resp[10] = -25
	resp[11] = -25
	resp[12] = -25

	got, err := Corrections(resp, flat, grid, -20)
	if err != nil {
		t.Fatalf("Corrections: %v", err)
	}

	if got[11] != 3.5 {
		t.Errorf("band 11 = %v, want 3.5 (5 dB * 0.7)", got[11])
	}
}

func TestCorrections_ClampBoundary(t *testing.T) {
	grid := band.ISOThirdOctave()

	// Extreme mismatch at the endpoints, which the final moving average
	// leaves untouched: +100 dB target over a -100 dB measurement clamps
	// to exactly +MaxCorrectionDB, never beyond.
	curve := make([]float64, band.Count)
	curve[0] = 100
	curve[30] = -100

	gains, err := target.CustomGains(grid, curve)
	if err != nil {
		t.Fatalf("CustomGains: %v", err)
	}

	resp := flatResponse(-20)
	resp[0] = -100

	got, err := Corrections(resp, gains, grid, -20)
	if err != nil {
		t.Fatalf("Corrections: %v", err)
	}

	if got[0] != MaxCorrectionDB {
		t.Errorf("band 0 = %v, want exactly %v", got[0], MaxCorrectionDB)
	}

	if got[30] != -MaxCorrectionDB {
		t.Errorf("band 30 = %v, want exactly %v", got[30], -MaxCorrectionDB)
	}
}

func TestCorrections_Quantized(t *testing.T) {
	grid := band.ISOThirdOctave()

	flat, _ := target.Gains(target.Flat, grid)

	// Awkward fractional levels everywhere; every output must still be
	// an exact multiple of the step.
	resp := make([]float64, band.Count)
	for i := range resp {
		resp[i] = -20 - 1.37*math.Sin(float64(i))
	}

	got, err := Corrections(resp, flat, grid, -20)
	if err != nil {
		t.Fatalf("Corrections: %v", err)
	}

	for i, v := range got {
		steps := v / StepDB
		if math.Abs(steps-math.Round(steps)) > 1e-9 {
			t.Errorf("band %d = %v, not a multiple of %v", i, v, StepDB)
		}
	}
}

func TestCorrections_NeighborSmoothing(t *testing.T) {
	grid := band.ISOThirdOctave()

	flat, _ := target.Gains(target.Flat, grid)

	// A single-band 10 dB dip: raw +10, damped +7. The moving average
	// spreads it across the neighbors instead of leaving a harsh
	// single-band spike.
	resp := flatResponse(-20)
	resp[15] = -30

	got, err := Corrections(resp, flat, grid, -20)
	if err != nil {
		t.Fatalf("Corrections: %v", err)
	}

	// Center: (0 + 7 + 0) / 3 = 2.33 -> 2.5.
	if got[15] != 2.5 {
		t.Errorf("band 15 = %v, want 2.5", got[15])
	}

	if got[14] != 2.5 || got[16] != 2.5 {
		t.Errorf("neighbors = %v, %v, want 2.5, 2.5", got[14], got[16])
	}

	if got[13] != 0 || got[17] != 0 {
		t.Errorf("outer bands = %v, %v, want 0, 0", got[13], got[17])
	}
}

func TestCorrections_ShapeMismatch(t *testing.T) {
	grid := band.ISOThirdOctave()

	flat, _ := target.Gains(target.Flat, grid)

	if _, err := Corrections(make([]float64, 30), flat, grid, -20); !errors.Is(err, band.ErrShapeMismatch) {
		t.Errorf("short response: error = %v, want ErrShapeMismatch", err)
	}

	if _, err := Corrections(flatResponse(-20), make([]float64, 32), grid, -20); !errors.Is(err, band.ErrShapeMismatch) {
		t.Errorf("long target: error = %v, want ErrShapeMismatch", err)
	}
}
