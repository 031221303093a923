package window

import (
	"math"
	"testing"
)

func TestGenerateLength(t *testing.T) {
	for _, n := range []int{1, 2, 63, 64, 1024} {
		w := Generate(TypeHann, n)
		if len(w) != n {
			t.Errorf("length %d: got %d coefficients", n, len(w))
		}
	}

	if Generate(TypeHann, 0) != nil {
		t.Error("zero length should return nil")
	}

	if Generate(TypeHann, -5) != nil {
		t.Error("negative length should return nil")
	}
}

func TestSymmetricEndpoints(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		ends float64
	}{
		{"hann", TypeHann, 0},
		{"hamming", TypeHamming, 0.08},
		{"rectangular", TypeRectangular, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Generate(tt.typ, 65)
			if math.Abs(w[0]-tt.ends) > 1e-12 || math.Abs(w[64]-tt.ends) > 1e-12 {
				t.Errorf("endpoints = %v, %v, want %v", w[0], w[64], tt.ends)
			}

			// Symmetric form peaks at the center sample.
			if math.Abs(w[32]-maxOf(w)) > 1e-12 {
				t.Errorf("center %v is not the maximum %v", w[32], maxOf(w))
			}
		})
	}
}

func TestPeriodicForm(t *testing.T) {
	n := 64
	w := Generate(TypeHann, n, WithPeriodic())

	// Periodic Hann: w[0] = 0 and w[n/2] = 1 exactly.
	if w[0] != 0 {
		t.Errorf("w[0] = %v, want 0", w[0])
	}

	if math.Abs(w[n/2]-1) > 1e-12 {
		t.Errorf("w[n/2] = %v, want 1", w[n/2])
	}
}

func TestCoherentGain(t *testing.T) {
	// Periodic Hann has a coherent gain of exactly 0.5.
	w := Generate(TypeHann, 1024, WithPeriodic())
	if g := CoherentGain(w); math.Abs(g-0.5) > 1e-12 {
		t.Errorf("Hann coherent gain = %v, want 0.5", g)
	}

	w = Generate(TypeRectangular, 256)
	if g := CoherentGain(w); g != 1 {
		t.Errorf("rectangular coherent gain = %v, want 1", g)
	}

	if g := CoherentGain(nil); g != 0 {
		t.Errorf("empty coherent gain = %v, want 0", g)
	}
}

func TestApply(t *testing.T) {
	buf := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	want := Generate(TypeBlackman, len(buf))

	Apply(TypeBlackman, buf)

	for i := range buf {
		if math.Abs(buf[i]-want[i]) > 1e-12 {
			t.Errorf("index %d: got %v, want %v", i, buf[i], want[i])
		}
	}

	// Applying to an empty buffer is a no-op.
	Apply(TypeBlackman, nil)
}

func maxOf(v []float64) float64 {
	m := math.Inf(-1)
	for _, x := range v {
		if x > m {
			m = x
		}
	}

	return m
}
