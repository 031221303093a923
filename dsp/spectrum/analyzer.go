package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/namojo/car-audio-eq-pro/dsp/core"
	"github.com/namojo/car-audio-eq-pro/dsp/window"
)

// Analyzer turns a sample stream into dB magnitude snapshots.
type Analyzer struct {
	cfg     AnalyzerConfig
	win     []float64
	winGain float64
	plan    *algofft.Plan[complex128]

	input    []complex128
	output   []complex128
	scratch  []float64
	windowed []float64
	re       []float64
	im       []float64

	ring   []float64
	write  int
	filled int
	toHop  int
	hop    int
}

// NewAnalyzer creates an analyzer with the given options.
func NewAnalyzer(opts ...AnalyzerOption) (*Analyzer, error) {
	cfg := ApplyAnalyzerOptions(opts...)

	n := cfg.BlockSize

	win := window.Generate(cfg.Window, n, window.WithPeriodic())
	gain := window.CoherentGain(win)
	if gain <= 0 {
		return nil, fmt.Errorf("spectrum: window has non-positive coherent gain: %v", gain)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	hop := int(math.Round(float64(n) * (1 - cfg.Overlap)))
	if hop < 1 {
		hop = 1
	}

	bins := n/2 + 1

	return &Analyzer{
		cfg:      cfg,
		win:      win,
		winGain:  gain,
		plan:     plan,
		input:    make([]complex128, n),
		output:   make([]complex128, n),
		scratch:  make([]float64, n),
		windowed: make([]float64, n),
		re:       make([]float64, bins),
		im:       make([]float64, bins),
		ring:     make([]float64, n),
		hop:      hop,
	}, nil
}

// Bins returns the snapshot length, FFT size / 2 + 1.
func (a *Analyzer) Bins() int { return a.cfg.BlockSize/2 + 1 }

// BinWidthHz returns the frequency spacing between snapshot bins.
func (a *Analyzer) BinWidthHz() float64 { return a.cfg.BinWidthHz() }

// SampleRate returns the configured sample rate.
func (a *Analyzer) SampleRate() float64 { return a.cfg.SampleRate }

// Reset discards all buffered samples.
func (a *Analyzer) Reset() {
	core.Zero(a.ring)
	a.write = 0
	a.filled = 0
	a.toHop = 0
}

// ProcessBlock consumes samples and invokes emit once per completed hop.
//
// The snapshot passed to emit is freshly allocated per frame; emit may
// retain it. No frame is emitted until a full FFT block has accumulated.
func (a *Analyzer) ProcessBlock(samples []float64, emit func(snapshot []float64)) {
	n := a.cfg.BlockSize

	for _, s := range samples {
		a.ring[a.write] = s

		a.write++
		if a.write >= n {
			a.write = 0
		}

		if a.filled < n {
			a.filled++
		}

		a.toHop++
		if a.filled < n || a.toHop < a.hop {
			continue
		}

		a.toHop = 0

		if emit != nil {
			emit(a.snapshot())
		}
	}
}

// snapshot windows and transforms the most recent block, returning the
// one-sided magnitude spectrum in dB.
func (a *Analyzer) snapshot() []float64 {
	n := a.cfg.BlockSize

	read := a.write
	for i := range n {
		a.scratch[i] = a.ring[read]

		read++
		if read >= n {
			read = 0
		}
	}

	vecmath.MulBlock(a.windowed, a.scratch, a.win)

	for i := range n {
		a.input[i] = complex(a.windowed[i], 0)
	}

	bins := n/2 + 1
	out := make([]float64, bins)

	if err := a.plan.Forward(a.output, a.input); err != nil {
		for k := range out {
			out[k] = a.cfg.FloorDB
		}

		return out
	}

	for k := range bins {
		a.re[k] = real(a.output[k])
		a.im[k] = imag(a.output[k])
	}

	vecmath.Magnitude(out, a.re, a.im)

	norm := float64(n) * a.winGain
	last := bins - 1

	for k := range out {
		mag := out[k] / norm
		if k > 0 && k < last {
			// One-sided spectrum: interior bins carry both halves.
			mag *= 2
		}

		db := core.LinearToDB(mag)
		if !(db > a.cfg.FloorDB) {
			db = a.cfg.FloorDB
		}

		out[k] = db
	}

	return out
}
