// Command eqcal runs an offline auto-calibration pass over a synthetic
// measurement signal and prints the resulting per-band corrections.
//
// Usage:
//
//	eqcal [flags]
//
// Examples:
//
//	eqcal
//	eqcal -target house-curve -fraction 6
//	eqcal -tilt 0.9 -seconds 20 -reference -25
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/namojo/car-audio-eq-pro/dsp/spectrum"
	"github.com/namojo/car-audio-eq-pro/eq/band"
	"github.com/namojo/car-audio-eq-pro/eq/target"
	"github.com/namojo/car-audio-eq-pro/internal/testutil"
	"github.com/namojo/car-audio-eq-pro/measure/calib"
)

func main() {
	sampleRate := flag.Float64("samplerate", 48000, "capture sample rate in Hz")
	fftSize := flag.Int("fftsize", 2048, "FFT size (power of two)")
	seconds := flag.Float64("seconds", 10, "measurement duration in seconds")
	targetName := flag.String("target", "flat", "target curve: flat, preference-weighted, house-curve")
	fraction := flag.Int("fraction", 3, "fractional-octave smoothing denominator: 3, 6, or 12")
	noiseFloor := flag.Float64("noise-floor", -80, "noise floor in dB")
	reference := flag.Float64("reference", -20, "reference level in dB")
	seed := flag.Int64("seed", 1, "noise generator seed")
	tilt := flag.Float64("tilt", 0.8, "one-pole lowpass coefficient coloring the test noise, 0..0.99")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eqcal [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Runs a synthetic auto-calibration pass and prints corrections.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*sampleRate, *fftSize, *seconds, *targetName, *fraction, *noiseFloor, *reference, *seed, *tilt); err != nil {
		fmt.Fprintf(os.Stderr, "eqcal: %v\n", err)
		os.Exit(1)
	}
}

func run(sampleRate float64, fftSize int, seconds float64, targetName string, fraction int, noiseFloor, reference float64, seed int64, tilt float64) error {
	analyzer, err := spectrum.NewAnalyzer(
		spectrum.WithSampleRate(sampleRate),
		spectrum.WithFFTSize(fftSize),
	)
	if err != nil {
		return err
	}

	grid := band.ISOThirdOctave()

	c, err := calib.New(grid,
		calib.WithSampleRate(sampleRate),
		calib.WithFFTSize(fftSize),
		calib.WithTargetCurve(target.Curve(targetName)),
		calib.WithSmoothingFraction(1/float64(fraction)),
		calib.WithNoiseFloor(noiseFloor),
		calib.WithReferenceLevel(reference),
	)
	if err != nil {
		return err
	}

	// Synthetic room response: white noise colored by a one-pole lowpass,
	// standing in for the microphone capture of the test signal.
	samples := testutil.DeterministicNoise(seed, 0.5, int(seconds*sampleRate))
	if tilt > 0 && tilt < 1 {
		prev := 0.0
		for i, x := range samples {
			prev = tilt*prev + (1-tilt)*x
			samples[i] = prev
		}
	}

	c.Start()

	var submitErr error

	analyzer.ProcessBlock(samples, func(snapshot []float64) {
		if submitErr == nil {
			submitErr = c.Submit(snapshot)
		}
	})

	if submitErr != nil {
		return submitErr
	}

	corrections, err := c.Finish()
	if err != nil {
		return err
	}

	fmt.Printf("retained %d snapshots\n\n", c.Count())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "band\tfreq (Hz)\tcorrection (dB)\t")

	for i, v := range corrections {
		fmt.Fprintf(w, "%d\t%.1f\t%+.1f\t\n", i+1, grid.Freq(i), v)
	}

	return w.Flush()
}
