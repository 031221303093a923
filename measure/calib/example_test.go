package calib_test

import (
	"fmt"

	"github.com/namojo/car-audio-eq-pro/eq/band"
	"github.com/namojo/car-audio-eq-pro/eq/target"
	"github.com/namojo/car-audio-eq-pro/measure/calib"
)

func ExampleCalibrator() {
	grid := band.ISOThirdOctave()

	c, err := calib.New(grid,
		calib.WithSampleRate(48000),
		calib.WithFFTSize(2048),
		calib.WithTargetCurve(target.Flat),
		calib.WithWarmupDiscard(0),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	// Synthetic measurement: flat at -20 dB except a 6 dB dip covering
	// the 800 Hz - 1.25 kHz bands (bins 32..56 of a 2048-point FFT at
	// 48 kHz).
	snapshot := make([]float64, 1025)
	for k := range snapshot {
		snapshot[k] = -20
	}

	for k := 32; k <= 56; k++ {
		snapshot[k] = -26
	}

	c.Start()

	for range 20 {
		if err := c.Submit(snapshot); err != nil {
			fmt.Println(err)
			return
		}
	}

	corrections, err := c.Finish()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("bands: %d\n", len(corrections))
	fmt.Printf("800 Hz: %+.1f dB\n", corrections[16])
	fmt.Printf("1 kHz: %+.1f dB\n", corrections[17])
	fmt.Printf("20 kHz: %+.1f dB\n", corrections[30])

	// Output:
	// bands: 31
	// 800 Hz: +2.5 dB
	// 1 kHz: +4.0 dB
	// 20 kHz: +0.0 dB
}
