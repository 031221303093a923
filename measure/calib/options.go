package calib

import (
	"time"

	"github.com/namojo/car-audio-eq-pro/dsp/core"
	"github.com/namojo/car-audio-eq-pro/eq/target"
)

// Default calibration settings.
const (
	defaultNoiseFloorDB     = -80.0
	defaultReferenceLevelDB = -20.0
	defaultSmoothingFrac    = 1.0 / 3.0
	defaultDuration         = 10 * time.Second
	defaultWarmupDiscard    = 10
	defaultMinSnapshots     = 5
)

// Config defines one calibration run. BlockSize is the FFT size that
// produced the incoming snapshots; snapshots carry BlockSize/2+1 bins.
// A Config is constructed once per run and read-only thereafter.
type Config struct {
	core.ProcessorConfig

	// Curve selects the target response shape. CustomTarget must be set
	// when Curve is [target.Custom].
	Curve        target.Curve
	CustomTarget []float64

	// SmoothingFraction is the fractional-octave smoothing width.
	// Recognized values are 1/3, 1/6, and 1/12; anything else falls back
	// to 1/3.
	SmoothingFraction float64

	// NoiseFloorDB gates snapshots on submission and individual bins
	// during averaging and extraction.
	NoiseFloorDB float64

	// ReferenceLevelDB is the level the measured peak is normalized to.
	ReferenceLevelDB float64

	// Duration is the target measurement window for the driving loop.
	// The engine itself imposes no timing.
	Duration time.Duration

	// WarmupDiscard is the number of initial submissions dropped
	// unconditionally while the capture path stabilizes.
	WarmupDiscard int

	// MinSnapshots is the minimum retained snapshot count required
	// before averaging is attempted.
	MinSnapshots int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults for a 10 s calibration run.
func DefaultConfig() Config {
	return Config{
		ProcessorConfig:   core.DefaultProcessorConfig(),
		Curve:             target.Flat,
		SmoothingFraction: defaultSmoothingFrac,
		NoiseFloorDB:      defaultNoiseFloorDB,
		ReferenceLevelDB:  defaultReferenceLevelDB,
		Duration:          defaultDuration,
		WarmupDiscard:     defaultWarmupDiscard,
		MinSnapshots:      defaultMinSnapshots,
	}
}

// WithSampleRate sets the capture sample rate.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFFTSize sets the FFT size the incoming snapshots were produced with.
func WithFFTSize(size int) Option {
	return func(cfg *Config) {
		if size > 0 && size&(size-1) == 0 {
			cfg.BlockSize = size
		}
	}
}

// WithTargetCurve selects a built-in target curve.
func WithTargetCurve(c target.Curve) Option {
	return func(cfg *Config) {
		if c != "" {
			cfg.Curve = c
		}
	}
}

// WithCustomTarget supplies an explicit target curve and selects
// [target.Custom].
func WithCustomTarget(gains []float64) Option {
	return func(cfg *Config) {
		if gains != nil {
			cfg.Curve = target.Custom
			cfg.CustomTarget = gains
		}
	}
}

// WithSmoothingFraction sets the fractional-octave smoothing width.
func WithSmoothingFraction(fraction float64) Option {
	return func(cfg *Config) {
		if fraction > 0 && fraction < 1 {
			cfg.SmoothingFraction = fraction
		}
	}
}

// WithNoiseFloor sets the rejection threshold in dB.
func WithNoiseFloor(db float64) Option {
	return func(cfg *Config) {
		if db < 0 {
			cfg.NoiseFloorDB = db
		}
	}
}

// WithReferenceLevel sets the normalization reference level in dB.
func WithReferenceLevel(db float64) Option {
	return func(cfg *Config) {
		cfg.ReferenceLevelDB = db
	}
}

// WithDuration sets the target measurement window for the driving loop.
func WithDuration(d time.Duration) Option {
	return func(cfg *Config) {
		if d > 0 {
			cfg.Duration = d
		}
	}
}

// WithWarmupDiscard sets how many initial submissions are dropped.
func WithWarmupDiscard(n int) Option {
	return func(cfg *Config) {
		if n >= 0 {
			cfg.WarmupDiscard = n
		}
	}
}

// WithMinSnapshots sets the minimum retained snapshot count.
func WithMinSnapshots(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MinSnapshots = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
