package spectrum

import (
	"github.com/namojo/car-audio-eq-pro/dsp/core"
	"github.com/namojo/car-audio-eq-pro/dsp/window"
)

// Default analyzer settings.
const (
	defaultOverlap = 0.5
	defaultFloorDB = -130.0
)

// AnalyzerConfig defines configuration for the spectrum analyzer.
// BlockSize is the FFT size; snapshots have BlockSize/2+1 bins.
type AnalyzerConfig struct {
	core.ProcessorConfig
	Overlap float64
	Window  window.Type
	FloorDB float64
}

// AnalyzerOption mutates an AnalyzerConfig.
type AnalyzerOption func(*AnalyzerConfig)

// DefaultAnalyzerConfig returns sensible defaults for measurement capture.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		ProcessorConfig: core.DefaultProcessorConfig(),
		Overlap:         defaultOverlap,
		Window:          window.TypeHann,
		FloorDB:         defaultFloorDB,
	}
}

// WithSampleRate sets the capture sample rate.
func WithSampleRate(sampleRate float64) AnalyzerOption {
	return func(cfg *AnalyzerConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFFTSize sets the FFT size. Must be a positive power of two.
func WithFFTSize(size int) AnalyzerOption {
	return func(cfg *AnalyzerConfig) {
		if size > 0 && size&(size-1) == 0 {
			cfg.BlockSize = size
		}
	}
}

// WithOverlap sets the frame overlap fraction in [0, 0.95].
func WithOverlap(overlap float64) AnalyzerOption {
	return func(cfg *AnalyzerConfig) {
		if overlap >= 0 && overlap <= 0.95 {
			cfg.Overlap = overlap
		}
	}
}

// WithWindow sets the analysis window type.
func WithWindow(t window.Type) AnalyzerOption {
	return func(cfg *AnalyzerConfig) {
		cfg.Window = t
	}
}

// WithFloor sets the minimum reported level in dB.
func WithFloor(db float64) AnalyzerOption {
	return func(cfg *AnalyzerConfig) {
		if db < 0 {
			cfg.FloorDB = db
		}
	}
}

// ApplyAnalyzerOptions applies zero or more options to the default config.
func ApplyAnalyzerOptions(opts ...AnalyzerOption) AnalyzerConfig {
	cfg := DefaultAnalyzerConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
