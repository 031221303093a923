package calib

import (
	"fmt"

	"github.com/namojo/car-audio-eq-pro/eq/band"
	"github.com/namojo/car-audio-eq-pro/eq/target"
)

// Calibrator runs the full calibration pipeline over one measurement
// session at a time.
type Calibrator struct {
	cfg         Config
	grid        *band.Grid
	targetGains []float64
	session     *Session
}

// New creates a calibrator for the given band grid.
//
// The target curve is resolved once here, so an unknown curve or a
// missing/mis-shaped custom target fails before any measurement starts.
func New(grid *band.Grid, opts ...Option) (*Calibrator, error) {
	cfg := ApplyOptions(opts...)

	var (
		gains []float64
		err   error
	)

	if cfg.Curve == target.Custom {
		gains, err = target.CustomGains(grid, cfg.CustomTarget)
	} else {
		gains, err = target.Gains(cfg.Curve, grid)
	}

	if err != nil {
		return nil, fmt.Errorf("calib: resolve target curve: %w", err)
	}

	return &Calibrator{
		cfg:         cfg,
		grid:        grid,
		targetGains: gains,
		session:     NewSession(cfg.NoiseFloorDB, cfg.WarmupDiscard),
	}, nil
}

// Config returns the resolved run configuration.
func (c *Calibrator) Config() Config { return c.cfg }

// Start begins a new measurement session, discarding any prior state.
func (c *Calibrator) Start() {
	c.session.Reset()
}

// Submit offers one magnitude snapshot to the current session.
func (c *Calibrator) Submit(snapshot []float64) error {
	return c.session.Submit(snapshot)
}

// Count reports the number of snapshots retained so far.
func (c *Calibrator) Count() int {
	return c.session.Count()
}

// Finish runs the pipeline over the retained snapshots and returns the
// correction vector, aligned to the grid. The returned slice is owned by
// the caller; the engine keeps no reference to it.
//
// Fails with [ErrEmptyMeasurement] when fewer than the configured
// minimum snapshots were retained.
func (c *Calibrator) Finish() ([]float64, error) {
	snapshots := c.session.Snapshots()
	if len(snapshots) < c.cfg.MinSnapshots {
		return nil, fmt.Errorf("%w: retained %d, need %d", ErrEmptyMeasurement, len(snapshots), c.cfg.MinSnapshots)
	}

	return c.Calculate(snapshots)
}

// Calculate runs the pure pipeline over an explicit snapshot list,
// without touching session state.
func (c *Calibrator) Calculate(snapshots [][]float64) ([]float64, error) {
	averaged, err := AverageSpectra(snapshots, c.cfg.NoiseFloorDB)
	if err != nil {
		return nil, err
	}

	levels, err := BandLevels(averaged, c.grid, c.cfg.BinWidthHz(), c.cfg.NoiseFloorDB)
	if err != nil {
		return nil, err
	}

	smoothed, err := SmoothFractionalOctave(levels, c.grid, c.cfg.SmoothingFraction, c.cfg.NoiseFloorDB)
	if err != nil {
		return nil, err
	}

	return Corrections(smoothed, c.targetGains, c.grid, c.cfg.ReferenceLevelDB)
}
