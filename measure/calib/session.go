package calib

import (
	"fmt"
	"sync"
)

// Session accumulates magnitude snapshots for one calibration run.
//
// The first WarmupDiscard submissions are dropped unconditionally so the
// capture path can stabilize after microphone acquisition. After warm-up,
// a snapshot is retained only if its peak exceeds the noise floor;
// quieter snapshots are discarded silently, since silence and underruns
// are expected during a measurement and must not abort it.
//
// Submit is safe for concurrent callers. The snapshot list must only be
// read after all submissions have completed.
type Session struct {
	mu sync.Mutex

	noiseFloorDB  float64
	warmupDiscard int

	submitted int
	bins      int
	snapshots [][]float64
}

// NewSession creates an empty measurement session.
func NewSession(noiseFloorDB float64, warmupDiscard int) *Session {
	if warmupDiscard < 0 {
		warmupDiscard = 0
	}

	return &Session{
		noiseFloorDB:  noiseFloorDB,
		warmupDiscard: warmupDiscard,
	}
}

// Reset discards all accumulated state, starting a new measurement
// session. Stale snapshots from a prior run never survive a Reset.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submitted = 0
	s.bins = 0
	s.snapshots = nil
}

// Submit offers one snapshot to the session. The snapshot is copied on
// retention, so the caller may reuse its slice.
//
// Warm-up and below-floor discards return nil; only structural problems
// (an empty snapshot, or a bin count differing from the session's first
// retained snapshot) are errors.
func (s *Session) Submit(snapshot []float64) error {
	if len(snapshot) == 0 {
		return fmt.Errorf("%w: empty snapshot", ErrBinCountMismatch)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.submitted++
	if s.submitted <= s.warmupDiscard {
		return nil
	}

	if s.bins != 0 && len(snapshot) != s.bins {
		return fmt.Errorf("%w: got %d bins, session has %d", ErrBinCountMismatch, len(snapshot), s.bins)
	}

	peak := snapshot[0]
	for _, v := range snapshot[1:] {
		if v > peak {
			peak = v
		}
	}

	if !(peak > s.noiseFloorDB) {
		return nil
	}

	kept := make([]float64, len(snapshot))
	copy(kept, snapshot)

	if s.bins == 0 {
		s.bins = len(snapshot)
	}

	s.snapshots = append(s.snapshots, kept)

	return nil
}

// Count reports the number of retained snapshots.
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.snapshots)
}

// Snapshots returns the retained snapshots in arrival order.
// Callers must not mutate the returned data.
func (s *Session) Snapshots() [][]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshots
}
